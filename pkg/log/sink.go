package log

import "github.com/mash-protocol/multicast/pkg/callback"

// Sink receives one message text per call.
type Sink = callback.Func[string]

// NoopSink discards the text. It never fails.
func NoopSink(string) error { return nil }

// NewMultiSink returns a list that sends each message to every sink in order.
// Useful when you want both console output (via ConsoleSink) and file
// output (via FileSink) from a single call.
func NewMultiSink(sinks ...Sink) callback.List[string] {
	return callback.New(sinks...)
}
