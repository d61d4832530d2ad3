// Package log provides the sinks a greeting is dispatched to.
//
// Every sink is a callback.Func[string]: it receives the message text,
// stamps it with the current time and writes it somewhere. Sinks are
// combined with the callback package so one invocation reaches all of them.
//
// # Basic Usage
//
//	clock := log.SystemClock{}
//	sinks := log.NewMultiSink(
//	    log.ConsoleSink(os.Stdout, clock),
//	    log.FileSink(log.DefaultPath(), clock),
//	)
//	err := sinks.Invoke(log.Greeting(name))
//
// # Line Format
//
// Console and file sinks write "<timestamp>: <message>" followed by a
// newline. The timestamp uses TimestampLayout and does not depend on the
// process locale.
//
// # Journal
//
// JournalSink appends a CBOR-encoded Entry per call. Journal files use the
// .mlog extension and are read back with Reader; the greet-log tool
// provides viewing, export and statistics.
package log
