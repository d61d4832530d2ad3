package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Journal entries are written canonically with RFC3339Nano timestamps, so
// the same entry always encodes to the same bytes. Decoding tolerates keys
// it does not know, which lets older tools read newer journals.
var (
	journalEncMode = mustEncMode(cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	})
	journalDecMode = mustDecMode(cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("journal: bad CBOR encoder options: %v", err))
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("journal: bad CBOR decoder options: %v", err))
	}
	return dm
}

// EncodeEntry returns the CBOR bytes of one entry.
func EncodeEntry(entry Entry) ([]byte, error) {
	return journalEncMode.Marshal(entry)
}

// DecodeEntry parses exactly one entry from data.
func DecodeEntry(data []byte) (Entry, error) {
	var entry Entry
	if err := journalDecMode.Unmarshal(data, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// NewEncoder returns a stream encoder writing entries back to back to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return journalEncMode.NewEncoder(w)
}

// NewDecoder returns a stream decoder for a journal read from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return journalDecMode.NewDecoder(r)
}
