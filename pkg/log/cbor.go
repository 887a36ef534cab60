package log

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Event streams are append-only CBOR sequences: one self-delimiting
// item per event, integer struct keys, no framing between items. A
// truncated final item (e.g. the server died mid-write) surfaces as a
// decode error from the reader; everything before it stays readable.
//
// Canonical encoding keeps byte output stable for identical events,
// which makes .plog files diff- and dedup-friendly. Driver attach and
// detach can land within the same millisecond during a re-attach, so
// timestamps carry nanosecond precision.
var (
	eventEncMode = mustEncMode(cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	})

	// Decoding is deliberately looser than encoding: labelprint-log
	// must read streams written by older servers.
	eventDecMode = mustDecMode(cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	mode, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("log: invalid event encoder options: %v", err))
	}
	return mode
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	mode, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("log: invalid event decoder options: %v", err))
	}
	return mode
}

// EncodeEvent encodes one event as a standalone CBOR item.
func EncodeEvent(event Event) ([]byte, error) {
	return eventEncMode.Marshal(event)
}

// DecodeEvent decodes one standalone CBOR item into an Event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// NewEncoder creates a stream encoder writing events to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return eventEncMode.NewEncoder(w)
}

// NewDecoder creates a stream decoder reading events from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return eventDecMode.NewDecoder(r)
}
