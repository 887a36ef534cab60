package log

import "time"

// Event is one printer endpoint log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Printer is the printer name the event belongs to.
	Printer string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Type-specific payload (one of these will be set).
	Driver     *DriverEvent     `cbor:"4,keyasint,omitempty"`
	Capability *CapabilityEvent `cbor:"5,keyasint,omitempty"`
	Device     *DeviceEvent     `cbor:"6,keyasint,omitempty"`
	Error      *ErrorEventData  `cbor:"7,keyasint,omitempty"`
}

// Category classifies an event.
type Category uint8

const (
	// CategoryLifecycle covers driver attach and detach.
	CategoryLifecycle Category = 0

	// CategoryCapability covers capability synthesis.
	CategoryCapability Category = 1

	// CategoryDevice covers device open and close.
	CategoryDevice Category = 2

	// CategoryError covers failures in any of the above.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryLifecycle:
		return "LIFECYCLE"
	case CategoryCapability:
		return "CAPABILITY"
	case CategoryDevice:
		return "DEVICE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// DriverEvent carries driver attach/detach details.
type DriverEvent struct {
	// Keyword is the driver keyword.
	Keyword string `cbor:"1,keyasint"`

	// Model is the resolved make-and-model string.
	Model string `cbor:"2,keyasint,omitempty"`

	// Attached is true for attachment, false for detachment.
	Attached bool `cbor:"3,keyasint"`
}

// CapabilityEvent carries capability synthesis details.
type CapabilityEvent struct {
	// DiscreteMedia is the number of discrete media sizes advertised.
	DiscreteMedia int `cbor:"1,keyasint"`

	// RollRange is true when a continuous roll range was advertised.
	RollRange bool `cbor:"2,keyasint,omitempty"`

	// Resolutions is the number of resolutions advertised.
	Resolutions int `cbor:"3,keyasint"`
}

// DeviceEvent carries device open/close details.
type DeviceEvent struct {
	// URI is the device URI.
	URI string `cbor:"1,keyasint"`

	// Action is "open" or "close".
	Action string `cbor:"2,keyasint"`
}

// ErrorEventData carries failure details.
type ErrorEventData struct {
	// Op names the operation that failed.
	Op string `cbor:"1,keyasint"`

	// Message is the error text.
	Message string `cbor:"2,keyasint"`
}
