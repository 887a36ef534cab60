package discovery

import (
	"errors"
	"time"
)

// Service type constants for mDNS.
const (
	// ServiceTypeIPP is the DNS-SD service type for IPP printing.
	ServiceTypeIPP = "_ipp._tcp"

	// ServiceTypePDL is the DNS-SD service type for raw port-9100
	// printing.
	ServiceTypePDL = "_pdl-datastream._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultIPPPort is the standard IPP port.
	DefaultIPPPort = 631

	// DefaultPDLPort is the standard raw-socket printing port.
	DefaultPDLPort = 9100
)

// TXT record key constants (Bonjour printing conventions).
const (
	TXTKeyTxtVers   = "txtvers" // TXT record format version, always "1"
	TXTKeyQueue     = "qtotal"  // Queue count, always "1"
	TXTKeyQueuePath = "rp"      // Resource path, e.g. "ipp/print/<name>"
	TXTKeyMakeModel = "ty"      // Make and model string
	TXTKeyNote      = "note"    // Location (optional)
	TXTKeyUUID      = "UUID"    // Printer UUID without the urn:uuid: prefix
	TXTKeyFormats   = "pdl"     // Comma-separated document format MIME types
	TXTKeyURF       = "URF"     // Comma-separated URF capability tokens
	TXTKeyColor     = "Color"   // "T"/"F"
	TXTKeyDuplex    = "Duplex"  // "T"/"F"
)

// Timing constants.
const (
	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 10 * time.Second

	// DefaultTTL is the default DNS record TTL.
	DefaultTTL = 120 * time.Second
)

// Limits.
const (
	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63
)

// Discovery errors.
var (
	// ErrMissingRequired indicates a required TXT record is missing.
	ErrMissingRequired = errors.New("missing required TXT record")

	// ErrInvalidTXTRecord indicates a TXT record has an invalid value.
	ErrInvalidTXTRecord = errors.New("invalid TXT record")

	// ErrInstanceNameTooLong indicates the instance name exceeds the
	// DNS label limit.
	ErrInstanceNameTooLong = errors.New("instance name too long")

	// ErrNotAdvertised indicates an update or stop for a printer that
	// is not being advertised.
	ErrNotAdvertised = errors.New("printer not advertised")
)

// PrinterInfo describes one advertised printer endpoint.
type PrinterInfo struct {
	// Name is the printer (and DNS-SD instance) name.
	Name string

	// MakeModel is the make-and-model string from the capability set.
	MakeModel string

	// Location is a human-readable location (optional).
	Location string

	// UUID is the printer UUID without the urn:uuid: prefix.
	UUID string

	// Formats lists the supported document format MIME types.
	Formats []string

	// URF lists the URF capability tokens from urf-supported.
	URF []string

	// Port is the IPP listen port. Zero means DefaultIPPPort.
	Port uint16

	// RawSocket also advertises _pdl-datastream._tcp when true.
	RawSocket bool
}

// PrinterService is a printer found while browsing.
type PrinterService struct {
	Info *PrinterInfo

	// Host is the advertised hostname.
	Host string

	// Addresses are the resolved IP addresses as strings.
	Addresses []string

	// Port is the advertised port.
	Port int
}
