package device

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"
)

// ErrUnsupportedScheme reports a device URI with no registered backend.
var ErrUnsupportedScheme = errors.New("device: unsupported URI scheme")

// Backend opens device connections for one or more URI schemes.
type Backend interface {
	// Schemes lists the URI schemes this backend handles.
	Schemes() []string

	// Open connects to the device addressed by uri.
	Open(ctx context.Context, uri *url.URL) (io.ReadWriteCloser, error)
}

var (
	backendsMu sync.RWMutex
	backends   = map[string]Backend{}
)

// Register makes a backend available for its schemes. Later
// registrations win, which lets tests substitute backends.
func Register(b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	for _, scheme := range b.Schemes() {
		backends[scheme] = b
	}
}

// Device is an open connection to a printer's output device. The
// attached driver owns the handle and closes it when it is deleted.
type Device struct {
	uri string

	mu     sync.Mutex
	rwc    io.ReadWriteCloser
	closed bool
}

// Open connects to the device addressed by uri.
func Open(ctx context.Context, uri string) (*Device, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("device: parsing %q: %w", uri, err)
	}

	backendsMu.RLock()
	b, ok := backends[u.Scheme]
	backendsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	rwc, err := b.Open(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("device: opening %q: %w", uri, err)
	}

	return &Device{uri: uri, rwc: rwc}, nil
}

// URI returns the device URI.
func (d *Device) URI() string {
	return d.uri
}

// Read reads from the device (status responses and the like).
func (d *Device) Read(p []byte) (int, error) {
	return d.rwc.Read(p)
}

// Write sends data to the device.
func (d *Device) Write(p []byte) (int, error) {
	return d.rwc.Write(p)
}

// Close releases the device connection. It is safe to call multiple
// times; the underlying connection is closed at most once.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	return d.rwc.Close()
}
