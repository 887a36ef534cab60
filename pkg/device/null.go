package device

import (
	"context"
	"io"
	"net/url"
)

// nullBackend discards all output. Useful for dry runs and tests.
type nullBackend struct{}

func init() {
	Register(nullBackend{})
}

func (nullBackend) Schemes() []string {
	return []string{"null"}
}

func (nullBackend) Open(ctx context.Context, uri *url.URL) (io.ReadWriteCloser, error) {
	return nullConn{}, nil
}

// nullConn reads nothing and swallows writes.
type nullConn struct{}

func (nullConn) Read(p []byte) (int, error)  { return 0, io.EOF }
func (nullConn) Write(p []byte) (int, error) { return len(p), nil }
func (nullConn) Close() error                { return nil }
