package device

import (
	"context"
	"io"
	"net/url"
	"os"
)

// fileBackend spools device output to a local file.
type fileBackend struct{}

func init() {
	Register(fileBackend{})
}

func (fileBackend) Schemes() []string {
	return []string{"file"}
}

func (fileBackend) Open(ctx context.Context, uri *url.URL) (io.ReadWriteCloser, error) {
	f, err := os.OpenFile(uri.Path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	return f, nil
}
