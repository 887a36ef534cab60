package device

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenNull(t *testing.T) {
	d, err := Open(context.Background(), "null:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if n, err := d.Write([]byte("^XA^XZ")); err != nil || n != 6 {
		t.Errorf("Write = %d, %v", n, err)
	}
	if err := d.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	// Close is idempotent.
	if err := d.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.prn")

	d, err := Open(context.Background(), "file://"+path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := d.Write([]byte("data")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("spool file = %q", got)
	}
}

func TestOpenUnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), "ipp://example.local/print")
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("expected ErrUnsupportedScheme, got %v", err)
	}
}

func TestDeviceURI(t *testing.T) {
	d, err := Open(context.Background(), "null:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer d.Close()

	if d.URI() != "null:" {
		t.Errorf("URI = %q", d.URI())
	}
}
