package log

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger appends endpoint events to a .plog file as a CBOR stream
// readable by Reader and the labelprint-log tool. Safe for concurrent
// use; printers on separate goroutines share one logger.
type FileLogger struct {
	mu      sync.Mutex
	f       *os.File
	enc     *cbor.Encoder
	closed  bool
	dropped int
}

// NewFileLogger opens path for appending, creating it with mode 0644
// if needed. An existing stream is extended, never rewritten.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{f: f, enc: NewEncoder(f)}, nil
}

// Log appends one event to the stream. Events arriving after Close are
// discarded. Encode failures are counted rather than surfaced; logging
// must never disrupt a driver attach in progress.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		l.dropped++
		return
	}
	if err := l.enc.Encode(event); err != nil {
		l.dropped++
	}
}

// Dropped reports how many events were discarded because of encode
// failures or writes after Close.
func (l *FileLogger) Dropped() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Close closes the underlying file. Close is idempotent.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.f.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
