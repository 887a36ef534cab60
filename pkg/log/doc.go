// Package log provides structured event logging for label printer
// endpoints.
//
// This package defines the Logger interface and Event types capturing
// printer lifecycle events: driver attachment, capability synthesis,
// device open/close, and errors. It is separate from operational logging
// (slog) - the event trace is machine-readable and replayable.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/labelprint/events.plog")
//
//	// Both: fan out with Fanout
//	cfg.EventLogger = log.Fanout{
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	}
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys. The
// Reader type iterates a file back, optionally filtered.
package log
