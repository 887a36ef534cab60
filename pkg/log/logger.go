package log

// Logger is the interface applications implement to receive endpoint log
// events. Pass nil or NoopLogger to disable logging.
type Logger interface {
	// Log records an event. Implementations must be thread-safe.
	// The event should be processed quickly or queued; blocking affects
	// the caller.
	Log(event Event)
}

// NoopLogger discards all events. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Fanout delivers each event to every logger in the slice, in order.
// The server uses it to pair console output (SlogAdapter) with the
// on-disk event stream (FileLogger). A nil or empty Fanout discards
// events like NoopLogger does.
type Fanout []Logger

// Log delivers the event to each logger in turn.
func (f Fanout) Log(event Event) {
	for _, l := range f {
		l.Log(event)
	}
}

// Compile-time interface satisfaction checks.
var (
	_ Logger = NoopLogger{}
	_ Logger = Fanout(nil)
)
