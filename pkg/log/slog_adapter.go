package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes endpoint events to an slog.Logger.
// Useful for development when you want to see events in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("printer", event.Printer),
		slog.String("category", event.Category.String()),
	}

	// Add type-specific attributes
	switch {
	case event.Driver != nil:
		attrs = append(attrs,
			slog.String("driver", event.Driver.Keyword),
			slog.Bool("attached", event.Driver.Attached),
		)
		if event.Driver.Model != "" {
			attrs = append(attrs, slog.String("model", event.Driver.Model))
		}
	case event.Capability != nil:
		attrs = append(attrs,
			slog.Int("discrete_media", event.Capability.DiscreteMedia),
			slog.Bool("roll_range", event.Capability.RollRange),
			slog.Int("resolutions", event.Capability.Resolutions),
		)
	case event.Device != nil:
		attrs = append(attrs,
			slog.String("device_uri", event.Device.URI),
			slog.String("action", event.Device.Action),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("op", event.Error.Op),
			slog.String("error", event.Error.Message),
		)
	}

	level := slog.LevelDebug
	if event.Category == CategoryError {
		level = slog.LevelWarn
	}

	a.logger.LogAttrs(context.Background(), level, "endpoint event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
