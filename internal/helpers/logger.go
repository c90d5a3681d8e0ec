package helpers

import (
	"log/slog"
)

// SetupLogger returns the handler to keep and a logger grouped under
// component and, when non-empty, groupName.
//
// A nil handler means the caller asked for no logging, so records are
// discarded rather than written to a default destination.
func SetupLogger(handler slog.Handler, component string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		handler = slog.DiscardHandler
	}
	handler = handler.WithGroup(component)

	if groupName != "" {
		return handler, slog.New(handler.WithGroup(groupName))
	}
	return handler, slog.New(handler)
}
