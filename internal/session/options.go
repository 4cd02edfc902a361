package session

import (
	"log/slog"
	"strings"
)

// Option is a functional option for configuring a Controller
type Option func(*Controller)

// DefaultSkipWords are the label inputs that mean "leave unassigned".
var DefaultSkipWords = []string{"skip", "salta"}

// WithSkipWords replaces the skip words. Matching is case-insensitive.
func WithSkipWords(words ...string) Option {
	return func(c *Controller) {
		c.skipWords = make(map[string]struct{}, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				c.skipWords[w] = struct{}{}
			}
		}
	}
}

// WithLogger sets the logger for the controller
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver subscribes an observer from construction
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.Subscribe(o)
	}
}
