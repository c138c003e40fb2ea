package fallback

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/exp/slog"
)

// Mode is the storage mode the process is running in
type Mode string

const (
	// ModeDurable means operations run against MongoDB
	ModeDurable Mode = "durable"
	// ModeFallback means operations run against the volatile in-memory
	// store. The switch is one-way for the process lifetime.
	ModeFallback Mode = "fallback"
)

// Controller holds the process-wide storage mode. All repository wrappers
// consult it before every operation and report connectivity failures to it.
type Controller struct {
	mu   sync.RWMutex
	mode Mode
}

// NewController creates a controller in the given initial mode
func NewController(initial Mode) *Controller {
	return &Controller{mode: initial}
}

// Mode returns the current storage mode
func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Degrade switches the process to fallback mode. The switch is permanent:
// once durability is lost the process prefers uniform volatile behavior over
// flapping between backends.
func (c *Controller) Degrade(cause error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeFallback {
		return
	}
	c.mode = ModeFallback
	slog.Error("durable store unavailable, switching to in-memory fallback; writes are now volatile",
		"cause", cause)
}

// IsConnectivityError reports whether a durable-store error is
// connectivity-class (and should trigger the fallback switch) as opposed to
// data-class (which is surfaced to the caller unchanged).
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}
