package state

import (
	"context"
	"sync/atomic"
)

// generations is shared by all screens so a result can never be mistaken
// for the request of a screen that replaced its issuer.
var generations atomic.Uint64

// fetchCycle tracks the request a screen is waiting for. Starting a new
// request cancels the previous one and only results carrying the current
// generation may change the screen.
type fetchCycle struct {
	generation uint64
	cancel     context.CancelFunc
}

func (c *fetchCycle) begin() (context.Context, uint64) {
	c.stop()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.generation = generations.Add(1)
	return ctx, c.generation
}

func (c *fetchCycle) settle(generation uint64) bool {
	if generation != c.generation {
		return false
	}
	c.stop()
	return true
}

func (c *fetchCycle) stop() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
