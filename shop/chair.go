// File: shop/chair.go
package shop

import (
	"context"
	"sync"
)

// Chair is the single barber chair. One token circulates; holding it
// means sitting in the chair.
type Chair struct {
	token chan struct{}

	mu     sync.Mutex
	holder int
	held   bool
}

// NewChair returns a free chair.
func NewChair() *Chair {
	c := &Chair{token: make(chan struct{}, 1)}
	c.token <- struct{}{}
	return c
}

// Acquire blocks until the chair is free and seats customerID in it.
func (c *Chair) Acquire(ctx context.Context, customerID int) error {
	select {
	case <-c.token:
	case <-ctx.Done():
		return ctx.Err()
	}
	c.mu.Lock()
	c.holder = customerID
	c.held = true
	c.mu.Unlock()
	return nil
}

// Release frees the chair for the next waiter. Releasing a free chair panics.
func (c *Chair) Release() {
	c.mu.Lock()
	if !c.held {
		c.mu.Unlock()
		panic("shop: release of a free barber chair")
	}
	c.held = false
	c.mu.Unlock()
	c.token <- struct{}{}
}

// Holder reports who sits in the chair, if anyone.
func (c *Chair) Holder() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.holder, c.held
}
