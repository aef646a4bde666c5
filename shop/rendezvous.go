// File: shop/rendezvous.go
package shop

import (
	"context"
	"sync"
)

// rendezvous hands values from posters to waiters. Every post releases
// exactly one wait, in post order, and post never blocks.
type rendezvous[T any] struct {
	mu      sync.Mutex
	pending []T
	notify  chan struct{}
}

func newRendezvous[T any]() *rendezvous[T] {
	return &rendezvous[T]{notify: make(chan struct{}, 1)}
}

func (r *rendezvous[T]) post(v T) {
	r.mu.Lock()
	r.pending = append(r.pending, v)
	r.mu.Unlock()
	r.kick()
}

func (r *rendezvous[T]) kick() {
	select {
	case r.notify <- struct{}{}:
	default:
	}
}

func (r *rendezvous[T]) wait(ctx context.Context) (T, error) {
	for {
		r.mu.Lock()
		if len(r.pending) > 0 {
			v := r.pending[0]
			var zero T
			r.pending[0] = zero
			r.pending = r.pending[1:]
			more := len(r.pending) > 0
			r.mu.Unlock()
			// Pass the notification on so a second waiter sees the leftover.
			if more {
				r.kick()
			}
			return v, nil
		}
		r.mu.Unlock()

		select {
		case <-r.notify:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func (r *rendezvous[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
