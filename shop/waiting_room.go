// File: shop/waiting_room.go
package shop

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/lguibr/barbershop/utils"
	"golang.org/x/sync/semaphore"
)

// WaitingRoom is the bounded admission gate in front of the barber chair.
type WaitingRoom struct {
	sem      *semaphore.Weighted
	capacity int
	occupied atomic.Int64
}

// NewWaitingRoom creates a room with capacity chairs, all free.
func NewWaitingRoom(capacity int) (*WaitingRoom, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", utils.ErrNoChairs, capacity)
	}
	return &WaitingRoom{
		sem:      semaphore.NewWeighted(int64(capacity)),
		capacity: capacity,
	}, nil
}

// Enter blocks until a chair in the room is free and takes it.
func (w *WaitingRoom) Enter(ctx context.Context) error {
	if err := w.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	w.occupied.Add(1)
	return nil
}

// Leave frees a chair. Leaving without having entered panics.
func (w *WaitingRoom) Leave() {
	w.occupied.Add(-1)
	w.sem.Release(1)
}

func (w *WaitingRoom) Capacity() int { return w.capacity }

// Occupancy is the number of customers between Enter and Leave.
func (w *WaitingRoom) Occupancy() int { return int(w.occupied.Load()) }
