// File: utils/random.go
package utils

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DelaySource blocks the caller for a bounded pseudo-random time.
type DelaySource interface {
	// Delay blocks for 1..maxUnits time units, or until ctx is done.
	Delay(ctx context.Context, maxUnits int) error
}

// RandomDelay is a seeded DelaySource safe for use by many actors.
type RandomDelay struct {
	mu   sync.Mutex
	rng  *rand.Rand
	unit time.Duration
}

// NewRandomDelay creates a delay source; a non-positive unit makes every
// delay return immediately while still drawing from the generator.
func NewRandomDelay(seed int64, unit time.Duration) *RandomDelay {
	return &RandomDelay{
		rng:  rand.New(rand.NewSource(seed)),
		unit: unit,
	}
}

// Units draws a whole number of units uniformly from 1..maxUnits.
// maxUnits below 1 always yields 1.
func (d *RandomDelay) Units(maxUnits int) int {
	if maxUnits < 1 {
		return 1
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(maxUnits) + 1
}

func (d *RandomDelay) Delay(ctx context.Context, maxUnits int) error {
	n := d.Units(maxUnits)
	if d.unit <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(time.Duration(n) * d.unit)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
