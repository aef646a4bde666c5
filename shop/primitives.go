// File: shop/primitives.go
package shop

import "context"

// The actors only ever see the side of a primitive they are allowed to use.

// Room is the waiting-room side a customer uses.
type Room interface {
	Enter(ctx context.Context) error
	Leave()
}

// Seat is the barber chair as a customer uses it.
type Seat interface {
	Acquire(ctx context.Context, customerID int) error
	Release()
}

// Waker is how a seated customer rings for the barber.
type Waker interface {
	Wake(customerID int)
}

// Sleeper is how the barber waits for work.
type Sleeper interface {
	SleepUntilWoken(ctx context.Context) (Wake, error)
}

// ServiceSignaler is how the barber releases the seated customer.
type ServiceSignaler interface {
	SignalDone(h Haircut)
}

// ServiceWaiter is how the seated customer waits for the barber.
type ServiceWaiter interface {
	WaitForService(ctx context.Context) (Haircut, error)
}
