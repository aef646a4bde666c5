// File: shop/customer_actor.go
package shop

import (
	"context"
	"fmt"

	"github.com/lguibr/barbershop/bollywood"
	"github.com/lguibr/barbershop/utils"
)

// CustomerDeps are the shared pieces a customer touches. Nothing else in
// the shop is reachable from a customer.
type CustomerDeps struct {
	Room    Room
	Chair   Seat
	Bell    Waker
	Service ServiceWaiter
	Delays  utils.DelaySource
	Out     utils.LineSink
}

// CustomerActor implements the bollywood.Actor interface for one customer.
// It makes a single visit to the shop when started and then stops itself.
type CustomerActor struct {
	id     int
	runCtx context.Context
	cfg    utils.Config
	deps   CustomerDeps
	tally  *tally
}

// NewCustomerActor creates the actor for customer id. runCtx bounds every
// blocking step of the visit.
func NewCustomerActor(runCtx context.Context, id int, cfg utils.Config, deps CustomerDeps) *CustomerActor {
	return &CustomerActor{
		id:     id,
		runCtx: runCtx,
		cfg:    cfg,
		deps:   deps,
	}
}

// NewCustomerActorProducer creates a bollywood.Producer for CustomerActor.
func NewCustomerActorProducer(runCtx context.Context, id int, cfg utils.Config, deps CustomerDeps, t *tally) bollywood.Producer {
	return func() bollywood.Actor {
		a := NewCustomerActor(runCtx, id, cfg, deps)
		a.tally = t
		return a
	}
}

func (a *CustomerActor) ID() int { return a.id }

// Receive handles incoming messages for the CustomerActor.
func (a *CustomerActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		if err := a.visit(); err != nil {
			a.deps.Out.PrintLine("Customer %d gave up: %v", a.id, err)
		}
		a.tally.customerExit()
		ctx.Engine().Stop(ctx.Self())

	case bollywood.Stopping, bollywood.Stopped:

	default:
		a.deps.Out.PrintLine("Customer %d received unknown message: %T", a.id, msg)
	}
}

// visit walks the customer through the shop. The chair is taken before
// the waiting-room chair is given up, so at most Chairs+1 customers are
// ever inside.
func (a *CustomerActor) visit() error {
	out := a.deps.Out

	out.PrintLine("Customer %d is leaving for barber shop.", a.id)
	if err := a.deps.Delays.Delay(a.runCtx, a.cfg.MaxTravelSeconds); err != nil {
		return fmt.Errorf("travelling: %w", err)
	}
	out.PrintLine("Customer %d arrived at barber shop.", a.id)

	if err := a.deps.Room.Enter(a.runCtx); err != nil {
		return fmt.Errorf("entering waiting room: %w", err)
	}
	a.tally.arrived()
	if o, ok := a.deps.Room.(interface{ Occupancy() int }); ok {
		a.tally.observeWaiting(o.Occupancy())
	}
	out.PrintLine("Customer %d entering waiting room.", a.id)

	if err := a.deps.Chair.Acquire(a.runCtx, a.id); err != nil {
		a.tally.departed()
		a.deps.Room.Leave()
		return fmt.Errorf("waiting for the chair: %w", err)
	}
	a.deps.Room.Leave()

	out.PrintLine("Customer %d waking the barber.", a.id)
	a.deps.Bell.Wake(a.id)

	// Count the customer out before the chair is handed on.
	haircut, err := a.deps.Service.WaitForService(a.runCtx)
	a.tally.departed()
	a.deps.Chair.Release()
	if err != nil {
		return fmt.Errorf("waiting for the haircut: %w", err)
	}

	mismatch := haircut.CustomerID != a.id
	if mismatch {
		out.PrintLine("Customer %d got the haircut meant for customer %d.", a.id, haircut.CustomerID)
	}
	a.tally.recordServed(mismatch)
	out.PrintLine("Customer %d leaving barber shop.", a.id)
	return nil
}
