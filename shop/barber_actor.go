// File: shop/barber_actor.go
package shop

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/lguibr/barbershop/bollywood"
	"github.com/lguibr/barbershop/utils"
)

// BarberState is where the barber is in its loop.
type BarberState int32

const (
	BarberSleeping BarberState = iota
	BarberServicing
	BarberStopped
)

func (s BarberState) String() string {
	switch s {
	case BarberSleeping:
		return "sleeping"
	case BarberServicing:
		return "servicing"
	case BarberStopped:
		return "stopped"
	}
	return fmt.Sprintf("BarberState(%d)", int32(s))
}

// BarberActor implements the bollywood.Actor interface for the barber.
// Once started it loops sleep, cut, signal until it receives the stop wake.
type BarberActor struct {
	runCtx  context.Context
	cfg     utils.Config
	sleeper Sleeper
	done    ServiceSignaler
	delays  utils.DelaySource
	out     utils.LineSink
	tally   *tally

	state    atomic.Int32
	haircuts atomic.Int64
}

// NewBarberActor creates a barber in the Sleeping state.
func NewBarberActor(runCtx context.Context, cfg utils.Config, sleeper Sleeper, done ServiceSignaler, delays utils.DelaySource, out utils.LineSink) *BarberActor {
	return &BarberActor{
		runCtx:  runCtx,
		cfg:     cfg,
		sleeper: sleeper,
		done:    done,
		delays:  delays,
		out:     out,
	}
}

func (a *BarberActor) State() BarberState { return BarberState(a.state.Load()) }

// Haircuts is the number of haircuts finished so far.
func (a *BarberActor) Haircuts() int { return int(a.haircuts.Load()) }

// Receive handles incoming messages for the BarberActor.
func (a *BarberActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		if err := a.work(); err != nil {
			a.out.PrintLine("The barber was interrupted: %v", err)
		}
		a.state.Store(int32(BarberStopped))
		ctx.Engine().Stop(ctx.Self())

	case bollywood.Stopping, bollywood.Stopped:

	default:
		a.out.PrintLine("The barber received unknown message: %T", msg)
	}
}

func (a *BarberActor) work() error {
	for {
		a.state.Store(int32(BarberSleeping))
		a.out.PrintLine("The barber is sleeping")
		wake, err := a.sleeper.SleepUntilWoken(a.runCtx)
		if err != nil {
			return fmt.Errorf("sleeping: %w", err)
		}

		if wake.Kind == WakeStop {
			a.out.PrintLine("The barber goes to home now.")
			a.tally.barberHome()
			return nil
		}

		a.state.Store(int32(BarberServicing))
		a.out.PrintLine("The barber is cutting hair")
		if err := a.delays.Delay(a.runCtx, a.cfg.MaxHaircutSeconds); err != nil {
			return fmt.Errorf("cutting hair for customer %d: %w", wake.CustomerID, err)
		}
		n := a.haircuts.Add(1)
		a.tally.cut()
		a.out.PrintLine("The barber finished cutting hair.")

		a.done.SignalDone(Haircut{CustomerID: wake.CustomerID, Number: int(n)})
	}
}
