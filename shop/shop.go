// File: shop/shop.go
package shop

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/lguibr/barbershop/bollywood"
	"github.com/lguibr/barbershop/utils"
)

// ErrAlreadyRun is returned by a second call to Shop.Run. The shop's
// primitives are created once and never rebuilt.
var ErrAlreadyRun = errors.New("shop: already run")

// Shop owns the four synchronization primitives and runs one barber and
// one actor per customer against them.
type Shop struct {
	cfg    utils.Config
	delays utils.DelaySource
	out    utils.LineSink

	room    *WaitingRoom
	chair   *Chair
	wake    *WakeChannel
	service *ServiceChannel

	tally *tally
	ran   atomic.Bool
}

// NewShop validates cfg and builds the primitives: a room with cfg.Chairs
// free chairs, a free barber chair and two empty signals.
func NewShop(cfg utils.Config, delays utils.DelaySource, out utils.LineSink) (*Shop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if delays == nil || out == nil {
		return nil, errors.New("shop: delay source and line sink are required")
	}

	room, err := NewWaitingRoom(cfg.Chairs)
	if err != nil {
		return nil, err
	}

	return &Shop{
		cfg:     cfg,
		delays:  delays,
		out:     out,
		room:    room,
		chair:   NewChair(),
		wake:    NewWakeChannel(),
		service: NewServiceChannel(),
		tally:   &tally{},
	}, nil
}

// Run spawns the barber and the customers, waits for every customer to
// leave, then sends the barber home and waits for it. Cancelling ctx
// unblocks every actor; the partial report is returned with the error.
func (s *Shop) Run(ctx context.Context) (Report, error) {
	if !s.ran.CompareAndSwap(false, true) {
		return Report{}, ErrAlreadyRun
	}

	engine := bollywood.NewEngine()
	defer engine.Shutdown(s.cfg.ShutdownTimeout)

	barber := NewBarberActor(ctx, s.cfg, s.wake, s.service, s.delays, s.out)
	barber.tally = s.tally
	barberPID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return barber }).WithName("barber"))
	if barberPID == nil {
		return Report{}, errors.New("shop: could not spawn the barber")
	}

	deps := CustomerDeps{
		Room:    s.room,
		Chair:   s.chair,
		Bell:    s.wake,
		Service: s.service,
		Delays:  s.delays,
		Out:     s.out,
	}
	customers := make([]*bollywood.PID, 0, s.cfg.Customers)
	for id := 0; id < s.cfg.Customers; id++ {
		props := bollywood.NewProps(NewCustomerActorProducer(ctx, id, s.cfg, deps, s.tally)).
			WithName(fmt.Sprintf("customer-%d", id))
		pid := engine.Spawn(props)
		if pid == nil {
			s.wake.Close()
			return s.tally.report(s.cfg.Customers), fmt.Errorf("shop: could not spawn customer %d", id)
		}
		customers = append(customers, pid)
	}

	if err := engine.Wait(ctx, customers...); err != nil {
		s.wake.Close()
		return s.tally.report(s.cfg.Customers), fmt.Errorf("waiting for customers: %w", err)
	}

	// Every customer has left; the stop wake is the last thing the barber sees.
	s.wake.Close()
	if err := engine.Wait(ctx, barberPID); err != nil {
		return s.tally.report(s.cfg.Customers), fmt.Errorf("waiting for the barber: %w", err)
	}

	return s.tally.report(s.cfg.Customers), nil
}

// Room, Chair, Wakes and Service expose the primitives for inspection.
func (s *Shop) Room() *WaitingRoom       { return s.room }
func (s *Shop) Chair() *Chair            { return s.chair }
func (s *Shop) Wakes() *WakeChannel      { return s.wake }
func (s *Shop) Service() *ServiceChannel { return s.service }
