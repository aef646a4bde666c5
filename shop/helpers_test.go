// File: shop/helpers_test.go
package shop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lguibr/barbershop/bollywood"
	"github.com/lguibr/barbershop/utils"
)

// instantDelay never sleeps.
type instantDelay struct{}

func (instantDelay) Delay(ctx context.Context, _ int) error { return ctx.Err() }

// testConfig keeps delays in microseconds so whole runs take milliseconds.
func testConfig(customers, chairs int, seed int64) utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Customers = customers
	cfg.Chairs = chairs
	cfg.Seed = seed
	cfg.TimeUnit = 50 * time.Microsecond
	cfg.ShutdownTimeout = time.Second
	return cfg
}

// probe watches the primitives from the customer's side and records the
// order of calls plus any invariant violation.
type probe struct {
	mu         sync.Mutex
	events     []string
	inRoom     int
	maxInRoom  int
	seated     int
	maxSeated  int
	inShop     int
	maxInShop  int
	chairFirst bool // every room Leave happened while its customer held the chair
}

func newProbe() *probe { return &probe{chairFirst: true} }

func (p *probe) record(event string) {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
}

func (p *probe) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	copy(out, p.events)
	return out
}

type probedRoom struct {
	inner Room
	p     *probe
}

func (r *probedRoom) Enter(ctx context.Context) error {
	if err := r.inner.Enter(ctx); err != nil {
		return err
	}
	r.p.mu.Lock()
	r.p.events = append(r.p.events, "enter")
	r.p.inRoom++
	r.p.inShop++
	if r.p.inRoom > r.p.maxInRoom {
		r.p.maxInRoom = r.p.inRoom
	}
	if r.p.inShop > r.p.maxInShop {
		r.p.maxInShop = r.p.inShop
	}
	r.p.mu.Unlock()
	return nil
}

func (r *probedRoom) Leave() {
	r.p.mu.Lock()
	r.p.events = append(r.p.events, "leave")
	r.p.inRoom--
	// The customer leaving the room is counted in the chair already.
	r.p.inShop--
	if r.p.seated == 0 {
		r.p.chairFirst = false
	}
	r.p.mu.Unlock()
	r.inner.Leave()
}

type probedSeat struct {
	inner Seat
	p     *probe
}

func (s *probedSeat) Acquire(ctx context.Context, id int) error {
	if err := s.inner.Acquire(ctx, id); err != nil {
		return err
	}
	s.p.mu.Lock()
	s.p.events = append(s.p.events, "acquire")
	s.p.seated++
	if s.p.seated > s.p.maxSeated {
		s.p.maxSeated = s.p.seated
	}
	s.p.inShop++
	if s.p.inShop > s.p.maxInShop {
		s.p.maxInShop = s.p.inShop
	}
	s.p.mu.Unlock()
	return nil
}

func (s *probedSeat) Release() {
	s.p.mu.Lock()
	s.p.events = append(s.p.events, "release")
	s.p.seated--
	s.p.inShop--
	s.p.mu.Unlock()
	s.inner.Release()
}

type probedBell struct {
	inner Waker
	p     *probe
}

func (b *probedBell) Wake(id int) {
	b.p.record("wake")
	b.inner.Wake(id)
}

type probedService struct {
	inner ServiceWaiter
	p     *probe
}

func (s *probedService) WaitForService(ctx context.Context) (Haircut, error) {
	h, err := s.inner.WaitForService(ctx)
	if err == nil {
		s.p.record("served")
	}
	return h, err
}

// harness runs a barber and customers on a fresh engine with probed
// primitives, the way Shop.Run does.
type harness struct {
	engine  *bollywood.Engine
	probe   *probe
	out     *utils.RecordingSink
	barber  *BarberActor
	wakes   *WakeChannel
	service *ServiceChannel
	tally   *tally
}

func runHarness(t *testing.T, cfg utils.Config, delays utils.DelaySource) *harness {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	room, err := NewWaitingRoom(cfg.Chairs)
	if err != nil {
		t.Fatalf("NewWaitingRoom: %v", err)
	}
	h := &harness{
		engine:  bollywood.NewEngine(),
		probe:   newProbe(),
		out:     &utils.RecordingSink{},
		wakes:   NewWakeChannel(),
		service: NewServiceChannel(),
		tally:   &tally{},
	}
	t.Cleanup(func() { h.engine.Shutdown(time.Second) })

	h.barber = NewBarberActor(ctx, cfg, h.wakes, h.service, delays, h.out)
	h.barber.tally = h.tally
	barberPID := h.engine.Spawn(bollywood.NewProps(func() bollywood.Actor { return h.barber }))

	deps := CustomerDeps{
		Room:    &probedRoom{inner: room, p: h.probe},
		Chair:   &probedSeat{inner: NewChair(), p: h.probe},
		Bell:    &probedBell{inner: h.wakes, p: h.probe},
		Service: &probedService{inner: h.service, p: h.probe},
		Delays:  delays,
		Out:     h.out,
	}
	pids := make([]*bollywood.PID, 0, cfg.Customers)
	for id := 0; id < cfg.Customers; id++ {
		pids = append(pids, h.engine.Spawn(bollywood.NewProps(NewCustomerActorProducer(ctx, id, cfg, deps, h.tally))))
	}

	if err := h.engine.Wait(ctx, pids...); err != nil {
		t.Fatalf("customers did not finish: %v", err)
	}
	h.wakes.Close()
	if err := h.engine.Wait(ctx, barberPID); err != nil {
		t.Fatalf("barber did not go home: %v", err)
	}
	return h
}
