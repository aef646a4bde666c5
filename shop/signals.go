// File: shop/signals.go
package shop

import (
	"context"
	"sync/atomic"
)

// WakeKind tells the barber why it was woken.
type WakeKind int

const (
	// WakeService means a customer is seated and waiting.
	WakeService WakeKind = iota
	// WakeStop means every customer has left; the barber goes home.
	WakeStop
)

func (k WakeKind) String() string {
	switch k {
	case WakeService:
		return "service"
	case WakeStop:
		return "stop"
	}
	return "unknown"
}

// Wake is one message through the barber's wake channel.
type Wake struct {
	Kind       WakeKind
	CustomerID int
}

// Haircut is the completion the barber hands back to the seated customer.
type Haircut struct {
	CustomerID int // Customer named in the wake that started the haircut
	Number     int // 1-based count of haircuts done by the barber
}

// WakeChannel is how customers wake the barber and how the shop sends
// the barber to go home.
type WakeChannel struct {
	r      *rendezvous[Wake]
	closed atomic.Bool
}

func NewWakeChannel() *WakeChannel {
	return &WakeChannel{r: newRendezvous[Wake]()}
}

// Wake posts a service wake for customerID. It never blocks.
func (w *WakeChannel) Wake(customerID int) {
	w.r.post(Wake{Kind: WakeService, CustomerID: customerID})
}

// Close posts the single stop wake. Later calls do nothing.
func (w *WakeChannel) Close() {
	if w.closed.CompareAndSwap(false, true) {
		w.r.post(Wake{Kind: WakeStop, CustomerID: -1})
	}
}

// SleepUntilWoken blocks until a wake is pending and consumes it.
func (w *WakeChannel) SleepUntilWoken(ctx context.Context) (Wake, error) {
	return w.r.wait(ctx)
}

// Pending is the number of wakes not yet consumed.
func (w *WakeChannel) Pending() int { return w.r.len() }

// ServiceChannel releases the seated customer once the haircut is done.
type ServiceChannel struct {
	r *rendezvous[Haircut]
}

func NewServiceChannel() *ServiceChannel {
	return &ServiceChannel{r: newRendezvous[Haircut]()}
}

// SignalDone posts a completion. It never blocks.
func (s *ServiceChannel) SignalDone(h Haircut) {
	s.r.post(h)
}

// WaitForService blocks until a completion is pending and consumes it.
func (s *ServiceChannel) WaitForService(ctx context.Context) (Haircut, error) {
	return s.r.wait(ctx)
}

func (s *ServiceChannel) Pending() int { return s.r.len() }
