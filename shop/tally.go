// File: shop/tally.go
package shop

import "sync/atomic"

// Report summarizes one run of the shop.
type Report struct {
	Customers      int   // Customers spawned
	Served         int   // Customers that got a haircut and left
	Haircuts       int   // Haircuts the barber performed
	Mismatched     int   // Completions received by the wrong customer
	MaxWaiting     int   // Highest waiting-room occupancy observed
	MaxInShop      int   // Highest count of customers in the room or the chair
	LastCustomerAt int64 // Exit ticket of the last customer to leave
	BarberHomeAt   int64 // Exit ticket of the barber; 0 if it never went home
}

// tally collects counters from the actors while the shop runs.
type tally struct {
	served     atomic.Int64
	haircuts   atomic.Int64
	mismatched atomic.Int64

	inShop     atomic.Int64
	maxInShop  atomic.Int64
	maxWaiting atomic.Int64

	exitSeq        atomic.Int64
	lastCustomerAt atomic.Int64
	barberHomeAt   atomic.Int64
}

func storeMax(v *atomic.Int64, n int64) {
	for {
		cur := v.Load()
		if n <= cur || v.CompareAndSwap(cur, n) {
			return
		}
	}
}

func (t *tally) observeWaiting(n int) {
	if t != nil {
		storeMax(&t.maxWaiting, int64(n))
	}
}

func (t *tally) arrived() {
	if t != nil {
		storeMax(&t.maxInShop, t.inShop.Add(1))
	}
}

func (t *tally) departed() {
	if t != nil {
		t.inShop.Add(-1)
	}
}

func (t *tally) recordServed(mismatch bool) {
	if t == nil {
		return
	}
	t.served.Add(1)
	if mismatch {
		t.mismatched.Add(1)
	}
}

func (t *tally) cut() {
	if t != nil {
		t.haircuts.Add(1)
	}
}

// customerExit and barberHome hand out increasing exit tickets so a report
// can show who finished first.
func (t *tally) customerExit() {
	if t != nil {
		storeMax(&t.lastCustomerAt, t.exitSeq.Add(1))
	}
}

func (t *tally) barberHome() {
	if t != nil {
		t.barberHomeAt.Store(t.exitSeq.Add(1))
	}
}

func (t *tally) report(customers int) Report {
	return Report{
		Customers:      customers,
		Served:         int(t.served.Load()),
		Haircuts:       int(t.haircuts.Load()),
		Mismatched:     int(t.mismatched.Load()),
		MaxWaiting:     int(t.maxWaiting.Load()),
		MaxInShop:      int(t.maxInShop.Load()),
		LastCustomerAt: t.lastCustomerAt.Load(),
		BarberHomeAt:   t.barberHomeAt.Load(),
	}
}
