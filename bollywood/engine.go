// File: bollywood/engine.go
package bollywood

import (
	ctxpkg "context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex // Protects the actors map
	stopping   atomic.Bool
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

// nextPID generates a unique process ID. Named props keep their name
// unless another live actor already uses it. Caller holds e.mu.
func (e *Engine) nextPID(name string) *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	if name == "" {
		return &PID{ID: fmt.Sprintf("actor-%d", id)}
	}
	if _, taken := e.actors[name]; !taken {
		return &PID{ID: name}
	}
	return &PID{ID: fmt.Sprintf("%s-%d", name, id)}
}

// Spawn creates and starts a new actor based on the provided Props.
// It returns nil once the engine is shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		fmt.Println("Engine is stopping, cannot spawn new actors")
		return nil
	}

	e.mu.Lock()
	pid := e.nextPID(props.name)
	proc := newProcess(e, pid, props)
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	e.Send(pid, Started{}, nil)

	return pid
}

// Send delivers a message to the actor identified by the PID.
// Messages to unknown or finished actors are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil {
		return
	}
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}

	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if ok {
		proc.sendMessage(message, sender)
	}
}

// Stop requests an actor to stop. An actor may stop itself from inside
// Receive; it terminates as soon as Receive returns.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if ok {
		proc.sendMessage(Stopping{}, nil)
		proc.signalStop()
	}
}

// Done returns a channel that is closed once the actor's goroutine has
// exited. Unknown PIDs yield an already closed channel.
func (e *Engine) Done(pid *PID) <-chan struct{} {
	if pid != nil {
		e.mu.RLock()
		proc, ok := e.actors[pid.ID]
		e.mu.RUnlock()
		if ok {
			return proc.done
		}
	}
	closed := make(chan struct{})
	close(closed)
	return closed
}

// Wait blocks until every given actor has terminated or ctx is done.
func (e *Engine) Wait(ctx ctxpkg.Context, pids ...*PID) error {
	for _, pid := range pids {
		select {
		case <-e.Done(pid):
		case <-ctx.Done():
			return fmt.Errorf("waiting for actor %s: %w", pid, ctx.Err())
		}
	}
	return nil
}

// Running reports how many actors are currently alive.
func (e *Engine) Running() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}

// remove removes an actor process from the engine's tracking.
func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits up to timeout for them to terminate.
// Actors blocked inside Receive only terminate once Receive returns.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	for _, proc := range procs {
		e.Stop(proc.pid)
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for _, proc := range procs {
		select {
		case <-proc.done:
		case <-deadline.C:
			e.mu.RLock()
			remaining := make([]string, 0, len(e.actors))
			for id := range e.actors {
				remaining = append(remaining, id)
			}
			e.mu.RUnlock()
			fmt.Printf("Engine shutdown timeout: %d actors did not stop gracefully: %v\n", len(remaining), remaining)
			return
		}
	}
}
