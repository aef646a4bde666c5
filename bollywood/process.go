// File: bollywood/process.go
package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	mailbox  chan *messageEnvelope
	props    *Props
	stopCh   chan struct{} // closed to leave the run loop
	stopOnce sync.Once
	stopped  atomic.Bool
	done     chan struct{} // closed after the goroutine has finished
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (p *process) signalStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// sendMessage never blocks; a full mailbox drops the message.
func (p *process) sendMessage(message interface{}, sender *PID) {
	if p.stopped.Load() && !isSystemMessage(message) {
		return
	}

	select {
	case p.mailbox <- &messageEnvelope{Sender: sender, Message: message}:
	default:
		fmt.Printf("Actor %s mailbox full, dropping message type %T\n", p.pid.ID, message)
	}
}

func (p *process) run() {
	defer close(p.done)
	defer p.engine.remove(p.pid)
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(Stopped{}, nil)
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked: %v\nStack trace:\n%s\n", p.pid.ID, r, string(debug.Stack()))
			p.stopped.Store(true)
			p.signalStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("Actor %s producer returned nil actor", p.pid.ID))
	}

	for {
		// A pending stop wins over queued user messages.
		select {
		case <-p.stopCh:
			p.beginStopping()
			return
		default:
		}

		select {
		case <-p.stopCh:
			p.beginStopping()
			return

		case envelope := <-p.mailbox:
			switch msg := envelope.Message.(type) {
			case Stopping:
				p.beginStopping()
				p.signalStop()
				return
			case Stopped:
				// Only ever delivered by the deferred cleanup above.
			case Started:
				p.invokeReceive(msg, envelope.Sender)
			default:
				if p.stopped.Load() {
					continue
				}
				p.invokeReceive(envelope.Message, envelope.Sender)
			}
		}
	}
}

// beginStopping delivers Stopping exactly once.
func (p *process) beginStopping() {
	if p.stopped.CompareAndSwap(false, true) {
		p.invokeReceive(Stopping{}, nil)
	}
}

// invokeReceive calls the actor's Receive method, recovering from panics inside it.
func (p *process) invokeReceive(msg interface{}, sender *PID) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: msg,
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s\n", p.pid.ID, msg, r, string(debug.Stack()))
		}
	}()
	p.actor.Receive(ctx)
}
