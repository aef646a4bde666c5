// File: bollywood/actor.go
package bollywood

// Actor is the interface that defines actor behavior.
// Messages are delivered to Receive one at a time, never concurrently.
type Actor interface {
	// Receive processes one message. A long-running actor may block inside
	// Receive; further messages wait in its mailbox until it returns.
	Receive(ctx Context)
}
