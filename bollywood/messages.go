// File: bollywood/messages.go
package bollywood

// --- System Messages ---

// Started is the first message every actor receives.
type Started struct{}

// Stopping asks an actor to release what it holds. No user messages are
// delivered after it.
type Stopping struct{}

// Stopped is the last message an actor receives, right before its
// goroutine exits.
type Stopped struct{}

func isSystemMessage(message interface{}) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}

// messageEnvelope wraps a user message with sender information.
type messageEnvelope struct {
	Sender  *PID
	Message interface{}
}
