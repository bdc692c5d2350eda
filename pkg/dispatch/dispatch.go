// Package dispatch runs send and schedule operations as independent
// background tasks and reports each outcome over a channel.
//
// Every task operates on its own captured copy of the draft and identity,
// so concurrent tasks share no mutable state and need no locking. There is
// no cancellation: a dispatched task runs to completion, success or error,
// and reports exactly once.
package dispatch

import "context"

// Kind names the operation a task performed.
type Kind int

const (
	KindSend Kind = iota
	KindSchedule
)

func (k Kind) String() string {
	switch k {
	case KindSend:
		return "send"
	case KindSchedule:
		return "schedule"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of one background task. Err is nil on
// success.
type Outcome struct {
	Kind Kind
	Err  error
}

// Run launches fn on its own goroutine and returns a channel that yields
// exactly one Outcome. The channel is buffered, so the task never blocks on
// a caller that consumes the outcome late.
func Run(ctx context.Context, kind Kind, fn func(context.Context) error) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		out <- Outcome{Kind: kind, Err: fn(ctx)}
		close(out)
	}()
	return out
}
