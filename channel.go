package transduce

import "context"

// Sender is the transducing producer half of a channel pair created by
// NewChannel. Every value passed to Send is driven through the stage, and any
// produced output is forwarded to the consumer side of the channel. A Sender
// must be driven by at most one goroutine: its stage state is not
// synchronized.
type Sender[In, Out any] struct {
	stage      Stage[In, Out]
	out        chan Out
	closed     bool
	terminated bool
}

// NewChannel couples stage to a new channel with the given buffer size and
// returns the transducing producer handle together with the plain receive
// side. The consumer reads the channel directly; it observes exactly the
// values the stage emits, in emission order, and sees the channel close only
// after Close has flushed all buffered output.
func NewChannel[In, Out any](stage Stage[In, Out], size int) (*Sender[In, Out], <-chan Out) {
	out := make(chan Out, size)
	return &Sender[In, Out]{stage: stage, out: out}, out
}

// Send drives one element through the stage, forwarding a produced value to
// the consumer. It returns ErrClosed after Close has run or after the stage
// has terminated the stream, without touching the stage. Send blocks while
// the channel is full; if ctx is canceled while blocked the cancellation is
// returned unchanged and stage state already advanced for the element stays
// advanced.
func (s *Sender[In, Out]) Send(ctx context.Context, val In) error {
	if s.closed || s.terminated {
		return ErrClosed
	}
	sig := s.stage.Step(val)
	if v, ok := sig.Value(); ok {
		return s.forward(ctx, v)
	}
	if sig.Terminated() {
		s.terminated = true
	}
	return nil
}

// Close flushes the stage, forwarding every remaining value to the consumer
// in order, then closes the underlying channel. The flush runs exactly once;
// later calls are no-ops. The channel is closed on every exit path, including
// cancellation mid-flush.
func (s *Sender[In, Out]) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true
	defer close(s.out)
	for {
		sig := s.stage.Flush()
		if v, ok := sig.Value(); ok {
			if err := s.forward(ctx, v); err != nil {
				return err
			}
			continue
		}
		if sig.Terminated() {
			return nil
		}
	}
}

func (s *Sender[In, Out]) forward(ctx context.Context, val Out) error {
	select {
	case s.out <- val:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
