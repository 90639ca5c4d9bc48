package transduce

type composed[In, Mid, Out any] struct {
	up      Stage[In, Mid]
	down    Stage[Mid, Out]
	pending []Out
	done    bool
}

// Compose chains two stages into one. Elements flow through upstream first;
// every value upstream emits is forwarded into downstream, and when either
// half terminates the composite drains downstream's buffered state before
// reporting Terminate itself. Composition is associative: any grouping of the
// same stages produces the same output sequence.
func Compose[In, Mid, Out any](upstream Stage[In, Mid], downstream Stage[Mid, Out]) Stage[In, Out] {
	return &composed[In, Mid, Out]{up: upstream, down: downstream}
}

func (c *composed[In, Mid, Out]) Step(val In) Signal[Out] {
	if len(c.pending) > 0 {
		return c.next()
	}
	if c.done {
		return Terminate[Out]()
	}
	return c.relay(c.up.Step(val))
}

func (c *composed[In, Mid, Out]) Flush() Signal[Out] {
	if len(c.pending) > 0 {
		return c.next()
	}
	if c.done {
		return Terminate[Out]()
	}
	return c.relay(c.up.Flush())
}

func (c *composed[In, Mid, Out]) relay(sig Signal[Mid]) Signal[Out] {
	if v, ok := sig.Value(); ok {
		out := c.down.Step(v)
		if out.Terminated() {
			c.done = true
		}
		return out
	}
	if sig.Terminated() {
		return c.drain()
	}
	return Skip[Out]()
}

// drain simulates end-of-input for the downstream half once upstream has
// terminated. The protocol allows one value per call, so all but the first
// drained value are queued and delivered by later calls.
func (c *composed[In, Mid, Out]) drain() Signal[Out] {
	c.done = true
	for {
		sig := c.down.Flush()
		if v, ok := sig.Value(); ok {
			c.pending = append(c.pending, v)
			continue
		}
		if sig.Terminated() {
			break
		}
	}
	if len(c.pending) > 0 {
		return c.next()
	}
	return Terminate[Out]()
}

func (c *composed[In, Mid, Out]) next() Signal[Out] {
	head := c.pending[0]
	c.pending = c.pending[1:]
	return Emit(head)
}
