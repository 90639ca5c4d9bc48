package transduce

type mapcatStage[In, Out any] struct {
	fn    func(In) []Out
	queue []Out
	done  bool
}

// MapCat returns a stage that expands each element into zero or more output
// values via fn. A step still emits at most one value; surplus outputs are
// queued and delivered by later steps or the flush, in order.
func MapCat[In, Out any](fn func(In) []Out) Stage[In, Out] {
	return &mapcatStage[In, Out]{fn: fn}
}

func (s *mapcatStage[In, Out]) Step(val In) Signal[Out] {
	if s.done {
		return Terminate[Out]()
	}
	s.queue = append(s.queue, s.fn(val)...)
	if len(s.queue) == 0 {
		return Skip[Out]()
	}
	return s.next()
}

func (s *mapcatStage[In, Out]) Flush() Signal[Out] {
	if s.done {
		return Terminate[Out]()
	}
	if len(s.queue) > 0 {
		return s.next()
	}
	s.done = true
	return Terminate[Out]()
}

func (s *mapcatStage[In, Out]) next() Signal[Out] {
	head := s.queue[0]
	s.queue = s.queue[1:]
	return Emit(head)
}
