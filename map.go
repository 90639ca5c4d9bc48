package transduce

type mapStage[In, Out any] struct {
	fn   func(In) Out
	done bool
}

// Map returns a stage that emits fn(val) for every element.
func Map[In, Out any](fn func(In) Out) Stage[In, Out] {
	return &mapStage[In, Out]{fn: fn}
}

func (s *mapStage[In, Out]) Step(val In) Signal[Out] {
	if s.done {
		return Terminate[Out]()
	}
	return Emit(s.fn(val))
}

func (s *mapStage[In, Out]) Flush() Signal[Out] {
	s.done = true
	return Terminate[Out]()
}
