package transduce

type takeStage[T any] struct {
	n     int
	taken int
	done  bool
}

// Take returns a stage that emits the first n elements and then terminates
// the stream.
func Take[T any](n int) Stage[T, T] {
	return &takeStage[T]{n: n}
}

func (s *takeStage[T]) Step(val T) Signal[T] {
	if s.done || s.taken >= s.n {
		s.done = true
		return Terminate[T]()
	}
	s.taken++
	return Emit(val)
}

func (s *takeStage[T]) Flush() Signal[T] {
	s.done = true
	return Terminate[T]()
}

type takeWhileStage[T any] struct {
	pred func(T) bool
	done bool
}

// TakeWhile returns a stage that emits elements until pred first returns
// false, then terminates the stream.
func TakeWhile[T any](pred func(T) bool) Stage[T, T] {
	return &takeWhileStage[T]{pred: pred}
}

func (s *takeWhileStage[T]) Step(val T) Signal[T] {
	if s.done {
		return Terminate[T]()
	}
	if s.pred(val) {
		return Emit(val)
	}
	s.done = true
	return Terminate[T]()
}

func (s *takeWhileStage[T]) Flush() Signal[T] {
	s.done = true
	return Terminate[T]()
}
