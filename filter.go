package transduce

type filterStage[T any] struct {
	pred func(T) bool
	keep bool
	done bool
}

// Filter returns a stage that passes through elements for which pred returns
// true and skips the rest.
func Filter[T any](pred func(T) bool) Stage[T, T] {
	return &filterStage[T]{pred: pred, keep: true}
}

// Remove returns a stage that skips elements for which pred returns true,
// the inverse of Filter.
func Remove[T any](pred func(T) bool) Stage[T, T] {
	return &filterStage[T]{pred: pred}
}

func (s *filterStage[T]) Step(val T) Signal[T] {
	if s.done {
		return Terminate[T]()
	}
	if s.pred(val) == s.keep {
		return Emit(val)
	}
	return Skip[T]()
}

func (s *filterStage[T]) Flush() Signal[T] {
	s.done = true
	return Terminate[T]()
}
