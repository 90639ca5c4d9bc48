package transduce

type replaceStage[T comparable] struct {
	repl map[T]T
	done bool
}

// Replace returns a stage that substitutes each element found as a key in
// replacements with the mapped value, passing other elements through.
func Replace[T comparable](replacements map[T]T) Stage[T, T] {
	return &replaceStage[T]{repl: replacements}
}

func (s *replaceStage[T]) Step(val T) Signal[T] {
	if s.done {
		return Terminate[T]()
	}
	if r, ok := s.repl[val]; ok {
		return Emit(r)
	}
	return Emit(val)
}

func (s *replaceStage[T]) Flush() Signal[T] {
	s.done = true
	return Terminate[T]()
}
