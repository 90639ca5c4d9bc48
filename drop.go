package transduce

type dropStage[T any] struct {
	n       int
	dropped int
	done    bool
}

// Drop returns a stage that skips the first n elements and passes through
// the rest.
func Drop[T any](n int) Stage[T, T] {
	return &dropStage[T]{n: n}
}

func (s *dropStage[T]) Step(val T) Signal[T] {
	if s.done {
		return Terminate[T]()
	}
	if s.dropped < s.n {
		s.dropped++
		return Skip[T]()
	}
	return Emit(val)
}

func (s *dropStage[T]) Flush() Signal[T] {
	s.done = true
	return Terminate[T]()
}

type dropWhileStage[T any] struct {
	pred     func(T) bool
	dropping bool
	done     bool
}

// DropWhile returns a stage that skips elements until pred first returns
// false, then passes through every element after that.
func DropWhile[T any](pred func(T) bool) Stage[T, T] {
	return &dropWhileStage[T]{pred: pred, dropping: true}
}

func (s *dropWhileStage[T]) Step(val T) Signal[T] {
	if s.done {
		return Terminate[T]()
	}
	if s.dropping {
		if s.pred(val) {
			return Skip[T]()
		}
		s.dropping = false
	}
	return Emit(val)
}

func (s *dropWhileStage[T]) Flush() Signal[T] {
	s.done = true
	return Terminate[T]()
}
