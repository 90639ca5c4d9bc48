package transduce

import "fmt"

type partitionStage[T any] struct {
	size int
	all  bool
	buf  []T
	done bool
}

// Partition returns a stage that groups elements into batches of exactly
// size. An incomplete trailing group is discarded at flush. Returns
// ErrInvalidSize if size is below 1.
func Partition[T any](size int) (Stage[T, []T], error) {
	return newPartition[T](size, false)
}

// PartitionAll returns a stage that groups elements into batches of size,
// emitting the incomplete trailing group, if any, at flush. Returns
// ErrInvalidSize if size is below 1.
func PartitionAll[T any](size int) (Stage[T, []T], error) {
	return newPartition[T](size, true)
}

func newPartition[T any](size int, all bool) (Stage[T, []T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &partitionStage[T]{size: size, all: all, buf: make([]T, 0, size)}, nil
}

func (s *partitionStage[T]) Step(val T) Signal[[]T] {
	if s.done {
		return Terminate[[]T]()
	}
	s.buf = append(s.buf, val)
	if len(s.buf) < s.size {
		return Skip[[]T]()
	}
	batch := s.buf
	s.buf = make([]T, 0, s.size)
	return Emit(batch)
}

func (s *partitionStage[T]) Flush() Signal[[]T] {
	if s.done {
		return Terminate[[]T]()
	}
	if s.all && len(s.buf) > 0 {
		batch := s.buf
		s.buf = nil
		return Emit(batch)
	}
	s.buf = nil
	s.done = true
	return Terminate[[]T]()
}
