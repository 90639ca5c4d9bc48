package transduce

type signalKind uint8

const (
	signalSkip signalKind = iota
	signalEmit
	signalTerminate
)

// Signal is the result of a single stage step. It carries exactly one of
// three outcomes: no output (Skip), a single output value (Emit), or the end
// of the stream (Terminate). A step never yields more than one value; stages
// that conceptually emit batches accumulate internally and emit the whole
// batch as one value.
type Signal[T any] struct {
	val  T
	kind signalKind
}

// Emit returns a Signal carrying one output value.
func Emit[T any](val T) Signal[T] {
	return Signal[T]{val: val, kind: signalEmit}
}

// Skip returns a Signal indicating the step consumed its input but produced
// no output. During a flush it means "nothing to emit yet, ask again".
func Skip[T any]() Signal[T] {
	return Signal[T]{kind: signalSkip}
}

// Terminate returns a Signal indicating no further input should be offered.
// A stage that has terminated keeps returning Terminate for all later calls.
func Terminate[T any]() Signal[T] {
	return Signal[T]{kind: signalTerminate}
}

// Value returns the produced value and whether one was produced.
func (s Signal[T]) Value() (T, bool) {
	return s.val, s.kind == signalEmit
}

// Terminated reports whether the stage has ended the stream.
func (s Signal[T]) Terminated() bool {
	return s.kind == signalTerminate
}
