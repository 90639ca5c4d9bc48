package transduce

// Stage is a single transformation unit. Elements are offered one at a time
// through Step, in arrival order; after the element source is exhausted,
// Flush is called repeatedly until it returns Terminate, giving stateful
// stages the chance to drain buffered state one value at a time.
//
// A Stage owns its internal state exclusively. It is created ready to accept
// the first element and must never be shared between pipelines or mutated
// from more than one goroutine. Once any call returns Terminate, every later
// Step or Flush call must return Terminate; continuing to call a terminated
// stage is harmless.
type Stage[In, Out any] interface {
	// Step offers one element to the stage. The element is consumed and is
	// never re-offered, whatever the result.
	Step(val In) Signal[Out]

	// Flush asks the stage for buffered output after the element source is
	// exhausted. Emit means "one more value, ask again", Skip means "nothing
	// to emit yet, ask again", and Terminate ends the flush loop.
	Flush() Signal[Out]
}
