package transduce

import "iter"

// Seq lazily applies stage to the values of src. Elements are pulled from src
// one at a time as the returned sequence is consumed; after src is exhausted
// the stage is flushed. Iteration stops early if the stage terminates the
// stream or the consumer stops.
func Seq[In, Out any](stage Stage[In, Out], src iter.Seq[In]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for val := range src {
			sig := stage.Step(val)
			if v, ok := sig.Value(); ok {
				if !yield(v) {
					return
				}
				continue
			}
			if sig.Terminated() {
				return
			}
		}
		for {
			sig := stage.Flush()
			if v, ok := sig.Value(); ok {
				if !yield(v) {
					return
				}
				continue
			}
			if sig.Terminated() {
				return
			}
		}
	}
}
