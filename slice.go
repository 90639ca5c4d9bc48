package transduce

// Slice applies stage to each element of src in order and collects every
// produced value into a new slice, flushing buffered state after the last
// element. It stops early if the stage terminates the stream.
func Slice[In, Out any](stage Stage[In, Out], src []In) []Out {
	var result []Out
	for _, val := range src {
		sig := stage.Step(val)
		if v, ok := sig.Value(); ok {
			result = append(result, v)
			continue
		}
		if sig.Terminated() {
			return result
		}
	}
	for {
		sig := stage.Flush()
		if v, ok := sig.Value(); ok {
			result = append(result, v)
			continue
		}
		if sig.Terminated() {
			return result
		}
	}
}
