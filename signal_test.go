package transduce

import "testing"

func TestSignal_Emit(t *testing.T) {
	sig := Emit(42)
	v, ok := sig.Value()
	if !ok {
		t.Fatal("expected a value")
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
	if sig.Terminated() {
		t.Fatal("emit must not be terminated")
	}
}

func TestSignal_Skip(t *testing.T) {
	sig := Skip[int]()
	if _, ok := sig.Value(); ok {
		t.Fatal("skip must not carry a value")
	}
	if sig.Terminated() {
		t.Fatal("skip must not be terminated")
	}
}

func TestSignal_Terminate(t *testing.T) {
	sig := Terminate[int]()
	if _, ok := sig.Value(); ok {
		t.Fatal("terminate must not carry a value")
	}
	if !sig.Terminated() {
		t.Fatal("expected terminated")
	}
}

func TestSignal_ZeroValueIsSkip(t *testing.T) {
	var sig Signal[string]
	if _, ok := sig.Value(); ok {
		t.Fatal("zero signal must not carry a value")
	}
	if sig.Terminated() {
		t.Fatal("zero signal must not be terminated")
	}
}
