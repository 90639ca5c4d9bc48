package transduce

import (
	"slices"
	"testing"
)

func TestCompose_MapThenFilter(t *testing.T) {
	stage := Compose(
		Map(func(i int) int { return i + 1 }),
		Filter(even),
	)
	got := Slice(stage, []int{1, 2, 3, 4, 5})

	if expected := []int{2, 4, 6}; !slices.Equal(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestCompose_Associativity(t *testing.T) {
	input := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	left := Compose(
		Compose(Drop[int](1), Take[int](4)),
		mustStage(PartitionAll[int](2)),
	)
	right := Compose(
		Drop[int](1),
		Compose(Take[int](4), mustStage(PartitionAll[int](2))),
	)

	gotLeft := Slice(left, input)
	gotRight := Slice(right, input)

	if len(gotLeft) != len(gotRight) {
		t.Fatalf("groupings differ: %v vs %v", gotLeft, gotRight)
	}
	for i := range gotLeft {
		if !slices.Equal(gotLeft[i], gotRight[i]) {
			t.Fatalf("at %d groupings differ: %v vs %v", i, gotLeft[i], gotRight[i])
		}
	}

	expected := [][]int{{1, 2}, {3, 4}}
	if len(gotLeft) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, gotLeft)
	}
	for i := range expected {
		if !slices.Equal(gotLeft[i], expected[i]) {
			t.Fatalf("at %d expected %v, got %v", i, expected[i], gotLeft[i])
		}
	}
}

func TestCompose_UpstreamTerminationDrainsDownstream(t *testing.T) {
	stage := Compose(Take[int](5), mustStage(PartitionAll[int](3)))
	got := Slice(stage, []int{0, 1, 2, 3, 4, 5, 6})

	expected := [][]int{{0, 1, 2}, {3, 4}}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if !slices.Equal(got[i], expected[i]) {
			t.Fatalf("at %d expected %v, got %v", i, expected[i], got[i])
		}
	}
}

func TestCompose_QueuedOutputsDeliveredOnePerCall(t *testing.T) {
	stage := Compose(Take[int](2), MapCat(duplicate))
	got := Slice(stage, []int{1, 2, 3, 4})

	if expected := []int{1, 1, 2, 2}; !slices.Equal(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}

func TestCompose_SkipLeavesDownstreamUntouched(t *testing.T) {
	steps := 0
	counting := Map(func(i int) int { steps++; return i })
	stage := Compose(Filter(even), counting)

	stage.Step(1)
	stage.Step(3)
	if steps != 0 {
		t.Fatalf("expected downstream untouched for skipped elements, saw %d steps", steps)
	}
	stage.Step(2)
	if steps != 1 {
		t.Fatalf("expected one downstream step, saw %d", steps)
	}
}

func TestCompose_DownstreamTerminationTerminatesPipeline(t *testing.T) {
	stage := Compose(Map(func(i int) int { return i }), Take[int](1))

	if v, ok := stage.Step(1).Value(); !ok || v != 1 {
		t.Fatalf("expected 1, got %v %v", v, ok)
	}
	if !stage.Step(2).Terminated() {
		t.Fatal("expected terminate once downstream terminates")
	}
	if !stage.Step(3).Terminated() {
		t.Fatal("expected terminate to be idempotent")
	}
	if !stage.Flush().Terminated() {
		t.Fatal("expected flush after termination to terminate")
	}
}

func TestCompose_FlushPropagatesThroughBothHalves(t *testing.T) {
	stage := Compose(
		mustStage(PartitionAll[int](2)),
		Map(func(batch []int) int {
			sum := 0
			for _, v := range batch {
				sum += v
			}
			return sum
		}),
	)
	got := Slice(stage, []int{1, 2, 3})

	if expected := []int{3, 3}; !slices.Equal(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
}
