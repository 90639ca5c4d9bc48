// Package transduce provides composable data-transformation stages that are
// independent of the structure carrying the data. A transformation is built
// once by composing stages and then applied unchanged to an in-memory slice,
// a pull iterator, or the producer side of a channel.
//
// # Quick Start
//
//	evens := transduce.Filter(func(i int) bool { return i%2 == 0 })
//	doubled := transduce.Map(func(i int) int { return i * 2 })
//	result := transduce.Slice(transduce.Compose(evens, doubled), []int{1, 2, 3, 4})
//	// result == []int{4, 8}
//
// # Categories
//
// Stages: [Map], [MapCat], [Filter], [Remove], [Partition], [PartitionAll],
// [Take], [TakeWhile], [Drop], [DropWhile], [Replace]
//
// Composition: [Compose]
//
// Applications: [Slice], [Seq], [NewChannel]
//
// Middleware: [Logged], [LoggedSlog]
//
// Every stage obeys the same step contract, documented on [Stage]; custom
// stages only need to implement that interface to compose with the built-in
// catalogue.
package transduce
