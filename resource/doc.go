// Package resource maps opaque uint32 handles to host values.
//
// It backs the foreign-function surfaces, where callers only ever see a
// number. Handle 0 is reserved and always invalid.
//
// # Handle Table
//
//	table := resource.NewTable()
//
//	h := table.Insert(typeEngine, value)
//	value, ok := table.Lookup(h, typeEngine)
//	value, ok = table.Remove(h)
//
// # Generations
//
// Each slot carries a generation that advances when the slot is reused, and
// the generation is part of the handle. A removed handle therefore never
// resolves again, even after its slot holds a new value. Slots whose
// generation is exhausted are retired.
//
// # Observers
//
// Observers receive EventCreated and EventDropped notifications. Values that
// implement Dropper are dropped on Remove and Close.
package resource
