// Package nullable provides a generic tri-state wrapper that distinguishes
// absent, explicitly-null, and present values.
//
// A plain pointer collapses "the client never sent this field" and "the
// client sent null" into one nil, which is not enough for PATCH-style
// payloads or validators that treat the two differently. Null[T] keeps the
// three states apart and offers a single extraction point, Take, which
// collapses both empty states to "no value" for callers that do not care
// about the distinction.
//
// # Usage
//
//	var age nullable.Null[int32]          // Undefined
//	age = nullable.New[int32](42)         // Value
//	age = nullable.Nil[int32]()           // explicit Null
//
//	if v, ok := age.Take(); ok {
//	    // use v
//	}
//
// The zero value is Undefined, so struct fields of type Null[T] behave
// correctly without initialization. JSON marshaling renders both empty
// states as null; unmarshaling maps null to the explicit-null state.
package nullable
