// Package empty provides a collection that is always empty and an iterator
// that is always exhausted.
//
// Both types are zero-size and stateless. They exist so generic code that
// needs "a collection" or "an iterator" can be handed one that holds
// nothing, without allocating and without branching on emptiness:
//
//	var l empty.List[string]
//	l.Len()             // 0
//	for s := range l.All() {
//	    // never runs
//	}
//
//	it := l.Iter()
//	_, ok := it.Next()  // false, on this and every later call
//	it.SizeHint()       // 0, Some(0)
//
// Any two lists (or iterators) of the same element type are equal, hash
// identically and are never less than each other.
//
// Indexing is the one operation that fails: a List has no valid index, so
// Get and GetPtr panic with an *errors.IndexError for every argument, just
// like indexing past the end of a slice. Check Len, or use collection.At,
// first.
//
// The builders (Collect, FromSlice, FromIter) turn an empty input into a
// List and panic when handed an element. Decoding accepts only an empty
// JSON array / YAML sequence (or null), so a List can sit in a config or
// request struct to assert that a field is always empty.
package empty
