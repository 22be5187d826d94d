package dynjson

import "sort"

// Get returns the child stored under key. Values that are not
// dictionaries, and keys that are not present, yield a null value, so
// lookups chain without intermediate checks.
func (v Value) Get(key string) Value {
	if v.kind != Dictionary {
		return Value{}
	}
	child, ok := v.obj[key]
	if !ok {
		return Value{}
	}
	return child
}

// Index returns the element at position i. Non-array values yield null.
// Indexes outside [0, len) also degrade to null rather than panicking,
// keeping index access consistent with the key-access contract.
func (v Value) Index(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// Path applies a chain of navigation steps in order. String steps are
// key lookups and int steps are index lookups; a step of any other type
// yields null immediately.
func (v Value) Path(steps ...any) Value {
	cur := v
	for _, step := range steps {
		switch s := step.(type) {
		case string:
			cur = cur.Get(s)
		case int:
			cur = cur.Index(s)
		default:
			return Value{}
		}
	}
	return cur
}

// Len returns the element count of an array, the entry count of a
// dictionary, and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.arr)
	case Dictionary:
		return len(v.obj)
	default:
		return 0
	}
}

// Keys returns the sorted key set of a dictionary value and nil for
// every other kind.
func (v Value) Keys() []string {
	if v.kind != Dictionary {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
