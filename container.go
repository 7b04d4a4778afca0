package jsondoc

import "fmt"

// Len returns the number of members, duplicates included.
func (o Object) Len() int { return len(o) }

// Keys returns the member names in source order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, e := range o {
		keys[i] = e.Key
	}
	return keys
}

// Values returns the member values in source order. Nested objects and arrays
// are returned as Object and Array; use Map or ToNative for plain Go values.
func (o Object) Values() []any {
	vals := make([]any, len(o))
	for i, e := range o {
		vals[i] = e.Value
	}
	return vals
}

// Get returns the value of the first member named key.
func (o Object) Get(key string) (any, bool) {
	for _, e := range o {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Contains reports whether a member named key exists.
func (o Object) Contains(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// At resolves a slash-delimited path relative to the object.
func (o Object) At(path string) (any, error) {
	return walk(o, path)
}

// Map converts the object into a map[string]any, recursively converting
// nested objects and arrays. For repeated names the first member wins.
func (o Object) Map() map[string]any {
	m := make(map[string]any, len(o))
	for _, e := range o {
		if _, seen := m[e.Key]; seen {
			continue
		}
		m[e.Key] = ToNative(e.Value)
	}
	return m
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a) }

// Index returns the element at i. Negative indices count back from the end,
// so -1 is the last element.
func (a Array) Index(i int) (any, error) {
	j := i
	if j < 0 {
		j += len(a)
	}
	if j < 0 || j >= len(a) {
		return nil, fmt.Errorf("index %d (len %d): %w", i, len(a), ErrIndexOutOfRange)
	}
	return a[j], nil
}

// Slice returns a copy of the elements in [start, stop). Negative bounds count
// back from the end and out-of-range bounds are clamped, so Slice never fails.
func (a Array) Slice(start, stop int) Array {
	start, stop = clampBound(start, len(a)), clampBound(stop, len(a))
	if start >= stop {
		return Array{}
	}
	return append(Array{}, a[start:stop]...)
}

func clampBound(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}

// At resolves a slash-delimited path relative to the array.
func (a Array) At(path string) (any, error) {
	return walk(a, path)
}

// Items converts the array into a []any, recursively converting nested
// objects and arrays.
func (a Array) Items() []any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = ToNative(v)
	}
	return out
}

// ToNative converts a decoded value into plain Go values: Object becomes
// map[string]any and Array becomes []any, at every level. Scalars are
// returned unchanged.
func ToNative(v any) any {
	switch v := v.(type) {
	case Object:
		return v.Map()
	case Array:
		return v.Items()
	default:
		return v
	}
}
