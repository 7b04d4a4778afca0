// Package jsondoc loads JSON documents and resolves slash-delimited paths
// against them.
//
// Decoded values form a small closed set of Go types:
//
//	object  -> Object (ordered entries, source order preserved)
//	array   -> Array
//	string  -> string
//	number  -> int64, uint64 or float64
//	boolean -> bool
//	null    -> nil
package jsondoc

// Object represents a JSON object, defined as an ordered collection of
// key-value pairs. Each member of the object is represented by an Entry.
type Object []Entry

// Array represents a JSON array, defined as a slice of decoded values.
type Array []any

// Entry represents a single member of an Object. It consists of a string key
// and an associated decoded value.
type Entry struct {
	Key   string
	Value any
}

// Document is an immutable parsed JSON value. Documents are created by a
// Parser and are safe for concurrent use by multiple readers.
type Document struct {
	root any
}

// Root returns the top-level value of the document.
func (d *Document) Root() any {
	return d.root
}

// At resolves a slash-delimited path such as "Image/Width" against the
// document root. See PathError for the failure cases.
func (d *Document) At(path string) (any, error) {
	return walk(d.root, path)
}

// Interface returns the document converted into plain map[string]any and
// []any graphs. See ToNative.
func (d *Document) Interface() any {
	return ToNative(d.root)
}
