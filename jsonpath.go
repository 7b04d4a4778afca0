package jsondoc

import (
	"fmt"

	"github.com/theory/jsonpath"
)

// Select evaluates an RFC 9535 JSONPath expression such as "$.Image.IDs[*]"
// against the document and returns every matching node. Matches are returned
// in their native form (see ToNative).
func (d *Document) Select(expr string) ([]any, error) {
	p, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("select %q: %w: %w", expr, ErrInvalidPath, err)
	}
	return p.Select(d.Interface()), nil
}
