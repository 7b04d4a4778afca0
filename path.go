package jsondoc

import (
	"strconv"
	"strings"
)

// walk resolves path against v one segment at a time, left to right.
//
// The empty path addresses v itself. A single leading '/' is dropped so that
// RFC 6901 pointers ("/Image/Width") and bare paths ("Image/Width") resolve
// alike. Within a segment "~1" decodes to '/' and "~0" to '~'.
func walk(v any, path string) (any, error) {
	if path == "" {
		return v, nil
	}
	cur := v
	for pos, raw := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		seg := unescapeSegment(raw)
		switch c := cur.(type) {
		case Object:
			next, ok := c.Get(seg)
			if !ok {
				return nil, &PathError{Path: path, Segment: seg, Pos: pos, Err: ErrNoSuchKey}
			}
			cur = next
		case Array:
			idx, err := parseIndex(seg)
			if err != nil {
				return nil, &PathError{Path: path, Segment: seg, Pos: pos, Err: err}
			}
			if idx >= len(c) {
				return nil, &PathError{Path: path, Segment: seg, Pos: pos, Err: ErrIndexOutOfRange}
			}
			cur = c[idx]
		default:
			return nil, &PathError{Path: path, Segment: seg, Pos: pos, Err: ErrIncorrectType}
		}
	}
	return cur, nil
}

func unescapeSegment(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "~1", "/"), "~0", "~")
}

// parseIndex accepts canonical non-negative decimal integers only: no sign,
// no leading zeros, no whitespace. Anything else is ErrIncorrectType; a
// canonical index too large for an int is ErrIndexOutOfRange.
func parseIndex(s string) (int, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, ErrIncorrectType
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrIncorrectType
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrIndexOutOfRange
	}
	return n, nil
}
