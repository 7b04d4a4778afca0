package jsondoc

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// unmarshalers returns the full set of decoding functions allowing decoding
// into:
//   - any/interface{} -> objects as Object, arrays as Array, numbers as
//     int64/uint64/float64
//   - *Object        -> direct ordered object decoding
//   - *Array         -> direct array decoding
//
// Container nesting deeper than maxDepth fails with ErrDepth.
func unmarshalers(maxDepth int) *json.Unmarshalers {
	return json.JoinUnmarshalers(
		unmarshalValue(maxDepth),
		unmarshalObject(maxDepth),
		unmarshalArray(maxDepth),
	)
}

// unmarshalValue handles objects, arrays and numbers. Strings, booleans and
// null are left to the default decoding by returning json.SkipFunc.
//
// Empty objects ({}) produce an empty Object; empty arrays ([]) produce an
// empty Array.
func unmarshalValue(maxDepth int) *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			obj, err := decodeObject(dec, maxDepth)
			if err != nil {
				return err
			}
			*v = obj
			return nil
		case '[':
			arr, err := decodeArray(dec, maxDepth)
			if err != nil {
				return err
			}
			*v = arr
			return nil
		case '0':
			num, err := decodeNumber(dec)
			if err != nil {
				return err
			}
			*v = num
			return nil
		default:
			return json.SkipFunc
		}
	})
}

// unmarshalObject decodes a JSON object when the target type is *Object. A
// null leaves the target nil; any other kind is rejected.
func unmarshalObject(maxDepth int) *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Object) error {
		switch k := dec.PeekKind(); k {
		case 'n':
			return json.SkipFunc
		case '{':
		default:
			return fmt.Errorf("decode object: %w (got %v)", ErrIncorrectType, k)
		}
		obj, err := decodeObject(dec, maxDepth)
		if err != nil {
			return err
		}
		*v = obj
		return nil
	})
}

// unmarshalArray decodes a JSON array when the target type is *Array.
func unmarshalArray(maxDepth int) *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *Array) error {
		switch k := dec.PeekKind(); k {
		case 'n':
			return json.SkipFunc
		case '[':
		default:
			return fmt.Errorf("decode array: %w (got %v)", ErrIncorrectType, k)
		}
		arr, err := decodeArray(dec, maxDepth)
		if err != nil {
			return err
		}
		*v = arr
		return nil
	})
}

// enter checks that opening one more container stays within maxDepth.
func enter(dec *jsontext.Decoder, maxDepth int) error {
	if dec.StackDepth() >= maxDepth {
		return fmt.Errorf("%w (limit %d at offset %d)", ErrDepth, maxDepth, dec.InputOffset())
	}
	return nil
}

func decodeObject(dec *jsontext.Decoder, maxDepth int) (Object, error) {
	if err := enter(dec, maxDepth); err != nil {
		return nil, err
	}
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	obj := Object{}
	for dec.PeekKind() != '}' {
		var k string
		if err := json.UnmarshalDecode(dec, &k); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		// nested failures already carry their own context
		var val any
		if err := json.UnmarshalDecode(dec, &val); err != nil {
			return nil, err
		}
		obj = append(obj, Entry{Key: k, Value: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return obj, nil
}

func decodeArray(dec *jsontext.Decoder, maxDepth int) (Array, error) {
	if err := enter(dec, maxDepth); err != nil {
		return nil, err
	}
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	arr := Array{}
	for dec.PeekKind() != ']' {
		var elem any
		if err := json.UnmarshalDecode(dec, &elem); err != nil {
			return nil, err
		}
		arr = append(arr, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return arr, nil
}

// decodeNumber keeps integers exact: int64 when the literal fits, uint64 for
// larger non-negative integers. Everything else, -0 included, becomes float64.
func decodeNumber(dec *jsontext.Decoder) (any, error) {
	raw, err := dec.ReadValue()
	if err != nil {
		return nil, fmt.Errorf("read number: %w", err)
	}
	s := string(raw)
	if s != "-0" && !bytes.ContainsAny(raw, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("read number %s: %w", s, err)
	}
	return f, nil
}
