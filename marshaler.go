package jsondoc

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Marshalers returns the encoding functions for decoded values: Object members
// are written in their stored order instead of as a list of entries, and
// float64 values always keep a fraction or exponent so they decode back as
// float64 rather than int64.
func Marshalers() *json.Marshalers {
	return json.JoinMarshalers(marshalObject(), marshalFloat())
}

func marshalObject() *json.Marshalers {
	return json.MarshalToFunc(func(enc *jsontext.Encoder, o Object) error {
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, e := range o {
			if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
				return err
			}
			if err := json.MarshalEncode(enc, e.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	})
}

func marshalFloat() *json.Marshalers {
	return json.MarshalToFunc(func(enc *jsontext.Encoder, f float64) error {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("encode number %v: %w", f, ErrIncorrectType)
		}
		b := strconv.AppendFloat(nil, f, 'g', -1, 64)
		if !bytes.ContainsAny(b, ".e") {
			b = append(b, ".0"...)
		}
		return enc.WriteValue(jsontext.Value(b))
	})
}

// Marshal encodes a decoded value as minified JSON, preserving object member
// order.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v, json.WithMarshalers(Marshalers()), jsontext.AllowDuplicateNames(true))
}

// MarshalJSON encodes the document root as minified JSON.
func (d *Document) MarshalJSON() ([]byte, error) {
	return Marshal(d.root)
}
