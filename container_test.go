package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	o := Object{
		{Key: "first", Value: int64(1)},
		{Key: "second", Value: Array{"x"}},
		{Key: "first", Value: int64(3)},
	}

	t.Run("empty object", func(t *testing.T) {
		var o Object
		require.Equal(t, 0, o.Len())
		require.Empty(t, o.Keys())
		require.False(t, o.Contains("a"))
		require.Equal(t, map[string]any{}, o.Map())
	})

	t.Run("keys and values preserve order", func(t *testing.T) {
		require.Equal(t, 3, o.Len())
		require.Equal(t, []string{"first", "second", "first"}, o.Keys())
		require.Equal(t, []any{int64(1), Array{"x"}, int64(3)}, o.Values())
	})

	t.Run("get returns first occurrence", func(t *testing.T) {
		v, ok := o.Get("first")
		require.True(t, ok)
		require.Equal(t, int64(1), v)

		_, ok = o.Get("third")
		require.False(t, ok)
		require.True(t, o.Contains("second"))
	})

	t.Run("at resolves relative paths", func(t *testing.T) {
		v, err := o.At("second/0")
		require.NoError(t, err)
		require.Equal(t, "x", v)
	})

	t.Run("map converts recursively", func(t *testing.T) {
		require.Equal(t, map[string]any{
			"first":  int64(1),
			"second": []any{"x"},
		}, o.Map())
	})
}

func TestArray(t *testing.T) {
	a := Array{int64(0), int64(1), int64(2), int64(3), int64(4)}

	t.Run("index", func(t *testing.T) {
		v, err := a.Index(0)
		require.NoError(t, err)
		require.Equal(t, int64(0), v)

		v, err = a.Index(-1)
		require.NoError(t, err)
		require.Equal(t, int64(4), v)

		v, err = a.Index(-5)
		require.NoError(t, err)
		require.Equal(t, int64(0), v)
	})

	t.Run("index out of range", func(t *testing.T) {
		for _, i := range []int{5, -6, 100} {
			_, err := a.Index(i)
			require.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)
		}
		_, err := Array{}.Index(0)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("slice", func(t *testing.T) {
		require.Equal(t, Array{int64(1), int64(2)}, a.Slice(1, 3))
		require.Equal(t, Array{int64(3), int64(4)}, a.Slice(-2, 10))
		require.Equal(t, Array{int64(0), int64(1)}, a.Slice(-10, 2))
		require.Equal(t, Array{}, a.Slice(3, 1))
		require.Equal(t, a, a.Slice(0, a.Len()))
	})

	t.Run("slice copies elements", func(t *testing.T) {
		s := a.Slice(0, 2)
		s[0] = "changed"
		require.Equal(t, int64(0), a[0])
	})

	t.Run("items converts recursively", func(t *testing.T) {
		nested := Array{Object{{Key: "k", Value: Array{true}}}, nil}
		require.Equal(t, []any{map[string]any{"k": []any{true}}, nil}, nested.Items())
	})
}

func TestToNative(t *testing.T) {
	doc := mustParse(t, `{"a":[1,{"b":null}],"c":"d"}`)
	require.Equal(t, map[string]any{
		"a": []any{int64(1), map[string]any{"b": nil}},
		"c": "d",
	}, doc.Interface())

	require.Equal(t, "scalar", ToNative("scalar"))
	require.Nil(t, ToNative(nil))
}
