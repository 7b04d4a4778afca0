package jsondoc

import (
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalers(t *testing.T) {
	opts := json.WithUnmarshalers(NewParser().Unmarshalers())

	t.Run("any target wraps containers", func(t *testing.T) {
		var out any
		require.NoError(t, json.Unmarshal([]byte(`[1,{"x":2}]`), &out, opts))
		a, ok := out.(Array)
		require.True(t, ok, "expected Array, got %T", out)
		require.Len(t, a, 2)
		require.Equal(t, int64(1), a[0])
		require.Equal(t, Object{{Key: "x", Value: int64(2)}}, a[1])
	})

	t.Run("object target preserves order", func(t *testing.T) {
		var o Object
		require.NoError(t, json.Unmarshal([]byte(`{"z":1,"a":{"m":[]}}`), &o, opts))
		require.Equal(t, Object{
			{Key: "z", Value: int64(1)},
			{Key: "a", Value: Object{{Key: "m", Value: Array{}}}},
		}, o)
	})

	t.Run("array target", func(t *testing.T) {
		var a Array
		require.NoError(t, json.Unmarshal([]byte(`["s",1.25,false]`), &a, opts))
		require.Equal(t, Array{"s", 1.25, false}, a)
	})

	t.Run("null leaves targets nil", func(t *testing.T) {
		var o Object
		require.NoError(t, json.Unmarshal([]byte(`null`), &o, opts))
		require.Nil(t, o)

		var a Array
		require.NoError(t, json.Unmarshal([]byte(`null`), &a, opts))
		require.Nil(t, a)
	})

	t.Run("kind mismatch fails with ErrIncorrectType", func(t *testing.T) {
		var o Object
		require.ErrorIs(t, json.Unmarshal([]byte(`[1]`), &o, opts), ErrIncorrectType)

		var a Array
		require.ErrorIs(t, json.Unmarshal([]byte(`{"a":1}`), &a, opts), ErrIncorrectType)
	})

	t.Run("struct fields decode through the same functions", func(t *testing.T) {
		var out struct {
			Meta Object `json:"meta"`
			Tags Array  `json:"tags"`
			Any  any    `json:"any"`
		}
		src := `{"meta":{"b":1,"a":2},"tags":["x"],"any":7}`
		require.NoError(t, json.Unmarshal([]byte(src), &out, opts))
		require.Equal(t, []string{"b", "a"}, out.Meta.Keys())
		require.Equal(t, Array{"x"}, out.Tags)
		require.Equal(t, int64(7), out.Any)
	})
}
