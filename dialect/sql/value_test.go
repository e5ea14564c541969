package sql

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Bool(true)},
		{"int8", int8(-8), Int8(-8)},
		{"int16", int16(-16), Int16(-16)},
		{"int32", int32(-32), Int32(-32)},
		{"int64", int64(-64), Int64(-64)},
		{"int", 42, Int64(42)},
		{"uint8", uint8(8), Uint8(8)},
		{"uint16", uint16(16), Uint16(16)},
		{"uint32", uint32(32), Uint32(32)},
		{"uint64", uint64(64), Uint64(64)},
		{"uint", uint(42), Uint64(42)},
		{"float32", float32(2.5), Float(2.5)},
		{"float64", 3.25, Double(3.25)},
		{"string", "hello", String("hello")},
		{"bytes", []byte{0xde, 0xad}, Bytes([]byte{0xde, 0xad})},
		{"json", json.RawMessage(`{"a":1}`), JSON(json.RawMessage(`{"a":1}`))},
		{"value_passthrough", Int32(7), Int32(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}

	t.Run("time", func(t *testing.T) {
		now := time.Now()
		v, err := ValueOf(now)
		require.NoError(t, err)
		assert.Equal(t, KindTime, v.Kind())
		assert.True(t, v.Equal(Time(now)))
	})
	t.Run("uuid", func(t *testing.T) {
		id := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")
		v, err := ValueOf(id)
		require.NoError(t, err)
		assert.Equal(t, KindUUID, v.Kind())
		assert.Equal(t, id.String(), v.Any())
	})
	t.Run("unsupported", func(t *testing.T) {
		_, err := ValueOf(struct{ X int }{1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot convert")
	})
}

func TestValueOfX(t *testing.T) {
	assert.NotPanics(t, func() {
		v := ValueOfX("ok")
		assert.Equal(t, KindString, v.Kind())
	})
	assert.Panics(t, func() {
		ValueOfX(make(chan int))
	})
}

// Integer widths survive the round trip into driver arguments so the
// database sees the width the caller declared.
func TestValueAny(t *testing.T) {
	assert.Equal(t, int8(-1), Int8(-1).Any())
	assert.Equal(t, int16(-1), Int16(-1).Any())
	assert.Equal(t, int32(-1), Int32(-1).Any())
	assert.Equal(t, int64(-1), Int64(-1).Any())
	assert.Equal(t, uint8(1), Uint8(1).Any())
	assert.Equal(t, uint64(1), Uint64(1).Any())
	assert.Equal(t, float32(1.5), Float(1.5).Any())
	assert.Equal(t, 1.5, Double(1.5).Any())
	assert.Nil(t, Null().Any())
	assert.Equal(t, `{"a":1}`, JSON(json.RawMessage(`{"a":1}`)).Any())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Int64(1).Equal(Int64(1)))
	assert.False(t, Int64(1).Equal(Int32(1)), "different widths are different values")
	assert.False(t, Int64(1).Equal(Uint64(1)))
	assert.True(t, Bytes([]byte{1, 2}).Equal(Bytes([]byte{1, 2})))
	assert.False(t, Bytes([]byte{1, 2}).Equal(Bytes([]byte{1, 3})))

	loc := time.FixedZone("UTC+2", 2*60*60)
	utc := time.Date(2020, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, Time(utc).Equal(Time(utc.In(loc))), "same instant, different zone")
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "int64(42)", Int64(42).String())
	assert.Equal(t, "string(hi)", String("hi").String())
	assert.Equal(t, "bool(true)", Bool(true).String())
}

func TestArgs(t *testing.T) {
	args := Args([]Value{Int64(1), String("a"), Null()})
	require.Len(t, args, 3)
	assert.Equal(t, int64(1), args[0])
	assert.Equal(t, "a", args[1])
	assert.Nil(t, args[2])
}

func TestJSONValue(t *testing.T) {
	t.Run("integer_stays_integer", func(t *testing.T) {
		v := jsonValue(json.Number("12"))
		assert.True(t, v.Equal(Int64(12)))
	})
	t.Run("fraction_becomes_double", func(t *testing.T) {
		v := jsonValue(json.Number("5.15"))
		assert.True(t, v.Equal(Double(5.15)))
	})
	t.Run("exponent_becomes_double", func(t *testing.T) {
		v := jsonValue(json.Number("1e3"))
		assert.True(t, v.Equal(Double(1000)))
	})
	t.Run("nested_object_carried_as_json", func(t *testing.T) {
		v := jsonValue(map[string]any{"a": 1})
		assert.Equal(t, KindJSON, v.Kind())
	})
	t.Run("null", func(t *testing.T) {
		assert.True(t, jsonValue(nil).IsNull())
	})
	t.Run("native_scalar", func(t *testing.T) {
		assert.True(t, jsonValue(7).Equal(Int64(7)))
	})
}

func TestJSONObject(t *testing.T) {
	t.Run("raw_text", func(t *testing.T) {
		obj := jsonObject(`{"b":1,"a":2}`)
		assert.Equal(t, []string{"a", "b"}, sortedKeys(obj))
	})
	t.Run("struct_marshaled", func(t *testing.T) {
		type row struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		}
		obj := jsonObject(row{ID: 1, Name: "x"})
		assert.Equal(t, []string{"id", "name"}, sortedKeys(obj))
	})
	t.Run("non_object_panics", func(t *testing.T) {
		assert.Panics(t, func() { jsonObject(`[1,2,3]`) })
		assert.Panics(t, func() { jsonObject(`"scalar"`) })
	})
}
