package sql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the variant held by a Value. The set is closed:
// rendering and injection switch exhaustively over it.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindJSON
	KindTime
	KindUUID
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUint64: "uint64",
	KindFloat:  "float",
	KindDouble: "double",
	KindString: "string",
	KindBytes:  "bytes",
	KindJSON:   "json",
	KindTime:   "time",
	KindUUID:   "uuid",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Value is a typed SQL scalar collected as a bind parameter during
// rendering. A Value is immutable once constructed.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string // KindString and KindJSON (raw JSON text).
	bs   []byte
	t    time.Time
	id   uuid.UUID
}

// Null returns the NULL value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int8 returns an 8-bit signed integer value.
func Int8(v int8) Value { return Value{kind: KindInt8, i: int64(v)} }

// Int16 returns a 16-bit signed integer value.
func Int16(v int16) Value { return Value{kind: KindInt16, i: int64(v)} }

// Int32 returns a 32-bit signed integer value.
func Int32(v int32) Value { return Value{kind: KindInt32, i: int64(v)} }

// Int64 returns a 64-bit signed integer value.
func Int64(v int64) Value { return Value{kind: KindInt64, i: v} }

// Uint8 returns an 8-bit unsigned integer value.
func Uint8(v uint8) Value { return Value{kind: KindUint8, u: uint64(v)} }

// Uint16 returns a 16-bit unsigned integer value.
func Uint16(v uint16) Value { return Value{kind: KindUint16, u: uint64(v)} }

// Uint32 returns a 32-bit unsigned integer value.
func Uint32(v uint32) Value { return Value{kind: KindUint32, u: uint64(v)} }

// Uint64 returns a 64-bit unsigned integer value.
func Uint64(v uint64) Value { return Value{kind: KindUint64, u: v} }

// Float returns a single-precision floating point value.
func Float(v float32) Value { return Value{kind: KindFloat, f: float64(v)} }

// Double returns a double-precision floating point value.
func Double(v float64) Value { return Value{kind: KindDouble, f: v} }

// String returns a string value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bytes returns a byte sequence value.
func Bytes(v []byte) Value { return Value{kind: KindBytes, bs: v} }

// JSON returns a structured value holding raw JSON text.
func JSON(raw json.RawMessage) Value { return Value{kind: KindJSON, s: string(raw)} }

// Time returns a date/time value.
func Time(v time.Time) Value { return Value{kind: KindTime, t: v} }

// UUID returns a UUID value.
func UUID(v uuid.UUID) Value { return Value{kind: KindUUID, id: v} }

// ValueOf converts a native Go scalar into a Value. Supported inputs are
// nil, bool, all signed and unsigned integer widths, float32/64, string,
// []byte, json.RawMessage, time.Time, uuid.UUID and Value itself.
// Integer conversions never lose precision.
func ValueOf(v any) (Value, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int8:
		return Int8(v), nil
	case int16:
		return Int16(v), nil
	case int32:
		return Int32(v), nil
	case int64:
		return Int64(v), nil
	case int:
		return Int64(int64(v)), nil
	case uint8:
		return Uint8(v), nil
	case uint16:
		return Uint16(v), nil
	case uint32:
		return Uint32(v), nil
	case uint64:
		return Uint64(v), nil
	case uint:
		return Uint64(uint64(v)), nil
	case float32:
		return Float(v), nil
	case float64:
		return Double(v), nil
	case string:
		return String(v), nil
	case json.RawMessage:
		return JSON(v), nil
	case []byte:
		return Bytes(v), nil
	case time.Time:
		return Time(v), nil
	case uuid.UUID:
		return UUID(v), nil
	default:
		return Value{}, fmt.Errorf("sql: cannot convert %T into a value", v)
	}
}

// ValueOfX is like ValueOf, but panics on unsupported input. It is a
// convenience for call sites that have already validated their types.
func ValueOfX(v any) Value {
	val, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Any unwraps the value into the native Go representation expected by
// database/sql drivers as a bind parameter.
func (v Value) Any() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt8:
		return int8(v.i)
	case KindInt16:
		return int16(v.i)
	case KindInt32:
		return int32(v.i)
	case KindInt64:
		return v.i
	case KindUint8:
		return uint8(v.u)
	case KindUint16:
		return uint16(v.u)
	case KindUint32:
		return uint32(v.u)
	case KindUint64:
		return v.u
	case KindFloat:
		return float32(v.f)
	case KindDouble:
		return v.f
	case KindString:
		return v.s
	case KindBytes:
		return v.bs
	case KindJSON:
		return v.s
	case KindTime:
		return v.t
	case KindUUID:
		return v.id.String()
	default:
		panic(fmt.Sprintf("sql: unknown value kind %v", v.kind))
	}
}

// String returns a debug representation of the value.
func (v Value) String() string {
	if v.kind == KindNull {
		return "null"
	}
	return fmt.Sprintf("%s(%v)", v.kind, v.Any())
}

// Equal reports whether two values hold the same kind and content.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindBytes:
		return bytes.Equal(v.bs, w.bs)
	case KindTime:
		return v.t.Equal(w.t)
	default:
		return v.b == w.b && v.i == w.i && v.u == w.u && v.f == w.f && v.s == w.s && v.id == w.id
	}
}

// Args converts a parameter list into the []any form accepted by
// database/sql drivers.
func Args(vs []Value) []any {
	args := make([]any, len(vs))
	for i := range vs {
		args[i] = vs[i].Any()
	}
	return args
}

// jsonValue coerces a decoded JSON value into the closed Value set.
// Scalars map to their kinds with the integer/float distinction
// preserved; objects and arrays are carried verbatim as KindJSON;
// JSON null maps to KindNull.
func jsonValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(v)
	case string:
		return String(v)
	case json.Number:
		if !strings.ContainsAny(v.String(), ".eE") {
			if i, err := v.Int64(); err == nil {
				return Int64(i)
			}
		}
		f, err := v.Float64()
		if err != nil {
			panic(fmt.Sprintf("sql: malformed json number %q", v.String()))
		}
		return Double(f)
	case map[string]any, []any:
		raw, err := json.Marshal(v)
		if err != nil {
			panic(fmt.Sprintf("sql: cannot re-encode json value: %v", err))
		}
		return JSON(raw)
	default:
		// Caller-built maps carry native Go scalars rather than decoded
		// JSON ones.
		val, err := ValueOf(v)
		if err != nil {
			panic(fmt.Sprintf("sql: unexpected json value of type %T", v))
		}
		return val
	}
}

// jsonObject normalizes v into a decoded JSON object. Accepted inputs
// are map[string]any, json.RawMessage, []byte, string (raw JSON text),
// and any Go value that marshals to a JSON object. Numbers are decoded
// as json.Number so the integer/float distinction survives. A non-object
// is a programmer error and panics.
func jsonObject(v any) map[string]any {
	var raw []byte
	switch v := v.(type) {
	case map[string]any:
		return v
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			panic(fmt.Sprintf("sql: cannot encode %T as a json object: %v", v, err))
		}
		raw = b
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		panic(fmt.Sprintf("sql: value must be a json object: %v", err))
	}
	return obj
}

// sortedKeys returns the lexicographically sorted key set of a decoded
// JSON object.
func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
