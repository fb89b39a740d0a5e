package sqlbuilder

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindDecimal
	KindString
	KindBool
	KindTime
	KindBytes
	KindUUID
	KindList
)

var kindNames = map[Kind]string{
	KindNull:    "NULL",
	KindInt:     "INT",
	KindFloat:   "FLOAT",
	KindDecimal: "DECIMAL",
	KindString:  "STRING",
	KindBool:    "BOOL",
	KindTime:    "TIME",
	KindBytes:   "BYTES",
	KindUUID:    "UUID",
	KindList:    "LIST",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is a bindable parameter value. The zero Value is NULL.
type Value struct {
	kind Kind
	i    int64
	f    float64
	d    decimal.Decimal
	s    string
	b    bool
	t    time.Time
	raw  []byte
	u    uuid.UUID
	list []Value
}

func Null() Value { return Value{} }

func Int(v int64) Value { return Value{kind: KindInt, i: v} }

func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

func Decimal(v decimal.Decimal) Value { return Value{kind: KindDecimal, d: v} }

func String(v string) Value { return Value{kind: KindString, s: v} }

func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

func Time(v time.Time) Value { return Value{kind: KindTime, t: v} }

// Bytes keeps its own copy of v. A nil slice is NULL.
func Bytes(v []byte) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: KindBytes, raw: append([]byte{}, v...)}
}

func UUID(v uuid.UUID) Value { return Value{kind: KindUUID, u: v} }

// List binds a whole sequence as one parameter, used by IN and NOT IN.
func List(values ...Value) Value {
	return Value{kind: KindList, list: append([]Value{}, values...)}
}

// Scalar lists the Go types accepted by Opt.
type Scalar interface {
	int | int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 |
		float32 | float64 |
		string | bool | time.Time | uuid.UUID | decimal.Decimal
}

// Opt turns an optional Go value into a Value, nil becomes NULL.
func Opt[T Scalar](v *T) Value {
	if v == nil {
		return Null()
	}
	out, _ := ValueOf(*v)
	return out
}

// ValueOf converts a Go value into a Value.
func ValueOf(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return val, nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case decimal.Decimal:
		return Decimal(val), nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case time.Time:
		return Time(val), nil
	case []byte:
		return Bytes(val), nil
	case uuid.UUID:
		return UUID(val), nil
	case []Value:
		return List(val...), nil
	case []int:
		return listOf(val)
	case []int64:
		return listOf(val)
	case []string:
		return listOf(val)
	case []uuid.UUID:
		return listOf(val)
	case []any:
		return listOf(val)
	default:
		return Null(), &ArgumentError{Argument: "value", Reason: fmt.Sprintf("of type %T is not bindable", v)}
	}
}

func listOf[T any](values []T) (Value, error) {
	out := make([]Value, 0, len(values))
	for _, v := range values {
		item, err := ValueOf(v)
		if err != nil {
			return Null(), err
		}
		if item.kind == KindList {
			return Null(), &ArgumentError{Argument: "value", Reason: "should not contain nested lists"}
		}
		out = append(out, item)
	}
	return List(out...), nil
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Items returns the elements of a list value.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return append([]Value{}, v.list...)
}

// Any returns v as a database/sql argument.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindDecimal:
		return v.d
	case KindString:
		return v.s
	case KindBool:
		return v.b
	case KindTime:
		return v.t
	case KindBytes:
		return append([]byte{}, v.raw...)
	case KindUUID:
		return v.u
	case KindList:
		out := make([]any, 0, len(v.list))
		for _, item := range v.list {
			out = append(out, item.Any())
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindDecimal:
		return v.d.Equal(other.d)
	case KindString:
		return v.s == other.s
	case KindBool:
		return v.b == other.b
	case KindTime:
		return v.t.Equal(other.t)
	case KindBytes:
		return bytes.Equal(v.raw, other.raw)
	case KindUUID:
		return v.u == other.u
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	case KindBytes:
		return fmt.Sprintf("0x%X", v.raw)
	case KindList:
		parts := make([]string, 0, len(v.list))
		for _, item := range v.list {
			parts = append(parts, item.String())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v.Any())
	}
}
