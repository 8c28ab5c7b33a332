package patcher

import (
	"fmt"
	"time"
)

// Kind identifies the scalar kind carried by a Value.
type Kind int

const (
	// KindNull is an explicit null in the source document.
	KindNull Kind = iota
	// KindString is a text scalar.
	KindString
	// KindBool is a boolean scalar.
	KindBool
	// KindInt is an integral number. Decoders always normalize integral
	// numbers to int64, the widest signed width; narrowing to the
	// destination field's width happens during the patch itself.
	KindInt
	// KindFloat is a floating-point number (float64).
	KindFloat
	// KindTime is a date/time scalar treated as an atomic leaf.
	KindTime
	// KindNested is a nested object or array. Nested values are carried
	// as opaque payloads and never traversed.
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	case KindNested:
		return "nested"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one decoded source document leaf: a tagged scalar variant.
type Value struct {
	kind Kind
	v    any
}

// NullValue returns the explicit null Value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// StringValue returns a Value holding s.
func StringValue(s string) Value {
	return Value{kind: KindString, v: s}
}

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, v: b}
}

// IntValue returns a Value holding i at the widest signed width.
func IntValue(i int64) Value {
	return Value{kind: KindInt, v: i}
}

// FloatValue returns a Value holding f.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, v: f}
}

// TimeValue returns a Value holding t as an atomic leaf.
func TimeValue(t time.Time) Value {
	return Value{kind: KindTime, v: t}
}

// NestedValue returns a Value carrying v as an opaque nested payload.
func NestedValue(v any) Value {
	return Value{kind: KindNested, v: v}
}

// Kind returns the scalar kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the explicit null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Interface returns the native Go payload of v (nil for null).
func (v Value) Interface() any {
	return v.v
}

func (v Value) String() string {
	if v.kind == KindNull {
		return "null"
	}
	return fmt.Sprintf("%v", v.v)
}
