package patcher

import (
	"fmt"
	"reflect"
	"strings"
)

// InvalidArgumentError is returned when the source or the destination
// passed to Patch is nil.
type InvalidArgumentError struct {
	// Name is the offending argument, "source" or "destination".
	Name string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s must not be nil", e.Name)
}

// TypeMismatchError is returned when the source passed to Patch is not
// a *Document. The engine refuses arbitrary dynamic values; only
// documents produced by the sanctioned decoders are accepted.
type TypeMismatchError struct {
	// Type is the concrete type that was passed as the source.
	Type reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("source must be a *patcher.Document, got %v", e.Type)
}

// UnknownFieldsError is returned when one or more source fields have no
// matching destination field and unknown fields are not being ignored.
// It is raised before any destination field is written.
type UnknownFieldsError struct {
	// Fields holds every unmatched source field name, in document order.
	Fields []string
}

func (e *UnknownFieldsError) Error() string {
	return fmt.Sprintf("source fields have no matching destination field: %s",
		strings.Join(e.Fields, ", "))
}

// NotWritableError is returned when a source field matches a
// destination field that cannot be assigned (tagged readonly, or
// promoted through an unexported embedded struct).
type NotWritableError struct {
	Field string
	Type  reflect.Type
}

func (e *NotWritableError) Error() string {
	return fmt.Sprintf("field %s of %v is not writable", e.Field, e.Type)
}

// UnsupportedTypeError is returned when a matched destination field's
// declared type is outside the admissible scalar set. Collection and
// nested struct fields always fail this way, no matter what the source
// value is.
type UnsupportedTypeError struct {
	Field string
	Type  reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("field %s has unsupported type %v", e.Field, e.Type)
}

// NullValueError is returned when a null source value targets a
// destination field that cannot represent null (any non-pointer type).
type NullValueError struct {
	Field string
	Type  reflect.Type
}

func (e *NullValueError) Error() string {
	return fmt.Sprintf("field %s of type %v cannot be set to null", e.Field, e.Type)
}

// ConversionError is returned when a source value's scalar kind cannot
// be converted to the matched destination field's type.
type ConversionError struct {
	Field string
	Type  reflect.Type
	Value Value
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s value %s to %v for field %s",
		e.Value.Kind(), e.Value, e.Type, e.Field)
}
