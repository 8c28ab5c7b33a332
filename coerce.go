package patcher

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// admissibleType reports whether a destination field of type typ may be
// written by the engine: primitive scalars, time.Time as an atomic
// leaf, and pointers to those (the nullable forms). Everything else,
// notably slices, maps and nested structs, is rejected regardless of
// the source value.
func admissibleType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	switch typ.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Struct:
		return typ == timeType
	}

	return false
}

// coerceValue converts the decoded source value v to the destination
// field type typ. Callers must have vetted typ with admissibleType
// first.
func coerceValue(field string, v Value, typ reflect.Type) (reflect.Value, error) {
	if typ.Kind() == reflect.Pointer {
		if v.IsNull() {
			return reflect.Zero(typ), nil
		}
		elem, err := coerceValue(field, v, typ.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(typ.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	}

	if v.IsNull() {
		return reflect.Value{}, &NullValueError{Field: field, Type: typ}
	}

	switch typ.Kind() {
	case reflect.String:
		if v.Kind() == KindString {
			return reflect.ValueOf(v.Interface()).Convert(typ), nil
		}
	case reflect.Bool:
		if v.Kind() == KindBool {
			return reflect.ValueOf(v.Interface()).Convert(typ), nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Kind() == KindInt {
			// Direct narrowing conversion. Out-of-range values wrap
			// with two's-complement truncation, like a native cast.
			return reflect.ValueOf(v.Interface()).Convert(typ), nil
		}
	case reflect.Float32, reflect.Float64:
		// Documents normalize whole numbers to the integer kind, so
		// float fields accept both numeric kinds.
		if v.Kind() == KindFloat || v.Kind() == KindInt {
			return reflect.ValueOf(v.Interface()).Convert(typ), nil
		}
	case reflect.Struct:
		switch v.Kind() {
		case KindTime:
			return reflect.ValueOf(v.Interface()), nil
		case KindString:
			t, err := time.Parse(time.RFC3339, v.Interface().(string))
			if err != nil {
				return reflect.Value{}, &ConversionError{Field: field, Type: typ, Value: v}
			}
			return reflect.ValueOf(t), nil
		}
	}

	return reflect.Value{}, &ConversionError{Field: field, Type: typ, Value: v}
}
