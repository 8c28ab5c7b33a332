// Package patcher applies sparse updates from dynamically shaped
// documents onto strongly typed structs, the building block for HTTP
// PATCH endpoints that accept partial resource representations.
package patcher

import (
	"reflect"
	"strings"
)

// Patch copies the fields named in source onto matching fields of dst,
// leaving every other destination field untouched. source must be a
// *Document produced by one of the decoders (or FromMap); dst must be a
// non-nil pointer to the destination struct.
//
// Matching is case insensitive unless MatchCase is supplied. A source
// field with no matching destination field fails the whole call before
// anything is written, unless IgnoreUnknownFields is supplied.
//
// Checks after the unknown-field gate run per field, in document order,
// and abort on first violation. Fields written before the violation
// stay written; supply ValidateAll to make the whole call
// all-or-nothing.
func Patch[T any](source any, dst *T, opts ...Option) error {
	cfg := newPatchConfig(opts)

	if dst == nil {
		return &InvalidArgumentError{Name: "destination"}
	}

	doc, err := extract(source)
	if err != nil {
		return err
	}

	rv := reflect.ValueOf(dst).Elem()
	info := getTypeInfo(rv.Type())
	match := matchFunc(cfg.ignoreCase)

	if !cfg.ignoreUnknown {
		if err := checkUnknownFields(doc, info, match); err != nil {
			return err
		}
	}

	if cfg.validateAll {
		if err := applyFields(doc, info, rv, match, false); err != nil {
			return err
		}
	}

	return applyFields(doc, info, rv, match, true)
}

// MustPatch is like Patch but panics on failure.
func MustPatch[T any](source any, dst *T, opts ...Option) {
	if err := Patch(source, dst, opts...); err != nil {
		panic(err)
	}
}

// extract validates that source is the sanctioned dynamic document
// representation. The engine is defensively typed: arbitrary dynamic
// values are refused instead of being reflected over.
func extract(source any) (*Document, error) {
	if source == nil {
		return nil, &InvalidArgumentError{Name: "source"}
	}
	doc, ok := source.(*Document)
	if !ok {
		return nil, &TypeMismatchError{Type: reflect.TypeOf(source)}
	}
	if doc == nil {
		return nil, &InvalidArgumentError{Name: "source"}
	}
	return doc, nil
}

// matchFunc builds the name comparison predicate. Case folding is
// locale-independent, the same simple folding encoding/json uses for
// its own field matching.
func matchFunc(ignoreCase bool) func(a, b string) bool {
	if ignoreCase {
		return strings.EqualFold
	}
	return func(a, b string) bool { return a == b }
}

// checkUnknownFields computes the difference between source field names
// and destination match names. It runs over the entire document before
// anything is written, so a strict-mode rejection always leaves the
// destination untouched, and the error carries every offending name at
// once.
func checkUnknownFields(doc *Document, info *typeInfo, match func(a, b string) bool) error {
	var unknown []string
	for _, name := range doc.Fields() {
		if findField(info, name, match) == nil {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return &UnknownFieldsError{Fields: unknown}
	}
	return nil
}

func findField(info *typeInfo, name string, match func(a, b string) bool) *fieldInfo {
	for i := range info.fields {
		fi := &info.fields[i]
		if fi.ignored {
			continue
		}
		if match(fi.matchName, name) {
			return fi
		}
	}
	return nil
}

// applyFields runs the per-field pipeline in document order: match,
// writability, type admissibility, coercion, write. With write=false it
// performs every check and coercion but leaves the destination
// untouched (the ValidateAll pre-pass).
func applyFields(doc *Document, info *typeInfo, rv reflect.Value, match func(a, b string) bool, write bool) error {
	for _, name := range doc.Fields() {
		fi := findField(info, name, match)
		if fi == nil {
			// Only reachable in lenient mode; the strict-mode gate
			// already rejected unmatched names.
			continue
		}

		if !fi.settable {
			return &NotWritableError{Field: fi.name, Type: rv.Type()}
		}

		// Admissibility is a structural property of the destination
		// field, checked before the value is even looked at.
		if !admissibleType(fi.typ) {
			return &UnsupportedTypeError{Field: fi.name, Type: fi.typ}
		}

		value, _ := doc.Get(name)
		coerced, err := coerceValue(fi.name, value, fi.typ)
		if err != nil {
			return err
		}

		if write {
			rv.FieldByIndex(fi.index).Set(coerced)
		}
	}

	return nil
}
