package patcher

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"time"

	json "github.com/goccy/go-json"
)

// Document is the sanctioned dynamic source representation consumed by
// Patch. It exposes the top-level fields of a decoded document, in the
// order the document declared them, with every leaf normalized to a
// tagged scalar Value. Nested objects and arrays are kept as opaque
// values and never traversed.
type Document struct {
	names  []string
	values map[string]Value
}

// DecodeJSON decodes raw JSON into a Document. The top-level value must
// be a JSON object. Integral numbers are normalized to int64 and
// non-integral numbers to float64; field declaration order is preserved.
func DecodeJSON(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("decoding document: top-level value is not an object")
	}

	names, err := topLevelKeys(data)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	d := &Document{values: make(map[string]Value, len(names))}
	for _, name := range names {
		if _, ok := d.values[name]; ok {
			// Duplicate key, last value wins (already merged in m).
			continue
		}
		d.names = append(d.names, name)
		d.values[name] = valueFromAny(m[name])
	}

	return d, nil
}

// FromMap builds a Document from an already-decoded generic mapping.
// Go maps carry no declaration order, so fields are enumerated in
// sorted name order.
func FromMap(m map[string]any) *Document {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	d := &Document{
		names:  names,
		values: make(map[string]Value, len(m)),
	}
	for name, v := range m {
		d.values[name] = valueFromAny(v)
	}

	return d
}

// Len returns the number of top-level fields in the document.
func (d *Document) Len() int {
	return len(d.names)
}

// Fields returns the document's top-level field names in declaration
// order. The returned slice must not be modified.
func (d *Document) Fields() []string {
	return d.names
}

// Get returns the value for the named top-level field and whether the
// field is present.
func (d *Document) Get(name string) (Value, bool) {
	v, ok := d.values[name]
	return v, ok
}

// topLevelKeys scans the token stream and records object keys at depth
// one, preserving declaration order. Decoder-level validation already
// happened, so malformed input cannot reach here in practice.
func topLevelKeys(data []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("top-level value is not an object")
	}

	var names []string
	depth := 1
	expectKey := true
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{', '[':
				depth++
				expectKey = v == '{'
			case '}', ']':
				depth--
				expectKey = depth == 1
			}
		case string:
			if depth == 1 && expectKey {
				names = append(names, v)
				expectKey = false
			} else if depth == 1 {
				expectKey = true
			}
		default:
			if depth == 1 {
				expectKey = true
			}
		}
	}

	return names, nil
}

// valueFromAny normalizes a decoded native value into a tagged Value.
// Integral numbers widen to int64 regardless of the decoder's native
// representation.
func valueFromAny(v any) Value {
	switch v := v.(type) {
	case nil:
		return NullValue()
	case string:
		return StringValue(v)
	case bool:
		return BoolValue(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return IntValue(i)
		}
		if f, err := v.Float64(); err == nil {
			return FloatValue(f)
		}
		return StringValue(v.String())
	case int:
		return IntValue(int64(v))
	case int8:
		return IntValue(int64(v))
	case int16:
		return IntValue(int64(v))
	case int32:
		return IntValue(int64(v))
	case int64:
		return IntValue(v)
	case uint:
		return IntValue(int64(v))
	case uint8:
		return IntValue(int64(v))
	case uint16:
		return IntValue(int64(v))
	case uint32:
		return IntValue(int64(v))
	case uint64:
		return IntValue(int64(v))
	case float32:
		return floatOrInt(float64(v))
	case float64:
		return floatOrInt(v)
	case time.Time:
		return TimeValue(v)
	default:
		return NestedValue(v)
	}
}

// floatOrInt keeps integral float64 decodings (encoding/json without
// UseNumber hands even whole numbers over as float64) on the integer
// path so that narrowing behaves the same no matter which decoder
// produced the value.
func floatOrInt(f float64) Value {
	if f == float64(int64(f)) {
		return IntValue(int64(f))
	}
	return FloatValue(f)
}
