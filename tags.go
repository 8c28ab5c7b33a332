package patcher

import (
	"reflect"
	"strings"
)

type structTag struct {
	name     string
	ignore   bool
	readOnly bool
}

// parseTag reads the `patch` struct tag, falling back to the name part
// of the `json` tag so that destinations annotated for JSON marshaling
// match on their wire names without extra tagging.
//
// Recognized forms: `patch:"-"`, `patch:"readonly"`, `patch:"name"`,
// `patch:"name,readonly"`.
func parseTag(field reflect.StructField) structTag {
	st := structTag{}

	tag, ok := field.Tag.Lookup("patch")
	if !ok {
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			name := strings.Split(jsonTag, ",")[0]
			if name == "-" {
				st.ignore = true
			} else {
				st.name = name
			}
		}
		return st
	}

	if tag == "-" {
		st.ignore = true
		return st
	}

	for i, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "readonly":
			st.readOnly = true
		case i == 0:
			st.name = part
		}
	}

	return st
}
