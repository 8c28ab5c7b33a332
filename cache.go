package patcher

import (
	"reflect"
	"sync"
)

// fieldInfo describes one patchable destination field: the destination
// side of the match. matchName is the name source fields are compared
// against (tag override or the Go field name); index is the reflect
// index path, which spans embedded structs for promoted fields.
type fieldInfo struct {
	name      string
	matchName string
	index     []int
	typ       reflect.Type
	settable  bool
	ignored   bool
	ambiguous bool
}

type typeInfo struct {
	fields []fieldInfo
}

var (
	typeCache sync.Map // map[reflect.Type]*typeInfo
)

// getTypeInfo returns the field table for typ, computing it on first
// use. Tables are immutable once stored, so concurrent patches over the
// same destination type share one entry.
func getTypeInfo(typ reflect.Type) *typeInfo {
	if info, ok := typeCache.Load(typ); ok {
		return info.(*typeInfo)
	}

	info := &typeInfo{}
	if typ.Kind() == reflect.Struct {
		seen := make(map[string]seenField)
		collectFields(typ, nil, true, 0, seen, info)

		// Names promoted ambiguously from two embedded structs are
		// dropped here, after the walk, so a shallower field that
		// shadowed the ambiguous pair survives.
		fields := info.fields[:0]
		for _, fi := range info.fields {
			if !fi.ambiguous {
				fields = append(fields, fi)
			}
		}
		info.fields = fields
	}

	typeCache.Store(typ, info)
	return info
}

type seenField struct {
	depth     int
	pos       int
	ambiguous bool
}

// collectFields walks typ's fields depth-first, recursing into embedded
// structs so that promoted fields participate in matching. Only
// publicly visible fields become descriptors: plain unexported fields
// are invisible to patching and never count as destination names.
// Shadowing follows Go promotion rules: a name at a shallower depth
// wins over the same name deeper in the embedding tree, and a name
// promoted from two embedded structs at the same depth is ambiguous
// and matches nothing.
func collectFields(typ reflect.Type, index []int, settable bool, depth int, seen map[string]seenField, info *typeInfo) {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldIndex := append(append([]int(nil), index...), i)
		exported := field.PkgPath == ""

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectFields(field.Type, fieldIndex, settable && exported, depth+1, seen, info)
			continue
		}

		if !exported {
			continue
		}

		tag := parseTag(field)
		matchName := field.Name
		if tag.name != "" {
			matchName = tag.name
		}

		fi := fieldInfo{
			name:      field.Name,
			matchName: matchName,
			index:     fieldIndex,
			typ:       field.Type,
			settable:  settable && !tag.readOnly,
			ignored:   tag.ignore,
		}

		if prev, ok := seen[matchName]; ok {
			switch {
			case prev.depth < depth:
				// Already shadowed by a shallower field.
			case prev.depth == depth:
				if !prev.ambiguous {
					info.fields[prev.pos].ambiguous = true
					seen[matchName] = seenField{depth: depth, pos: prev.pos, ambiguous: true}
				}
			default:
				// A shallower field shadows the promoted one (or the
				// ambiguous pair) already seen.
				info.fields[prev.pos] = fi
				seen[matchName] = seenField{depth: depth, pos: prev.pos}
			}
			continue
		}

		seen[matchName] = seenField{depth: depth, pos: len(info.fields)}
		info.fields = append(info.fields, fi)
	}
}
