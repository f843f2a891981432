package docs

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoValueType is the runtime's "no value" type identity. It displays as
// "void" when it is the only return type and as "undefined" otherwise.
const NoValueType = "NetUndefined"

const (
	prototypeSuffix = "Prototype"
	arraySuffix     = "[]"
)

// primitiveNames maps runtime primitive type identities to their script names.
var primitiveNames = map[string]string{
	"Int32":     "int",
	"Int32[]":   "int[]",
	"Double":    "number",
	"Double[]":  "number[]",
	"Boolean":   "bool",
	"Boolean[]": "bool[]",
}

// ResolveDisplayName converts a runtime type identity to the name shown in the
// documentation. returnSlotCount is the length of the return type list the
// type belongs to, or 0 for parameter and field types.
func ResolveDisplayName(raw string, returnSlotCount int) string {
	if raw == NoValueType {
		if returnSlotCount == 1 {
			return "void"
		}
		return "undefined"
	}
	if strings.HasSuffix(raw, prototypeSuffix) || strings.HasSuffix(raw, prototypeSuffix+arraySuffix) {
		return raw
	}
	if name, ok := primitiveNames[raw]; ok {
		return name
	}
	return lowerFirst(raw)
}

// ResolveDisplayNames resolves a whole return type list.
func ResolveDisplayNames(raw []string) []string {
	out := make([]string, len(raw))
	for i, r := range raw {
		out[i] = ResolveDisplayName(r, len(raw))
	}
	return out
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
