// Package casing converts JSON object keys between the vendor wire
// format (camelCase) and the tool-facing format (snake_case). Only keys
// are rewritten; values pass through untouched.
package casing

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// ToSnake converts a camelCase key to snake_case. Acronym runs collapse
// into a single word: "downloadLink" → "download_link", "imageURL" →
// "image_url", "rowIds" → "row_ids".
func ToSnake(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || (unicode.IsUpper(runes[i-1]) && nextLower)) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ToCamel converts a snake_case key to camelCase. Keys without
// underscores pass through unchanged, so camelCase input is idempotent.
func ToCamel(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))

	wroteFirst := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		if !wroteFirst {
			b.WriteString(part)
			wroteFirst = true
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}

// SnakeKeys rewrites every object key in a JSON document to snake_case.
// Subtrees under keys named in opaque carry data rather than wire
// structure (row values keyed by column ID or name, formula results);
// the key itself is renamed but everything below it passes through
// verbatim.
func SnakeKeys(raw json.RawMessage, opaque ...string) (json.RawMessage, error) {
	return transformKeys(raw, ToSnake, opaque)
}

// CamelKeys rewrites every object key in a JSON document to camelCase,
// leaving subtrees under the opaque keys untouched.
func CamelKeys(raw json.RawMessage, opaque ...string) (json.RawMessage, error) {
	return transformKeys(raw, ToCamel, opaque)
}

func transformKeys(raw json.RawMessage, rename func(string) string, opaque []string) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber() // keep numbers verbatim instead of float64

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(opaque))
	for _, k := range opaque {
		skip[k] = true
	}
	return json.Marshal(walk(doc, rename, skip))
}

func walk(v any, rename func(string) string, skip map[string]bool) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if skip[k] {
				out[rename(k)] = inner
				continue
			}
			out[rename(k)] = walk(inner, rename, skip)
		}
		return out
	case []any:
		for i, inner := range val {
			val[i] = walk(inner, rename, skip)
		}
		return val
	default:
		return v
	}
}
