package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/hyperengineering/coda/internal/casing"
)

// Argument extraction helpers. MCP tool arguments arrive as a
// map[string]any decoded from JSON, so numbers are float64 and arrays
// are []any regardless of the declared schema.

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func intArg(args map[string]any, key string) int {
	if f, ok := args[key].(float64); ok {
		return int(f)
	}
	return 0
}

// boolArg returns nil when the argument is absent, so optional booleans
// can be omitted from the outgoing request entirely.
func boolArg(args map[string]any, key string) *bool {
	if b, ok := args[key].(bool); ok {
		return &b
	}
	return nil
}

// stringSliceArg converts various array types to []string.
// Handles []any, []string, and nil.
func stringSliceArg(args map[string]any, key string) []string {
	switch arr := args[key].(type) {
	case []string:
		return arr
	case []any:
		result := make([]string, 0, len(arr))
		for _, item := range arr {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return nil
	}
}

// decodeObjectArg unmarshals a structured argument into out. Object keys
// are normalized to camelCase first, so agents can pass either the
// vendor's camelCase shapes or snake_case equivalents. Cell values are
// data, not structure: anything under a "value" key is forwarded to the
// API exactly as the agent sent it. Returns false when the argument is
// absent.
func decodeObjectArg(args map[string]any, key string, out any) (bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return false, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	camel, err := casing.CamelKeys(raw, "value")
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	if err := json.Unmarshal(camel, out); err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return true, nil
}
