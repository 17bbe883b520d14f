package casing

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "id"},
		{"name", "name"},
		{"browserLink", "browser_link"},
		{"downloadLink", "download_link"},
		{"nextPageToken", "next_page_token"},
		{"rowIds", "row_ids"},
		{"addedRowIds", "added_row_ids"},
		{"imageURL", "image_url"},
		{"imageUrl", "image_url"},
		{"isOwner", "is_owner"},
		{"tableAndViewCount", "table_and_view_count"},
		{"already_snake", "already_snake"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToSnake(tt.in); got != tt.want {
			t.Errorf("ToSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"id", "id"},
		{"is_owner", "isOwner"},
		{"next_page_token", "nextPageToken"},
		{"row_ids", "rowIds"},
		{"image_url", "imageUrl"},
		// camelCase input passes through untouched
		{"isOwner", "isOwner"},
		{"browserLink", "browserLink"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToCamel(tt.in); got != tt.want {
			t.Errorf("ToCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnakeKeys_Nested(t *testing.T) {
	in := json.RawMessage(`{
		"items": [
			{"browserLink": "https://coda.io/d/x", "docSize": {"pageCount": 3, "overApiSizeLimit": false}}
		],
		"nextPageToken": "abc"
	}`)

	out, err := SnakeKeys(in)
	if err != nil {
		t.Fatalf("SnakeKeys: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output not valid JSON: %v", err)
	}
	if _, ok := doc["next_page_token"]; !ok {
		t.Errorf("missing next_page_token in %s", out)
	}
	items := doc["items"].([]any)
	first := items[0].(map[string]any)
	if _, ok := first["browser_link"]; !ok {
		t.Errorf("missing browser_link in %s", out)
	}
	size := first["doc_size"].(map[string]any)
	if _, ok := size["page_count"]; !ok {
		t.Errorf("missing nested page_count in %s", out)
	}
}

// Row values are keyed by column IDs ("c-aBcDeF") or user column names
// ("Due Date"); marking the values subtree opaque must leave those keys
// byte-for-byte intact while the envelope still gets renamed.
func TestSnakeKeys_OpaqueSubtrees(t *testing.T) {
	in := json.RawMessage(`{
		"browserLink": "https://coda.io/d/x",
		"values": {
			"c-aBcDeF": "x",
			"Due Date": "2026-01-01",
			"richCell": {"innerKey": 1}
		}
	}`)

	out, err := SnakeKeys(in, "values")
	if err != nil {
		t.Fatalf("SnakeKeys: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output not valid JSON: %v", err)
	}
	if _, ok := doc["browser_link"]; !ok {
		t.Errorf("missing browser_link in %s", out)
	}
	values, ok := doc["values"].(map[string]any)
	if !ok {
		t.Fatalf("missing values in %s", out)
	}
	for _, key := range []string{"c-aBcDeF", "Due Date"} {
		if _, ok := values[key]; !ok {
			t.Errorf("data key %q rewritten: %s", key, out)
		}
	}
	rich, ok := values["richCell"].(map[string]any)
	if !ok {
		t.Fatalf("richCell rewritten: %s", out)
	}
	if _, ok := rich["innerKey"]; !ok {
		t.Errorf("nested data key rewritten: %s", out)
	}
}

func TestCamelKeys_OpaqueSubtrees(t *testing.T) {
	in := json.RawMessage(`{
		"cells": [
			{"column": "c-one", "value": {"custom_key": true, "another_one": 2}}
		],
		"key_columns": ["c-one"]
	}`)

	out, err := CamelKeys(in, "value")
	if err != nil {
		t.Fatalf("CamelKeys: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, `"keyColumns"`) {
		t.Errorf("missing keyColumns in %s", s)
	}
	for _, key := range []string{`"custom_key"`, `"another_one"`} {
		if !strings.Contains(s, key) {
			t.Errorf("cell value key %s rewritten: %s", key, s)
		}
	}
	if strings.Contains(s, `"customKey"`) {
		t.Errorf("cell value key camelized: %s", s)
	}
}

func TestCamelKeys(t *testing.T) {
	in := json.RawMessage(`{"insertion_mode": "append", "canvas_content": {"format": "markdown", "content": "hi"}}`)

	out, err := CamelKeys(in)
	if err != nil {
		t.Fatalf("CamelKeys: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, `"insertionMode"`) {
		t.Errorf("missing insertionMode in %s", s)
	}
	if !strings.Contains(s, `"canvasContent"`) {
		t.Errorf("missing canvasContent in %s", s)
	}
}

// Large integers must survive the key rewrite without being rounded
// through float64.
func TestTransform_PreservesNumbers(t *testing.T) {
	in := json.RawMessage(`{"rowCount": 9007199254740993, "score": 0.1}`)

	out, err := SnakeKeys(in)
	if err != nil {
		t.Fatalf("SnakeKeys: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, "9007199254740993") {
		t.Errorf("large integer mangled: %s", s)
	}
	if !strings.Contains(s, "0.1") {
		t.Errorf("float mangled: %s", s)
	}
}

func TestTransform_InvalidJSON(t *testing.T) {
	if _, err := SnakeKeys(json.RawMessage(`{`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
