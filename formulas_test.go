package coda

import (
	"context"
	"net/http"
	"testing"
)

func TestListFormulas(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs/AbCDeFGH/formulas" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("sortBy"); got != "name" {
			t.Errorf("sortBy = %q, want name", got)
		}
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "f-one", "type": "formula", "name": "Total Revenue"},
				{"id": "f-two", "type": "formula", "name": "Open Count"}
			]
		}`))
	}))

	list, err := client.ListFormulas(context.Background(), "AbCDeFGH", ListFormulasParams{SortBy: "name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Items) != 2 || list.Items[0].Name != "Total Revenue" {
		t.Errorf("Items = %+v", list.Items)
	}
}

func TestGetFormula(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/docs/AbCDeFGH/formulas/f-one" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{
			"id": "f-one",
			"type": "formula",
			"name": "Total Revenue",
			"value": 1250.5,
			"parent": {"id": "canvas-one", "type": "page"}
		}`))
	}))

	formula, err := client.GetFormula(context.Background(), "AbCDeFGH", "f-one")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if formula.Name != "Total Revenue" {
		t.Errorf("Name = %q", formula.Name)
	}
	if formula.Value != 1250.5 {
		t.Errorf("Value = %v", formula.Value)
	}
}
