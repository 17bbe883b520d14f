package coda

import (
	"context"
	"net/http"
	"testing"
)

func TestListTables(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs/AbCDeFGH/tables" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("tableTypes"); got != "table,view" {
			t.Errorf("tableTypes = %q, want %q", got, "table,view")
		}
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "grid-one", "type": "table", "tableType": "table", "name": "Tasks"},
				{"id": "table-two", "type": "table", "tableType": "view", "name": "Open Tasks", "parent": {"id": "canvas-one", "type": "page"}}
			]
		}`))
	}))

	list, err := client.ListTables(context.Background(), "AbCDeFGH", ListTablesParams{
		TableTypes: []string{"table", "view"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("got %d tables, want 2", len(list.Items))
	}
	if list.Items[1].TableType != TableTypeView {
		t.Errorf("TableType = %q, want view", list.Items[1].TableType)
	}
	if list.Items[1].Parent == nil || list.Items[1].Parent.ID != "canvas-one" {
		t.Errorf("Parent = %+v", list.Items[1].Parent)
	}
}

func TestGetTable(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "grid-one",
			"type": "table",
			"tableType": "table",
			"name": "Tasks",
			"displayColumn": {"id": "c-name", "type": "column"},
			"rowCount": 42,
			"layout": "default",
			"sorts": [{"column": {"id": "c-due", "type": "column"}, "direction": "ascending"}],
			"filter": {"valid": true, "isVolatile": false}
		}`))
	}))

	table, err := client.GetTable(context.Background(), "AbCDeFGH", "grid-one")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.DisplayColumn.ID != "c-name" {
		t.Errorf("DisplayColumn.ID = %q", table.DisplayColumn.ID)
	}
	if len(table.Sorts) != 1 || table.Sorts[0].Direction != SortAscending {
		t.Errorf("Sorts = %+v", table.Sorts)
	}
	if table.Filter == nil || !table.Filter.Valid {
		t.Errorf("Filter = %+v", table.Filter)
	}
}

func TestListColumns(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("visibleOnly"); got != "true" {
			t.Errorf("visibleOnly = %q, want true", got)
		}
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "c-name", "type": "column", "name": "Name", "display": true, "format": {"type": "text", "isArray": false}},
				{"id": "c-done", "type": "column", "name": "Done", "format": {"type": "checkbox", "isArray": false}}
			]
		}`))
	}))

	visible := true
	list, err := client.ListColumns(context.Background(), "AbCDeFGH", "grid-one", ListColumnsParams{
		VisibleOnly: &visible,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("got %d columns, want 2", len(list.Items))
	}
	if list.Items[0].Display == nil || !*list.Items[0].Display {
		t.Errorf("Items[0].Display = %v, want true", list.Items[0].Display)
	}
	if list.Items[1].Format.Type != "checkbox" {
		t.Errorf("Format.Type = %q, want checkbox", list.Items[1].Format.Type)
	}
}

func TestGetColumn_FormatVariants(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/docs/AbCDeFGH/tables/grid-one/columns/c-status" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{
			"id": "c-status",
			"type": "column",
			"name": "Status",
			"parent": {"id": "grid-one", "type": "table"},
			"format": {
				"type": "select",
				"isArray": false,
				"options": [
					{"name": "Open"},
					{"name": "Done", "backgroundColor": "#22C55E"}
				]
			}
		}`))
	}))

	col, err := client.GetColumn(context.Background(), "AbCDeFGH", "grid-one", "c-status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.Parent.ID != "grid-one" {
		t.Errorf("Parent = %+v", col.Parent)
	}
	if len(col.Format.Options) != 2 || col.Format.Options[1].Name != "Done" {
		t.Errorf("Options = %+v", col.Format.Options)
	}
}
