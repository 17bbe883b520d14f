package coda

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
)

func TestListRows_QueryParams(t *testing.T) {
	var gotQuery url.Values

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs/AbCDeFGH/tables/grid-one/rows" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "i-row1", "type": "row", "name": "Ship v2", "index": 0, "values": {"c-name": "Ship v2", "c-done": false}}
			],
			"nextSyncToken": "sync-abc"
		}`))
	}))

	byName := true
	list, err := client.ListRows(context.Background(), "AbCDeFGH", "grid-one", ListRowsParams{
		Query:          `Status="Complete"`,
		SortBy:         "natural",
		UseColumnNames: &byName,
		ValueFormat:    ValueFormatRich,
		Limit:          50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotQuery.Get("query"); got != `Status="Complete"` {
		t.Errorf("query = %q", got)
	}
	if got := gotQuery.Get("sortBy"); got != "natural" {
		t.Errorf("sortBy = %q", got)
	}
	if got := gotQuery.Get("useColumnNames"); got != "true" {
		t.Errorf("useColumnNames = %q", got)
	}
	if got := gotQuery.Get("valueFormat"); got != "rich" {
		t.Errorf("valueFormat = %q", got)
	}
	if gotQuery.Has("visibleOnly") {
		t.Error("unset visibleOnly should be omitted")
	}

	if list.NextSyncToken != "sync-abc" {
		t.Errorf("NextSyncToken = %q", list.NextSyncToken)
	}
	if len(list.Items) != 1 || list.Items[0].Values["c-done"] != false {
		t.Errorf("Items = %+v", list.Items)
	}
}

func TestGetRow(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/docs/AbCDeFGH/tables/grid-one/rows/i-row1" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{
			"id": "i-row1",
			"type": "row",
			"name": "Ship v2",
			"index": 7,
			"values": {"c-name": "Ship v2"},
			"parent": {"id": "grid-one", "type": "table"}
		}`))
	}))

	row, err := client.GetRow(context.Background(), "AbCDeFGH", "grid-one", "i-row1", GetRowParams{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.Index != 7 {
		t.Errorf("Index = %d, want 7", row.Index)
	}
	if row.Values["c-name"] != "Ship v2" {
		t.Errorf("Values = %+v", row.Values)
	}
}

func TestUpsertRows_BodyShape(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"requestId":"req-up","addedRowIds":["i-new1","i-new2"]}`))
	}))

	result, err := client.UpsertRows(context.Background(), "AbCDeFGH", "grid-one", UpsertRowsParams{
		Rows: []RowEdit{
			{Cells: []CellEdit{{Column: "c-name", Value: "Task A"}}},
			{Cells: []CellEdit{{Column: "c-name", Value: "Task B"}, {Column: "c-done", Value: true}}},
		},
		KeyColumns: []string{"c-name"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.AddedRowIDs) != 2 {
		t.Errorf("AddedRowIDs = %v", result.AddedRowIDs)
	}

	rows, ok := gotBody["rows"].([]any)
	if !ok || len(rows) != 2 {
		t.Fatalf("body rows = %v", gotBody["rows"])
	}
	first, ok := rows[0].(map[string]any)
	if !ok {
		t.Fatalf("rows[0] = %v", rows[0])
	}
	cells, ok := first["cells"].([]any)
	if !ok || len(cells) != 1 {
		t.Fatalf("rows[0].cells = %v", first["cells"])
	}
	cell := cells[0].(map[string]any)
	if cell["column"] != "c-name" || cell["value"] != "Task A" {
		t.Errorf("cell = %v", cell)
	}
	keyCols, ok := gotBody["keyColumns"].([]any)
	if !ok || len(keyCols) != 1 || keyCols[0] != "c-name" {
		t.Errorf("keyColumns = %v", gotBody["keyColumns"])
	}
	if _, present := gotBody["disableParsing"]; present {
		t.Error("unset disableParsing should be omitted")
	}
}

func TestUpdateRow_BodyShape(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"requestId":"req-ur","id":"i-row1"}`))
	}))

	disable := true
	result, err := client.UpdateRow(context.Background(), "AbCDeFGH", "grid-one", "i-row1",
		RowEdit{Cells: []CellEdit{{Column: "c-done", Value: true}}}, &disable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if result.ID != "i-row1" {
		t.Errorf("ID = %q", result.ID)
	}

	row, ok := gotBody["row"].(map[string]any)
	if !ok {
		t.Fatalf("body row = %v", gotBody["row"])
	}
	if _, ok := row["cells"].([]any); !ok {
		t.Errorf("row cells = %v", row["cells"])
	}
	if gotBody["disableParsing"] != true {
		t.Errorf("disableParsing = %v", gotBody["disableParsing"])
	}
}

func TestDeleteRow(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.EscapedPath() != "/docs/AbCDeFGH/tables/grid-one/rows/i-row1" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"requestId":"req-dr","id":"i-row1"}`))
	}))

	result, err := client.DeleteRow(context.Background(), "AbCDeFGH", "grid-one", "i-row1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID != "i-row1" {
		t.Errorf("ID = %q", result.ID)
	}
}

func TestDeleteRows_BodyShape(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/docs/AbCDeFGH/tables/grid-one/rows" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"requestId":"req-drs","rowIds":["i-row1","i-row2"]}`))
	}))

	result, err := client.DeleteRows(context.Background(), "AbCDeFGH", "grid-one", []string{"i-row1", "i-row2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.RowIDs) != 2 {
		t.Errorf("RowIDs = %v", result.RowIDs)
	}

	ids, ok := gotBody["rowIds"].([]any)
	if !ok || len(ids) != 2 || ids[0] != "i-row1" {
		t.Errorf("body rowIds = %v", gotBody["rowIds"])
	}
}

func TestPushButton(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.EscapedPath() != "/docs/AbCDeFGH/tables/grid-one/rows/i-row1/buttons/c-action" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"requestId":"req-pb","rowId":"i-row1","columnId":"c-action"}`))
	}))

	result, err := client.PushButton(context.Background(), "AbCDeFGH", "grid-one", "i-row1", "c-action")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RowID != "i-row1" || result.ColumnID != "c-action" {
		t.Errorf("result = %+v", result)
	}
}
