package coda

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestListPages(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/docs/AbCDeFGH/pages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit = %q, want 5", got)
		}
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "canvas-one", "type": "page", "name": "Overview", "contentType": "canvas"},
				{"id": "canvas-two", "type": "page", "name": "Notes", "isHidden": true}
			]
		}`))
	}))

	list, err := client.ListPages(context.Background(), "AbCDeFGH", ListPagesParams{Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("got %d pages, want 2", len(list.Items))
	}
	if !list.Items[1].IsHidden {
		t.Error("Items[1].IsHidden = false, want true")
	}
}

func TestCreatePage(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"canvas-new","requestId":"req-2"}`))
	}))

	created, err := client.CreatePage(context.Background(), "AbCDeFGH", CreatePageParams{
		Name:         "Launch Notes",
		ParentPageID: "canvas-parent",
		PageContent: &PageContent{
			Type: "canvas",
			CanvasContent: CanvasContent{
				Format:  "markdown",
				Content: "## Checklist",
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "canvas-new" {
		t.Errorf("ID = %q", created.ID)
	}
	if gotBody["parentPageId"] != "canvas-parent" {
		t.Errorf("body parentPageId = %v", gotBody["parentPageId"])
	}
}

func TestUpdatePage_UsesPut(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"canvas-one","requestId":"req-3"}`))
	}))

	hidden := true
	_, err := client.UpdatePage(context.Background(), "AbCDeFGH", "canvas-one", UpdatePageParams{
		Name:     "Renamed",
		IsHidden: &hidden,
		ContentUpdate: &PageContentUpdate{
			InsertionMode: "append",
			CanvasContent: CanvasContent{Format: "markdown", Content: "more"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if gotBody["isHidden"] != true {
		t.Errorf("body isHidden = %v", gotBody["isHidden"])
	}
	update, ok := gotBody["contentUpdate"].(map[string]any)
	if !ok || update["insertionMode"] != "append" {
		t.Errorf("body contentUpdate = %v", gotBody["contentUpdate"])
	}
}

func TestDeletePage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.EscapedPath() != "/docs/AbCDeFGH/pages/Launch%20Notes" {
			t.Errorf("path = %s", r.URL.EscapedPath())
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id":"canvas-one","requestId":"req-4"}`))
	}))

	result, err := client.DeletePage(context.Background(), "AbCDeFGH", "Launch Notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RequestID != "req-4" {
		t.Errorf("RequestID = %q", result.RequestID)
	}
}
