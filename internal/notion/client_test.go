package notion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient("test-token")
	client.SetBaseURL(server.URL)
	return client, server
}

func TestRetrievePage(t *testing.T) {
	var gotAuth, gotVersion string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		if r.URL.Path != "/pages/abc123" {
			t.Errorf("path = %q, want /pages/abc123", r.URL.Path)
		}
		fmt.Fprint(w, `{"object":"page","id":"abc123","url":"https://www.notion.so/abc123"}`)
	}))
	defer server.Close()

	page, err := client.RetrievePage(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("RetrievePage failed: %v", err)
	}
	if page.ID() != "abc123" {
		t.Errorf("page id = %q, want abc123", page.ID())
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotVersion != apiVersion {
		t.Errorf("Notion-Version = %q, want %q", gotVersion, apiVersion)
	}
}

func TestListChildrenPagination(t *testing.T) {
	var cursors []string
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("start_cursor")
		cursors = append(cursors, cursor)
		if r.URL.Query().Get("page_size") != "100" {
			t.Errorf("page_size = %q, want 100", r.URL.Query().Get("page_size"))
		}
		if cursor == "" {
			fmt.Fprint(w, `{"results":[{"type":"paragraph"}],"has_more":true,"next_cursor":"cur-2"}`)
			return
		}
		fmt.Fprint(w, `{"results":[{"type":"heading_1"}],"has_more":false,"next_cursor":null}`)
	}))
	defer server.Close()

	ctx := context.Background()
	first, err := client.ListChildren(ctx, "blk-1", "", 100)
	if err != nil {
		t.Fatalf("first ListChildren failed: %v", err)
	}
	if !first.HasMore || first.NextCursor != "cur-2" {
		t.Errorf("first page: has_more=%v next_cursor=%q", first.HasMore, first.NextCursor)
	}

	second, err := client.ListChildren(ctx, "blk-1", first.NextCursor, 100)
	if err != nil {
		t.Fatalf("second ListChildren failed: %v", err)
	}
	if second.HasMore {
		t.Error("second page: has_more=true, want false")
	}

	if len(cursors) != 2 || cursors[0] != "" || cursors[1] != "cur-2" {
		t.Errorf("cursors sent = %v, want [\"\" \"cur-2\"]", cursors)
	}
}

func TestCreatePage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pages" {
			t.Errorf("%s %s, want POST /pages", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if _, ok := body["parent"]; !ok {
			t.Error("request body missing parent")
		}
		fmt.Fprint(w, `{"object":"page","id":"new-1","url":"https://www.notion.so/new-1"}`)
	}))
	defer server.Close()

	created, err := client.CreatePage(context.Background(), Block{
		"parent":     map[string]any{"page_id": "abc123"},
		"properties": map[string]any{},
	})
	if err != nil {
		t.Fatalf("CreatePage failed: %v", err)
	}
	if created.ID() != "new-1" || created.URL() != "https://www.notion.so/new-1" {
		t.Errorf("created = %v", created)
	}
}

func TestAppendChildren(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		var body struct {
			Children []Block `json:"children"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(body.Children) != 2 {
			t.Errorf("got %d children, want 2", len(body.Children))
		}
		fmt.Fprint(w, `{"results":[{"type":"paragraph"},{"type":"paragraph"}],"has_more":false}`)
	}))
	defer server.Close()

	children := []Block{
		{"type": "paragraph", "paragraph": map[string]any{}},
		{"type": "paragraph", "paragraph": map[string]any{}},
	}
	if _, err := client.AppendChildren(context.Background(), "new-1", children); err != nil {
		t.Fatalf("AppendChildren failed: %v", err)
	}
}

func TestAPIError(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"object":"error","status":404,"code":"object_not_found","message":"Could not find page."}`)
	}))
	defer server.Close()

	_, err := client.RetrievePage(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is not *APIError: %v", err)
	}
	if apiErr.StatusCode != 404 || apiErr.Code != "object_not_found" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}
