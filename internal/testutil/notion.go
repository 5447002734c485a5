package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// FakeNotion is an in-process stand-in for the Notion API. It serves the
// retrieve-page, list-children, create-page and append-children
// endpoints and records every write for assertions.
type FakeNotion struct {
	mu sync.Mutex

	// Page is served for any GET /pages/{id} request.
	Page map[string]any
	// Blocks are the children served by list-children, paginated by the
	// request's page_size.
	Blocks []map[string]any
	// PageError, when non-zero, makes GET /pages/{id} fail with that
	// status code.
	PageError int

	// CreatedPages are the bodies of POST /pages requests.
	CreatedPages []map[string]any
	// Appends are the children arrays of PATCH append requests, in call
	// order.
	Appends [][]map[string]any
	// ListCalls counts list-children requests.
	ListCalls int
	// RetrieveCalls counts retrieve-page requests.
	RetrieveCalls int

	server *httptest.Server
}

// NewFakeNotion starts the fake server. Callers must Close it.
func NewFakeNotion() *FakeNotion {
	f := &FakeNotion{}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

// URL returns the server's base URL.
func (f *FakeNotion) URL() string {
	return f.server.URL
}

// Close shuts the server down.
func (f *FakeNotion) Close() {
	f.server.Close()
}

func (f *FakeNotion) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/pages/"):
		f.handleRetrievePage(w)
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/children"):
		f.handleListChildren(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/pages":
		f.handleCreatePage(w, r)
	case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/children"):
		f.handleAppendChildren(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"object":"error","status":404,"code":"object_not_found","message":"unknown route"}`)
	}
}

func (f *FakeNotion) handleRetrievePage(w http.ResponseWriter) {
	f.RetrieveCalls++
	if f.PageError != 0 {
		w.WriteHeader(f.PageError)
		fmt.Fprintf(w, `{"object":"error","status":%d,"code":"object_not_found","message":"Could not find page."}`, f.PageError)
		return
	}
	json.NewEncoder(w).Encode(f.Page)
}

func (f *FakeNotion) handleListChildren(w http.ResponseWriter, r *http.Request) {
	f.ListCalls++

	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize <= 0 {
		pageSize = 100
	}
	begin := 0
	if cursor := r.URL.Query().Get("start_cursor"); cursor != "" {
		begin, _ = strconv.Atoi(cursor)
	}
	end := begin + pageSize
	if end > len(f.Blocks) {
		end = len(f.Blocks)
	}

	resp := map[string]any{
		"results":  f.Blocks[begin:end],
		"has_more": end < len(f.Blocks),
	}
	if end < len(f.Blocks) {
		resp["next_cursor"] = strconv.Itoa(end)
	}
	json.NewEncoder(w).Encode(resp)
}

func (f *FakeNotion) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var page map[string]any
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.CreatedPages = append(f.CreatedPages, page)

	created := map[string]any{
		"object": "page",
		"id":     fmt.Sprintf("created-%d", len(f.CreatedPages)),
		"url":    fmt.Sprintf("https://www.notion.so/created-%d", len(f.CreatedPages)),
	}
	json.NewEncoder(w).Encode(created)
}

func (f *FakeNotion) handleAppendChildren(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Children []map[string]any `json:"children"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.Appends = append(f.Appends, body.Children)

	json.NewEncoder(w).Encode(map[string]any{
		"results":  body.Children,
		"has_more": false,
	})
}
