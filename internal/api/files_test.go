package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"claudetask-cli/internal/model"
)

func TestListFiles(t *testing.T) {
	c, ts := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/projects/p1/files" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("path"); got != "src/app" {
			t.Errorf("path query = %q, want src/app", got)
		}
		_ = json.NewEncoder(w).Encode(model.FileListing{
			ProjectName: "demo",
			Path:        "src/app",
			Breadcrumbs: []string{"src", "src/app"},
			Entries: []model.FileEntry{
				{Name: "a.ts", Path: "src/app/a.ts", Kind: model.FileKindFile},
			},
		})
	}))
	defer ts.Close()

	listing, err := c.ListFiles(context.Background(), "p1", "src/app")
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if listing.ProjectName != "demo" || len(listing.Entries) != 1 {
		t.Fatalf("unexpected listing: %+v", listing)
	}
}

func TestReadWriteFile(t *testing.T) {
	var savedPath, savedContent string
	c, ts := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]string{
				"path": "src/a.ts", "content": "const a=1;",
			})
		case http.MethodPut:
			var body struct {
				Path    string `json:"path"`
				Content string `json:"content"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			savedPath, savedContent = body.Path, body.Content
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer ts.Close()

	content, err := c.ReadFile(context.Background(), "p1", "src/a.ts")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if content != "const a=1;" {
		t.Fatalf("content = %q", content)
	}

	if err := c.WriteFile(context.Background(), "p1", "src/a.ts", "const a=2;"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if savedPath != "src/a.ts" || savedContent != "const a=2;" {
		t.Fatalf("write body = %q %q", savedPath, savedContent)
	}
}

func TestCopyEntrySendsBothPaths(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()
	c := New(Config{BaseURL: ts.URL})

	if err := c.CopyEntry(context.Background(), "p1", "a.txt", "a (1).txt"); err != nil {
		t.Fatalf("CopyEntry: %v", err)
	}
	if got["sourcePath"] != "a.txt" || got["destPath"] != "a (1).txt" {
		t.Fatalf("copy body = %v", got)
	}
}

func TestDeleteEntryUsesQuery(t *testing.T) {
	var method, query string
	c, ts := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		query = r.URL.Query().Get("path")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	if err := c.DeleteEntry(context.Background(), "p1", "src/old.ts"); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if method != http.MethodDelete || query != "src/old.ts" {
		t.Fatalf("got %s path=%q", method, query)
	}
}
