package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setupConfigDir(t *testing.T) {
	t.Helper()
	t.Setenv("CLAUDETASK_CONFIG_DIR", t.TempDir())
}

func TestConfigSetGetRoundTrip(t *testing.T) {
	setupConfigDir(t)

	if _, err := execute(t, "", "config", "set", "server", "http://localhost:9000"); err != nil {
		t.Fatalf("config set server: %v", err)
	}
	if _, err := execute(t, "", "config", "set", "log-refresh", "5"); err != nil {
		t.Fatalf("config set log-refresh: %v", err)
	}
	out, err := execute(t, "", "config", "get")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if !strings.Contains(out, "http://localhost:9000") {
		t.Fatalf("config get output missing server url: %s", out)
	}
	if !strings.Contains(out, `"logRefreshSeconds":5`) {
		t.Fatalf("config get output missing log refresh: %s", out)
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	setupConfigDir(t)
	if _, err := execute(t, "", "config", "set", "colour", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestNoServerConfigured(t *testing.T) {
	setupConfigDir(t)
	_, err := execute(t, "", "doctor")
	if err == nil {
		t.Fatal("expected error with no server configured")
	}
	if !strings.Contains(err.Error(), "config set server") {
		t.Fatalf("error should point at config set server, got: %v", err)
	}
}

func TestProjectsUseSavesCurrentProject(t *testing.T) {
	setupConfigDir(t)

	if _, err := execute(t, "", "projects", "use", "p1"); err != nil {
		t.Fatalf("projects use: %v", err)
	}
	out, err := execute(t, "", "config", "get")
	if err != nil {
		t.Fatalf("config get: %v", err)
	}
	if !strings.Contains(out, `"currentProjectId":"p1"`) {
		t.Fatalf("current project not saved: %s", out)
	}
}

func TestHooksListUnionsProvenanceBuckets(t *testing.T) {
	setupConfigDir(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/projects/p1/hooks" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		// The enabled default hook appears in both buckets; the union must
		// keep one copy.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"enabled": [{"id":"h1","name":"Format on Save","provenance":"default","enabled":true}],
			"available_default": [{"id":"h1","name":"Format on Save","provenance":"default","enabled":true}],
			"custom": [{"id":"h2","name":"Notify Slack","provenance":"custom","enabled":false}],
			"favorites": []
		}`))
	}))
	defer srv.Close()

	out, err := execute(t, "", "hooks", "list", "--server", srv.URL, "--project", "p1")
	if err != nil {
		t.Fatalf("hooks list: %v", err)
	}
	if got := strings.Count(out, "Format on Save"); got != 1 {
		t.Fatalf("default hook should appear exactly once, got %d in: %s", got, out)
	}
	if !strings.Contains(out, "Notify Slack") {
		t.Fatalf("custom hook missing from union: %s", out)
	}
}

func TestHooksListBucketAndQueryFilter(t *testing.T) {
	setupConfigDir(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"enabled": [],
			"available_default": [
				{"id":"h1","name":"Logger","provenance":"default","enabled":true},
				{"id":"h2","name":"Linter","provenance":"default","enabled":false}
			],
			"custom": [{"id":"h3","name":"Logging Hook","provenance":"custom","enabled":false}],
			"favorites": []
		}`))
	}))
	defer srv.Close()

	out, err := execute(t, "", "hooks", "list", "--server", srv.URL, "--project", "p1",
		"--bucket", "enabled", "--query", "log")
	if err != nil {
		t.Fatalf("hooks list: %v", err)
	}
	if !strings.Contains(out, "Logger") {
		t.Fatalf("enabled+query should keep Logger: %s", out)
	}
	if strings.Contains(out, "Linter") || strings.Contains(out, "Logging Hook") {
		t.Fatalf("filter leaked items: %s", out)
	}
}

func TestDeleteDeclinedSendsNoRequest(t *testing.T) {
	setupConfigDir(t)

	var deletes int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes++
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	out, err := execute(t, "n\n", "hooks", "delete", "h1", "--server", srv.URL, "--project", "p1")
	if err != nil {
		t.Fatalf("declined delete should not error: %v", err)
	}
	if deletes != 0 {
		t.Fatalf("declined delete issued %d DELETE request(s)", deletes)
	}
	if !strings.Contains(out, "cancelled") {
		t.Fatalf("expected cancelled output: %s", out)
	}
}

func TestDeleteWithYesSkipsPrompt(t *testing.T) {
	setupConfigDir(t)

	var deletes int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes++
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if _, err := execute(t, "", "hooks", "delete", "h1", "--yes", "--server", srv.URL, "--project", "p1"); err != nil {
		t.Fatalf("hooks delete --yes: %v", err)
	}
	if deletes != 1 {
		t.Fatalf("expected one DELETE, got %d", deletes)
	}
}

func TestFilesCpResolvesNameCollision(t *testing.T) {
	setupConfigDir(t)

	var copied struct {
		SourcePath string `json:"sourcePath"`
		DestPath   string `json:"destPath"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"projectName": "demo",
				"path": "docs",
				"breadcrumbs": ["docs"],
				"entries": [
					{"name":"a.txt","path":"docs/a.txt","kind":"file"},
					{"name":"a (1).txt","path":"docs/a (1).txt","kind":"file"}
				]
			}`))
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/files/copy"):
			if err := json.NewDecoder(r.Body).Decode(&copied); err != nil {
				t.Fatalf("decode copy body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	if _, err := execute(t, "", "files", "cp", "src/a.txt", "docs", "--server", srv.URL, "--project", "p1"); err != nil {
		t.Fatalf("files cp: %v", err)
	}
	if copied.SourcePath != "src/a.txt" {
		t.Fatalf("sourcePath = %q", copied.SourcePath)
	}
	if copied.DestPath != "docs/a (2).txt" {
		t.Fatalf("destPath = %q, want suffix bumped past both existing names", copied.DestPath)
	}
}

func TestHistoryRecordsMutations(t *testing.T) {
	setupConfigDir(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if _, err := execute(t, "", "hooks", "enable", "h1", "--server", srv.URL, "--project", "p1"); err != nil {
		t.Fatalf("hooks enable: %v", err)
	}
	out, err := execute(t, "", "history", "--limit", "10")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, `"operation":"enable"`) || !strings.Contains(out, `"target":"h1"`) {
		t.Fatalf("history missing recorded mutation: %s", out)
	}
}

func TestDoctorReportsServer(t *testing.T) {
	setupConfigDir(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	out, err := execute(t, "", "doctor", "--server", srv.URL)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !strings.Contains(out, srv.URL) || !strings.Contains(out, "true") {
		t.Fatalf("doctor output: %s", out)
	}
}

func TestMCPValidateRejectsBadBodyLocally(t *testing.T) {
	setupConfigDir(t)

	_, err := execute(t, "{not json at all", "mcp", "validate")
	if err == nil {
		t.Fatal("expected validation error")
	}
}
