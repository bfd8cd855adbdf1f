package tui

import (
	"context"
	"errors"
	"net/http"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/listsync"
	"claudetask-cli/internal/model"
	"claudetask-cli/internal/store"
)

func testModel(t *testing.T) appModel {
	t.Helper()
	t.Setenv("CLAUDETASK_CONFIG_DIR", t.TempDir())
	m := newAppModel(Options{ProjectID: "p1"}, &store.TUIState{Version: 1})
	m.width = 80
	m.height = 24
	m.list.SetSize(80, listHeight(24))
	return m
}

func apply(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestRestoreRemembersViewAndFilesPath(t *testing.T) {
	t.Setenv("CLAUDETASK_CONFIG_DIR", t.TempDir())
	m := newAppModel(Options{}, &store.TUIState{
		Version:           1,
		View:              "logs",
		SelectedProjectID: "p9",
		FilesPath:         "src/app",
		LogAutoRefresh:    true,
	})
	if m.view != viewLogs {
		t.Fatalf("view = %v", m.view)
	}
	if m.projectID != "p9" || m.filesPath != "src/app" || !m.logAutoRefresh {
		t.Fatalf("restored state wrong: %+v", m)
	}
}

func TestRestoreWithoutProjectFallsBackToProjects(t *testing.T) {
	t.Setenv("CLAUDETASK_CONFIG_DIR", t.TempDir())
	m := newAppModel(Options{}, &store.TUIState{Version: 1, View: "hooks"})
	if m.view != viewProjects {
		t.Fatalf("a remembered view without a project must fall back, got %v", m.view)
	}
}

func TestLoadReplacesListWholesale(t *testing.T) {
	m := testModel(t)
	m.view = viewHooks

	seq := m.hooks.Begin(listsync.Scope{ProjectID: "p1"})
	m = apply(t, m, hooksLoadedMsg{seq: seq, items: []model.Hook{
		{ID: "h1", Name: "One", Provenance: model.ProvenanceDefault},
		{ID: "h2", Name: "Two", Provenance: model.ProvenanceCustom},
	}})
	if len(m.list.Items()) != 2 {
		t.Fatalf("list has %d items", len(m.list.Items()))
	}

	seq = m.hooks.Begin(listsync.Scope{ProjectID: "p1"})
	m = apply(t, m, hooksLoadedMsg{seq: seq, items: []model.Hook{
		{ID: "h3", Name: "Three", Provenance: model.ProvenanceCustom},
	}})
	if len(m.list.Items()) != 1 {
		t.Fatalf("reload did not replace wholesale: %d items", len(m.list.Items()))
	}
}

func TestStaleLoadIsDropped(t *testing.T) {
	m := testModel(t)
	m.view = viewHooks

	oldSeq := m.hooks.Begin(listsync.Scope{ProjectID: "p1"})
	newSeq := m.hooks.Begin(listsync.Scope{ProjectID: "p1"})

	m = apply(t, m, hooksLoadedMsg{seq: newSeq, items: []model.Hook{{ID: "h2", Name: "New"}}})
	m = apply(t, m, hooksLoadedMsg{seq: oldSeq, items: []model.Hook{{ID: "h1", Name: "Old"}}})

	items := m.hooks.Items()
	if len(items) != 1 || items[0].ID != "h2" {
		t.Fatalf("stale response overwrote newer list: %+v", items)
	}
}

func TestLoadFailureKeepsPreviousList(t *testing.T) {
	m := testModel(t)
	m.view = viewHooks

	seq := m.hooks.Begin(listsync.Scope{ProjectID: "p1"})
	m = apply(t, m, hooksLoadedMsg{seq: seq, items: []model.Hook{{ID: "h1", Name: "One"}}})

	seq = m.hooks.Begin(listsync.Scope{ProjectID: "p1"})
	m = apply(t, m, hooksLoadedMsg{seq: seq, err: errors.New("boom")})

	if len(m.hooks.Items()) != 1 {
		t.Fatal("failed reload wiped the list")
	}
	if m.hooks.Err() == nil {
		t.Fatal("load error not recorded")
	}
}

func TestSwitchViewWithoutProjectShowsError(t *testing.T) {
	t.Setenv("CLAUDETASK_CONFIG_DIR", t.TempDir())
	m := newAppModel(Options{}, &store.TUIState{Version: 1})
	m.width = 80
	m.height = 24

	next, _ := m.switchView(viewHooks)
	out := next.(appModel)
	if out.view != viewProjects {
		t.Fatalf("view switched without a project: %v", out.view)
	}
	if out.toast.level != toastError {
		t.Fatal("expected error toast")
	}
}

func TestBucketCycling(t *testing.T) {
	m := testModel(t)
	m.view = viewHooks

	want := []listsync.Bucket{
		listsync.BucketDefault,
		listsync.BucketCustom,
		listsync.BucketFavorite,
		listsync.BucketEnabled,
		listsync.BucketAll,
	}
	for _, w := range want {
		m.cycleBucket()
		if m.bucket != w {
			t.Fatalf("bucket = %s, want %s", m.bucket, w)
		}
	}
}

func TestBucketFiltersSyncedList(t *testing.T) {
	m := testModel(t)
	m.view = viewHooks

	seq := m.hooks.Begin(listsync.Scope{ProjectID: "p1"})
	m = apply(t, m, hooksLoadedMsg{seq: seq, items: []model.Hook{
		{ID: "h1", Name: "Default On", Provenance: model.ProvenanceDefault, Enabled: true},
		{ID: "h2", Name: "Custom Off", Provenance: model.ProvenanceCustom},
	}})

	m.bucket = listsync.BucketEnabled
	m.syncList()
	if len(m.list.Items()) != 1 {
		t.Fatalf("enabled bucket: %d items", len(m.list.Items()))
	}

	m.bucket = listsync.BucketCustom
	m.syncList()
	if len(m.list.Items()) != 1 {
		t.Fatalf("custom bucket: %d items", len(m.list.Items()))
	}
}

func TestNextViewWraps(t *testing.T) {
	if got := nextView(viewActivity, 1); got != viewProjects {
		t.Fatalf("forward wrap = %v", got)
	}
	if got := nextView(viewProjects, -1); got != viewActivity {
		t.Fatalf("backward wrap = %v", got)
	}
}

func TestListWidgetUsesSubstringFilter(t *testing.T) {
	m := testModel(t)
	if got := m.list.Filter("lgr", []string{"Logger"}); len(got) != 0 {
		t.Fatalf("list filter accepted a non-substring query: %+v", got)
	}
	if got := m.list.Filter("log", []string{"Logger"}); len(got) != 1 {
		t.Fatalf("list filter rejected a substring query: %+v", got)
	}
}

func TestMutationKeysIgnoredWhileInFlight(t *testing.T) {
	m := testModel(t)
	m.view = viewHooks
	seq := m.hooks.Begin(listsync.Scope{ProjectID: "p1"})
	m = apply(t, m, hooksLoadedMsg{seq: seq, items: []model.Hook{
		{ID: "h1", Name: "Fmt", Enabled: true},
	}})

	next, cmd := m.Update(keyRunes("t"))
	m = next.(appModel)
	if cmd == nil {
		t.Fatal("first toggle must issue a request")
	}

	next, cmd = m.Update(keyRunes("t"))
	m = next.(appModel)
	if cmd != nil {
		t.Fatal("toggle repeated while a mutation is in flight must be ignored")
	}

	m = apply(t, m, mutationDoneMsg{op: "Disabled Fmt", refresh: viewHooks})
	if _, cmd = m.Update(keyRunes("t")); cmd == nil {
		t.Fatal("toggle must work again once the mutation completes")
	}
}

func TestPasteClearsClipboardOnlyAfterCutSucceeds(t *testing.T) {
	m := testModel(t)
	m.view = viewFiles
	m.filesPath = "docs"
	seq := m.files.Begin(listsync.Scope{ProjectID: "p1", Path: "docs"})
	m = apply(t, m, filesLoadedMsg{seq: seq, listing: model.FileListing{Path: "docs"}})
	m.clip.Cut(model.FileEntry{Name: "a.txt", Path: "src/a.txt", Kind: model.FileKindFile})

	next, cmd := m.pasteClipboard()
	m = next.(appModel)
	if cmd == nil {
		t.Fatal("paste must issue a request")
	}
	if !m.clip.Active() {
		t.Fatal("clipboard cleared before the move completed")
	}

	m = apply(t, m, mutationDoneMsg{op: "Moved", refresh: viewFiles, clearClip: true, err: errors.New("boom")})
	if !m.clip.Active() {
		t.Fatal("failed paste must keep the clipboard")
	}

	m = apply(t, m, mutationDoneMsg{op: "Moved", refresh: viewFiles, clearClip: true})
	if m.clip.Active() {
		t.Fatal("successful cut paste must clear the clipboard")
	}
}

func TestCopyPasteKeepsClipboardForReuse(t *testing.T) {
	m := testModel(t)
	m.view = viewFiles
	m.filesPath = "docs"
	seq := m.files.Begin(listsync.Scope{ProjectID: "p1", Path: "docs"})
	m = apply(t, m, filesLoadedMsg{seq: seq, listing: model.FileListing{Path: "docs"}})
	m.clip.Copy(model.FileEntry{Name: "a.txt", Path: "src/a.txt", Kind: model.FileKindFile})

	next, cmd := m.pasteClipboard()
	m = next.(appModel)
	if cmd == nil {
		t.Fatal("paste must issue a request")
	}
	m = apply(t, m, mutationDoneMsg{op: "Pasted", refresh: viewFiles})
	if !m.clip.Active() {
		t.Fatal("a copied entry must survive the paste")
	}
}

func TestNotFoundMutationTriggersResync(t *testing.T) {
	m := testModel(t)
	m.view = viewHooks
	m = apply(t, m, mutationDoneMsg{refresh: viewHooks, err: &api.Error{
		Status: http.StatusNotFound, Detail: "hook not found",
	}})
	if !m.hooks.Loading() {
		t.Fatal("a 404 completion must refetch the collection")
	}
	if m.toast.level != toastError {
		t.Fatal("expected error toast")
	}

	n := testModel(t)
	n.view = viewHooks
	n = apply(t, n, mutationDoneMsg{refresh: viewHooks, err: errors.New("boom")})
	if n.hooks.Loading() {
		t.Fatal("other errors must not trigger a refetch")
	}
}

func TestFilesListingDerivesBreadcrumbsWhenOmitted(t *testing.T) {
	m := testModel(t)
	m.view = viewFiles
	seq := m.files.Begin(listsync.Scope{ProjectID: "p1", Path: "src/app"})
	m = apply(t, m, filesLoadedMsg{seq: seq, listing: model.FileListing{Path: "src/app"}})

	want := []string{"src", "src/app"}
	if len(m.breadcrumbs) != len(want) {
		t.Fatalf("breadcrumbs = %v, want %v", m.breadcrumbs, want)
	}
	for i := range want {
		if m.breadcrumbs[i] != want[i] {
			t.Fatalf("breadcrumbs = %v, want %v", m.breadcrumbs, want)
		}
	}
}

func TestActivityViewShowsLocalHistory(t *testing.T) {
	m := testModel(t)
	h, err := store.OpenHistory()
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	if err := h.Append(context.Background(), store.HistoryEntry{
		ProjectID: "p1", Operation: "enable", Resource: "hook", Target: "h1", OK: true,
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	m.view = viewActivity
	msg, ok := m.loadActivity()().(activityLoadedMsg)
	if !ok {
		t.Fatal("loadActivity must produce an activityLoadedMsg")
	}
	m = apply(t, m, msg)

	if len(m.list.Items()) != 1 {
		t.Fatalf("activity list has %d items", len(m.list.Items()))
	}
	r := m.list.Items()[0].(activityRow)
	if r.Operation != "enable" || r.Target != "h1" || !r.OK {
		t.Fatalf("activity row = %+v", r.HistoryEntry)
	}
}

func TestActivityViewOpensWithoutProject(t *testing.T) {
	t.Setenv("CLAUDETASK_CONFIG_DIR", t.TempDir())
	m := newAppModel(Options{}, &store.TUIState{Version: 1})
	m.width = 80
	m.height = 24

	next, _ := m.switchView(viewActivity)
	out := next.(appModel)
	if out.view != viewActivity {
		t.Fatalf("view = %v, activity needs no project", out.view)
	}
}

func TestNextLogLevelCycles(t *testing.T) {
	level := ""
	seen := []string{}
	for i := 0; i < 5; i++ {
		level = nextLogLevel(level)
		seen = append(seen, level)
	}
	want := []string{"debug", "info", "warn", "error", ""}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle %d = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestViewStringRoundTrip(t *testing.T) {
	for _, v := range viewOrder {
		if viewFromString(viewToString(v)) != v {
			t.Fatalf("round trip failed for %v", v)
		}
	}
	if viewFromString("nonsense") != viewProjects {
		t.Fatal("unknown view name must default to projects")
	}
}
