package store

import (
	"context"
	"testing"
)

func TestHistoryAppendAndRecent(t *testing.T) {
	withTempConfigDir(t)
	h, err := OpenHistory()
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	ctx := context.Background()

	if err := h.Append(ctx, HistoryEntry{
		ProjectID: "p1", Operation: "enable", Resource: "hook", Target: "h1", OK: true,
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := h.Append(ctx, HistoryEntry{
		ProjectID: "p1", Operation: "delete", Resource: "file", Target: "src/a.ts",
		OK: false, Detail: "server error (500): boom",
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := h.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	// Newest first.
	if got[0].Operation != "delete" || got[0].OK {
		t.Fatalf("newest entry mismatch: %+v", got[0])
	}
	if got[1].Operation != "enable" || !got[1].OK {
		t.Fatalf("older entry mismatch: %+v", got[1])
	}
	if got[0].At.IsZero() {
		t.Fatalf("timestamp not persisted")
	}
}

func TestHistoryRecentLimit(t *testing.T) {
	withTempConfigDir(t)
	h, err := OpenHistory()
	if err != nil {
		t.Fatalf("OpenHistory: %v", err)
	}
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := h.Append(ctx, HistoryEntry{Operation: "create", Resource: "hook", Target: "h", OK: true}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	got, err := h.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("limit not applied: got %d", len(got))
	}
}
