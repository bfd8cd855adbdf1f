package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const historyFileName = "history.sqlite"

// HistoryEntry is one issued mutation, recorded locally after the request
// completes. This is a convenience log for `claudetask history` and the TUI
// activity panel — never a write queue; failed requests are recorded as
// failed and never replayed.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	At        time.Time `json:"at"`
	ProjectID string    `json:"projectId,omitempty"`
	Operation string    `json:"operation"` // create|update|delete|enable|disable|favorite|unfavorite|rename|copy|move|save
	Resource  string    `json:"resource"`  // file|hook|skill|mcp|project|session
	Target    string    `json:"target"`    // id or path
	OK        bool      `json:"ok"`
	Detail    string    `json:"detail,omitempty"` // error text for failures
}

// History is the local activity log.
type History struct {
	path string
}

// OpenHistory opens (creating if needed) the history db in the config dir.
func OpenHistory() (*History, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return &History{path: filepath.Join(dir, historyFileName)}, nil
}

// openDB opens a short-lived connection. The db is tiny and written once per
// user action, so open-per-call keeps locking simple.
func (h *History) openDB(ctx context.Context) (*sql.DB, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", h.path)
	if err != nil {
		return nil, err
	}
	const schema = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	at TEXT NOT NULL,
	project_id TEXT NOT NULL DEFAULT '',
	operation TEXT NOT NULL,
	resource TEXT NOT NULL,
	target TEXT NOT NULL,
	ok INTEGER NOT NULL,
	detail TEXT NOT NULL DEFAULT ''
);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Append records one completed mutation.
func (h *History) Append(ctx context.Context, e HistoryEntry) error {
	db, err := h.openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	at := e.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO history (at, project_id, operation, resource, target, ok, detail)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		at.Format(time.RFC3339Nano), e.ProjectID, e.Operation, e.Resource, e.Target, boolToInt(e.OK), e.Detail)
	return err
}

// Recent returns the newest entries, most recent first.
func (h *History) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	db, err := h.openDB(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, at, project_id, operation, resource, target, ok, detail
		 FROM history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var at string
		var ok int
		if err := rows.Scan(&e.ID, &at, &e.ProjectID, &e.Operation, &e.Resource, &e.Target, &ok, &e.Detail); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			e.At = t
		}
		e.OK = ok != 0
		out = append(out, e)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
