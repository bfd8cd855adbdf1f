// Package editbuf tracks unsaved edits to a single remote resource (a file's
// text content or a config body) between open and save.
package editbuf

import "errors"

// State is the buffer lifecycle: Clean (current == original), Dirty (edited),
// Saving (a save request is in flight).
type State int

const (
	Clean State = iota
	Dirty
	Saving
)

func (s State) String() string {
	switch s {
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	case Saving:
		return "saving"
	}
	return "unknown"
}

var ErrSaveInFlight = errors.New("save already in flight")

// Buffer holds the in-memory edit state for one opened resource.
// The zero value is an empty clean buffer with nothing open.
type Buffer struct {
	path     string
	original string
	current  string
	saving   bool
	open     bool
}

// Open loads a resource into the buffer, replacing whatever was there.
// Callers must check Dirty (and confirm with the user) before switching away
// from an edited buffer; Open itself does not guard.
func (b *Buffer) Open(path, content string) {
	b.path = path
	b.original = content
	b.current = content
	b.saving = false
	b.open = true
}

// Close discards the buffer and returns to "nothing selected".
func (b *Buffer) Close() {
	*b = Buffer{}
}

func (b *Buffer) IsOpen() bool { return b.open }
func (b *Buffer) Path() string { return b.path }
func (b *Buffer) Current() string { return b.current }
func (b *Buffer) Original() string { return b.original }

// SetCurrent applies an edit. Ignored while a save is in flight (the editor
// control is disabled then, but the guard keeps the state machine honest).
func (b *Buffer) SetCurrent(content string) {
	if !b.open || b.saving {
		return
	}
	b.current = content
}

// Dirty reports whether the buffer differs from the last-saved value.
// Editing back to the original makes the buffer clean again.
func (b *Buffer) Dirty() bool {
	return b.open && b.current != b.original
}

func (b *Buffer) State() State {
	switch {
	case b.saving:
		return Saving
	case b.Dirty():
		return Dirty
	default:
		return Clean
	}
}

// BeginSave transitions Dirty -> Saving. At most one save may be outstanding.
func (b *Buffer) BeginSave() error {
	if b.saving {
		return ErrSaveInFlight
	}
	if !b.open {
		return errors.New("no buffer open")
	}
	b.saving = true
	return nil
}

// SaveSucceeded completes a save: the current content becomes the new
// original and the buffer is clean.
func (b *Buffer) SaveSucceeded() {
	if !b.saving {
		return
	}
	b.original = b.current
	b.saving = false
}

// SaveFailed aborts a save. Content and dirty state are left untouched so the
// user can retry or keep editing.
func (b *Buffer) SaveFailed() {
	b.saving = false
}
