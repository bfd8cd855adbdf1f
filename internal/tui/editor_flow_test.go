package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"claudetask-cli/internal/editbuf"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEditorEscWhenCleanCloses(t *testing.T) {
	m := testModel(t)
	m.openEditor(editFile, "notes.md", "hello")

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal != modalNone {
		t.Fatalf("modal = %v", m.modal)
	}
	if m.buf.IsOpen() {
		t.Fatal("buffer still open after close")
	}
}

func TestEditorEscWhenDirtyAsksToDiscard(t *testing.T) {
	m := testModel(t)
	m.openEditor(editFile, "notes.md", "hello")
	m = apply(t, m, keyRunes("!"))
	if !m.buf.Dirty() {
		t.Fatal("edit did not dirty the buffer")
	}

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal != modalConfirmDiscard {
		t.Fatalf("modal = %v, want discard confirm", m.modal)
	}

	// Declining returns to the editor with content intact.
	m = apply(t, m, keyRunes("n"))
	if m.modal != modalEditor {
		t.Fatalf("modal = %v, want editor", m.modal)
	}
	if !m.buf.Dirty() {
		t.Fatal("declining discard lost the edit")
	}

	// Accepting discards.
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = apply(t, m, keyRunes("y"))
	if m.modal != modalNone || m.buf.IsOpen() {
		t.Fatal("discard did not close the editor")
	}
}

func TestSaveFailureKeepsContentAndDirty(t *testing.T) {
	m := testModel(t)
	m.openEditor(editFile, "notes.md", "hello")
	m = apply(t, m, keyRunes("!"))
	edited := m.buf.Current()

	if err := m.buf.BeginSave(); err != nil {
		t.Fatalf("BeginSave: %v", err)
	}
	m = apply(t, m, saveDoneMsg{err: errors.New("server error (500): disk full")})

	if m.buf.State() != editbuf.Dirty {
		t.Fatalf("state = %v, want dirty", m.buf.State())
	}
	if m.buf.Current() != edited {
		t.Fatal("failed save lost the edited content")
	}
	if m.toast.level != toastError {
		t.Fatal("expected persistent error toast")
	}
}

func TestSaveSuccessPromotesOriginal(t *testing.T) {
	m := testModel(t)
	m.openEditor(editFile, "notes.md", "hello")
	m = apply(t, m, keyRunes("!"))

	if err := m.buf.BeginSave(); err != nil {
		t.Fatalf("BeginSave: %v", err)
	}
	m = apply(t, m, saveDoneMsg{})

	if m.buf.State() != editbuf.Clean {
		t.Fatalf("state = %v, want clean", m.buf.State())
	}
	if m.toast.level != toastSuccess {
		t.Fatal("expected success toast")
	}
}

func TestEditsIgnoredWhileSaving(t *testing.T) {
	m := testModel(t)
	m.openEditor(editFile, "notes.md", "hello")
	m = apply(t, m, keyRunes("!"))
	inFlight := m.buf.Current()

	if err := m.buf.BeginSave(); err != nil {
		t.Fatalf("BeginSave: %v", err)
	}
	m = apply(t, m, keyRunes("x"))
	if m.buf.Current() != inFlight {
		t.Fatal("edit applied while save in flight")
	}

	// Esc is also inert while saving.
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal != modalEditor {
		t.Fatalf("modal = %v, editor must stay up while saving", m.modal)
	}
}

func TestErrorToastPersistsUntilKeypress(t *testing.T) {
	m := testModel(t)
	m.view = viewHooks
	cmd := m.showToast(toastError, "server error (500): boom")
	if cmd != nil {
		t.Fatal("error toasts must not auto-expire")
	}

	// An unrelated expiry seq does not clear it.
	m.expireToast(m.toastSeq + 100)
	if m.toast.level != toastError {
		t.Fatal("stray expiry cleared the error toast")
	}

	m = apply(t, m, keyRunes("j"))
	if m.toast.visible() {
		t.Fatal("keypress should dismiss the error toast")
	}
}

func TestSuccessToastExpiresBySeq(t *testing.T) {
	m := testModel(t)
	if cmd := m.showToast(toastSuccess, "Saved"); cmd == nil {
		t.Fatal("success toast needs an expiry command")
	}
	first := m.toastSeq
	m.showToast(toastSuccess, "Deleted")

	// The first toast's timer firing must not clear the newer toast.
	m.expireToast(first)
	if !m.toast.visible() || m.toast.text != "Deleted" {
		t.Fatalf("old timer cleared new toast: %+v", m.toast)
	}
	m.expireToast(m.toastSeq)
	if m.toast.visible() {
		t.Fatal("toast did not expire")
	}
}
