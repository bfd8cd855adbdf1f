package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type toastLevel int

const (
	toastNone toastLevel = iota
	toastSuccess
	toastError
)

const toastDuration = 3 * time.Second

// toast is the one-line feedback strip under the list. Success toasts expire
// on their own; error toasts stay until the next keypress so a failure during
// a background refresh is never missed.
type toast struct {
	level toastLevel
	text  string
	seq   int
}

func (t toast) visible() bool { return t.level != toastNone }

// showToast replaces the current toast. For successes it returns the expiry
// command; the seq guard keeps an old timer from clearing a newer toast.
func (m *appModel) showToast(level toastLevel, text string) tea.Cmd {
	m.toastSeq++
	m.toast = toast{level: level, text: text, seq: m.toastSeq}
	if level != toastSuccess {
		return nil
	}
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}

func (m *appModel) expireToast(seq int) {
	if m.toast.seq != seq {
		return
	}
	m.toast = toast{}
}

// dismissErrorToast clears a persistent error toast; success toasts are left
// to their timer.
func (m *appModel) dismissErrorToast() {
	if m.toast.level == toastError {
		m.toast = toast{}
	}
}

func (t toast) render(width int) string {
	if !t.visible() || width <= 0 {
		return ""
	}
	st := lipgloss.NewStyle().Padding(0, 1).Width(width)
	switch t.level {
	case toastSuccess:
		st = st.Foreground(colorSuccess)
	case toastError:
		st = st.Foreground(colorError).Bold(true)
	}
	return st.Render(t.text)
}
