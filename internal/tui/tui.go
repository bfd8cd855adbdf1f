// Package tui is the interactive console: one screen per resource collection
// (projects, files, hooks, skills, MCP configs, logs, sessions), each backed
// by a listsync controller. Every mutation is followed by a full refetch of
// the affected collection; the TUI never patches a list locally.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/store"
)

// Options configures one TUI session.
type Options struct {
	Client    *api.Client
	ProjectID string

	// LogRefreshSeconds overrides the log viewer auto-refresh interval
	// (0 means the default).
	LogRefreshSeconds int
}

const defaultLogRefresh = 5 * time.Second

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()

	st, err := store.LoadTUIState()
	if err != nil {
		st = &store.TUIState{Version: 1}
	}

	m := newAppModel(opts, st)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
