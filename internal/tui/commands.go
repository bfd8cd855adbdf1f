package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/listsync"
	"claudetask-cli/internal/store"
)

const requestTimeout = 15 * time.Second

func reqContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func (m *appModel) loadProjects() tea.Cmd {
	seq := m.projects.Begin(listsync.Scope{})
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		items, err := client.ListProjects(ctx)
		return projectsLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (m *appModel) loadFiles(path string) tea.Cmd {
	seq := m.files.Begin(listsync.Scope{ProjectID: m.projectID, Path: path})
	client, projectID := m.client, m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		listing, err := client.ListFiles(ctx, projectID, path)
		return filesLoadedMsg{seq: seq, listing: listing, err: err}
	}
}

func (m *appModel) loadHooks() tea.Cmd {
	seq := m.hooks.Begin(listsync.Scope{ProjectID: m.projectID})
	client, projectID := m.client, m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		buckets, err := client.ListHooks(ctx, projectID)
		return hooksLoadedMsg{
			seq:   seq,
			items: listsync.Union(buckets.AvailableDefault, buckets.Custom),
			err:   err,
		}
	}
}

func (m *appModel) loadSkills() tea.Cmd {
	seq := m.skills.Begin(listsync.Scope{ProjectID: m.projectID})
	client, projectID := m.client, m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		buckets, err := client.ListSkills(ctx, projectID)
		return skillsLoadedMsg{
			seq:   seq,
			items: listsync.Union(buckets.AvailableDefault, buckets.Custom),
			err:   err,
		}
	}
}

func (m *appModel) loadMCP() tea.Cmd {
	seq := m.mcp.Begin(listsync.Scope{ProjectID: m.projectID})
	client, projectID := m.client, m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		items, err := client.ListMCPConfigs(ctx, projectID)
		return mcpLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (m *appModel) loadLogs() tea.Cmd {
	seq := m.logs.Begin(listsync.Scope{
		ProjectID: m.projectID,
		Level:     m.logLevel,
		Offset:    m.logOffset,
		Limit:     logPageSize,
	})
	client, projectID := m.client, m.projectID
	query := api.LogQuery{Offset: m.logOffset, Limit: logPageSize, Level: m.logLevel}
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		page, err := client.ListLogs(ctx, projectID, query)
		return logsLoadedMsg{seq: seq, page: page, err: err}
	}
}

func (m *appModel) loadSessions() tea.Cmd {
	seq := m.sessions.Begin(listsync.Scope{ProjectID: m.projectID})
	client, projectID := m.client, m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		items, err := client.ListSessions(ctx, projectID)
		return sessionsLoadedMsg{seq: seq, items: items, err: err}
	}
}

const activityPageSize = 50

// loadActivity reads the local history db. Same sequencing discipline as the
// remote loads, even though the source is on disk.
func (m *appModel) loadActivity() tea.Cmd {
	seq := m.activity.Begin(listsync.Scope{Limit: activityPageSize})
	return func() tea.Msg {
		h, err := store.OpenHistory()
		if err != nil {
			return activityLoadedMsg{seq: seq, err: err}
		}
		ctx, cancel := reqContext()
		defer cancel()
		entries, err := h.Recent(ctx, activityPageSize)
		if err != nil {
			return activityLoadedMsg{seq: seq, err: err}
		}
		rows := make([]activityRow, len(entries))
		for i, e := range entries {
			rows[i] = activityRow{e}
		}
		return activityLoadedMsg{seq: seq, items: rows}
	}
}

// reloadView issues a fresh load for one view's collection.
func (m *appModel) reloadView(v view) tea.Cmd {
	switch v {
	case viewProjects:
		return m.loadProjects()
	case viewFiles:
		return m.loadFiles(m.filesPath)
	case viewHooks:
		return m.loadHooks()
	case viewSkills:
		return m.loadSkills()
	case viewMCP:
		return m.loadMCP()
	case viewLogs:
		return m.loadLogs()
	case viewSessions:
		return m.loadSessions()
	case viewActivity:
		return m.loadActivity()
	}
	return nil
}

func (m *appModel) openFile(path string) tea.Cmd {
	client, projectID := m.client, m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		content, err := client.ReadFile(ctx, projectID, path)
		return fileOpenedMsg{path: path, content: content, err: err}
	}
}

func (m *appModel) openSkill(id string) tea.Cmd {
	client, projectID := m.client, m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		s, err := client.GetSkill(ctx, projectID, id)
		return skillOpenedMsg{skill: s, err: err}
	}
}

// mutate wraps a write: run it, record it in the local activity log, then
// report completion so the update loop can toast and refetch. Returns nil
// while another mutation is outstanding, so a repeated keypress cannot put
// two writes for the same resource in flight.
func (m *appModel) mutate(op, resource, target string, refresh view, fn func(context.Context) error) tea.Cmd {
	if m.mutating {
		return nil
	}
	m.mutating = true
	projectID := m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		err := fn(ctx)
		appendHistory(ctx, projectID, op, resource, target, err)
		return mutationDoneMsg{op: op, refresh: refresh, err: err}
	}
}

// pasteEntry issues the copy or move behind a paste. The clipboard is not
// touched here: the update loop clears it on success, and only for a cut.
func (m *appModel) pasteEntry(src, dest string, cut bool) tea.Cmd {
	if m.mutating {
		return nil
	}
	m.mutating = true
	client, projectID := m.client, m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		op, verb := "Pasted", "copy"
		var err error
		if cut {
			op, verb = "Moved", "move"
			err = client.MoveEntry(ctx, projectID, src, dest)
		} else {
			err = client.CopyEntry(ctx, projectID, src, dest)
		}
		appendHistory(ctx, projectID, verb, "file", src, err)
		return mutationDoneMsg{op: op, refresh: viewFiles, clearClip: cut, err: err}
	}
}

// appendHistory is best effort; a history failure never surfaces in the UI.
func appendHistory(ctx context.Context, projectID, op, resource, target string, opErr error) {
	h, err := store.OpenHistory()
	if err != nil {
		return
	}
	e := store.HistoryEntry{
		ProjectID: projectID,
		Operation: op,
		Resource:  resource,
		Target:    target,
		OK:        opErr == nil,
	}
	if opErr != nil {
		e.Detail = opErr.Error()
	}
	_ = h.Append(ctx, e)
}

func (m *appModel) saveBuffer() tea.Cmd {
	client, projectID := m.client, m.projectID
	path := m.buf.Path()
	content := m.buf.Current()
	target := m.editorFor
	skill := m.editorSkill
	cfg := m.editorMCP
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		var err error
		switch target {
		case editFile:
			err = client.WriteFile(ctx, projectID, path, content)
			appendHistory(ctx, projectID, "save", "file", path, err)
		case editSkill:
			_, err = client.UpdateSkill(ctx, projectID, skill.ID, api.CreateSkillRequest{
				Name:        skill.Name,
				Description: skill.Description,
				Category:    skill.Category,
				Content:     content,
			})
			appendHistory(ctx, projectID, "save", "skill", skill.ID, err)
		case editMCP:
			_, err = client.UpdateMCPConfig(ctx, projectID, cfg.ID, api.CreateMCPConfigRequest{
				Name:        cfg.Name,
				Description: cfg.Description,
				Category:    cfg.Category,
				ConfigJSON:  content,
			})
			appendHistory(ctx, projectID, "save", "mcp", cfg.ID, err)
		}
		return saveDoneMsg{err: err}
	}
}

func logTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return logTickMsg{}
	})
}
