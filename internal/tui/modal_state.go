package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/editbuf"
	"claudetask-cli/internal/pathutil"
)

func (m *appModel) openInput(target inputTarget, placeholder, value string) {
	m.modal = modalInput
	m.inputFor = target
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *appModel) closeInput() {
	m.modal = modalNone
	m.input.SetValue("")
	m.input.Blur()
	m.renameFrom = ""
}

func (m *appModel) openEditor(target editTarget, path, content string) {
	m.modal = modalEditor
	m.editorFor = target
	m.buf.Open(path, content)
	m.editor.SetValue(content)
	m.editor.Focus()
}

func (m *appModel) closeEditor() {
	m.modal = modalNone
	m.buf.Close()
	m.editor.SetValue("")
	m.editor.Blur()
}

func (m *appModel) openConfirmDelete(target deleteTarget, id, label string) {
	m.modal = modalConfirmDelete
	m.pendingDelete = target
	m.pendingDeleteID = id
	m.pendingDeleteLabel = label
	m.confirmFocus = confirmFocusCancel
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalInput:
		return m.updateInputModal(msg)
	case modalEditor:
		return m.updateEditorModal(msg)
	case modalConfirmDelete:
		return m.updateConfirmDelete(msg)
	case modalConfirmDiscard:
		return m.updateConfirmDiscard(msg)
	case modalDetail:
		switch msg.String() {
		case "esc", "enter", "q":
			m.modal = modalNone
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateInputModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil
	case "enter":
		return m.submitInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) submitInput() (tea.Model, tea.Cmd) {
	name := m.input.Value()
	if name == "" {
		return m, nil
	}
	target := m.inputFor
	renameFrom := m.renameFrom
	m.closeInput()

	switch target {
	case inputNewProject:
		return m, m.mutate("Created "+name, "project", name, viewProjects, func(ctx context.Context) error {
			_, err := m.client.CreateProject(ctx, api.CreateProjectRequest{Name: name, Path: name})
			return err
		})

	case inputNewFile:
		path := pathutil.Join(m.filesPath, name)
		return m, m.mutate("Created "+name, "file", path, viewFiles, func(ctx context.Context) error {
			return m.client.CreateFile(ctx, m.projectID, path)
		})

	case inputNewDirectory:
		path := pathutil.Join(m.filesPath, name)
		return m, m.mutate("Created "+name, "file", path, viewFiles, func(ctx context.Context) error {
			return m.client.CreateDirectory(ctx, m.projectID, path)
		})

	case inputRenameEntry:
		newPath := pathutil.Join(pathutil.Parent(renameFrom), name)
		return m, m.mutate("Renamed to "+name, "file", renameFrom, viewFiles, func(ctx context.Context) error {
			return m.client.RenameEntry(ctx, m.projectID, renameFrom, newPath)
		})

	case inputNewHook:
		return m, m.mutate("Created "+name, "hook", name, viewHooks, func(ctx context.Context) error {
			_, err := m.client.CreateHook(ctx, m.projectID, api.CreateHookRequest{
				Name:      name,
				EventType: "manual",
			})
			return err
		})

	case inputNewSkill:
		return m, m.mutate("Created "+name, "skill", name, viewSkills, func(ctx context.Context) error {
			_, err := m.client.CreateSkill(ctx, m.projectID, api.CreateSkillRequest{Name: name})
			return err
		})

	case inputNewMCP:
		return m, m.mutate("Created "+name, "mcp", name, viewMCP, func(ctx context.Context) error {
			_, err := m.client.CreateMCPConfig(ctx, m.projectID, api.CreateMCPConfigRequest{
				Name:       name,
				ConfigJSON: "{}",
			})
			return err
		})
	}
	return m, nil
}

func (m appModel) updateEditorModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if m.buf.State() == editbuf.Saving {
			return m, nil
		}
		if !m.buf.Dirty() {
			return m, m.showToast(toastSuccess, "No changes")
		}
		if err := m.buf.BeginSave(); err != nil {
			return m, nil
		}
		return m, m.saveBuffer()

	case "esc":
		if m.buf.State() == editbuf.Saving {
			return m, nil
		}
		if m.buf.Dirty() {
			m.modal = modalConfirmDiscard
			m.confirmFocus = confirmFocusCancel
			return m, nil
		}
		m.closeEditor()
		return m, nil
	}

	// The editor control is frozen while a save is in flight; editbuf's own
	// guard would drop the edit anyway.
	if m.buf.State() == editbuf.Saving {
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.buf.SetCurrent(m.editor.Value())
	return m, cmd
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.modal = modalNone
		return m, nil
	case "tab", "left", "right":
		m.confirmFocus = 1 - m.confirmFocus
		return m, nil
	case "y":
		return m.performDelete()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.performDelete()
		}
		m.modal = modalNone
		return m, nil
	}
	return m, nil
}

// performDelete issues the delete for the confirmed target. Declining never
// reaches here; no request is sent in that case.
func (m appModel) performDelete() (tea.Model, tea.Cmd) {
	m.modal = modalNone
	id := m.pendingDeleteID
	label := m.pendingDeleteLabel

	switch m.pendingDelete {
	case deleteProject:
		return m, m.mutate("Deleted "+label, "project", id, viewProjects, func(ctx context.Context) error {
			return m.client.DeleteProject(ctx, id)
		})
	case deleteEntry:
		return m, m.mutate("Deleted "+label, "file", id, viewFiles, func(ctx context.Context) error {
			return m.client.DeleteEntry(ctx, m.projectID, id)
		})
	case deleteHook:
		return m, m.mutate("Deleted "+label, "hook", id, viewHooks, func(ctx context.Context) error {
			return m.client.DeleteHook(ctx, m.projectID, id)
		})
	case deleteSkill:
		return m, m.mutate("Deleted "+label, "skill", id, viewSkills, func(ctx context.Context) error {
			return m.client.DeleteSkill(ctx, m.projectID, id)
		})
	case deleteMCP:
		return m, m.mutate("Deleted "+label, "mcp", id, viewMCP, func(ctx context.Context) error {
			return m.client.DeleteMCPConfig(ctx, m.projectID, id)
		})
	case deleteSession:
		return m, m.mutate("Deleted "+label, "session", id, viewSessions, func(ctx context.Context) error {
			return m.client.DeleteSession(ctx, m.projectID, id)
		})
	}
	return m, nil
}

func (m appModel) updateConfirmDiscard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		// Back to editing; the buffer keeps its content.
		m.modal = modalEditor
		return m, nil
	case "tab", "left", "right":
		m.confirmFocus = 1 - m.confirmFocus
		return m, nil
	case "y":
		m.closeEditor()
		return m, nil
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			m.closeEditor()
			return m, nil
		}
		m.modal = modalEditor
		return m, nil
	}
	return m, nil
}
