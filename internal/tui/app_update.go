package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/pathutil"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, listHeight(msg.Height))
		m.editor.SetWidth(modalBodyWidth(msg.Width))
		m.editor.SetHeight(editorHeight(msg.Height))
		return m, nil

	case initMsg:
		cmds := []tea.Cmd{m.reloadView(m.view)}
		if m.view != viewProjects {
			// The header shows the project name; fetch the list to resolve it.
			cmds = append(cmds, m.loadProjects())
		}
		if m.view == viewLogs && m.logAutoRefresh {
			m.logTickArmed = true
			cmds = append(cmds, logTick(m.logInterval))
		}
		return m, tea.Batch(cmds...)

	case projectsLoadedMsg:
		if m.projects.ApplyLoad(msg.seq, msg.items, msg.err) {
			m.resolveProjectName()
			if m.view == viewProjects {
				m.syncList()
			}
		}
		return m, nil

	case filesLoadedMsg:
		if m.files.ApplyLoad(msg.seq, msg.listing.Entries, msg.err) {
			if msg.err == nil {
				m.breadcrumbs = msg.listing.Breadcrumbs
				if len(m.breadcrumbs) == 0 {
					// Older backends omit breadcrumbs; derive them.
					m.breadcrumbs = pathutil.Breadcrumbs(msg.listing.Path)
				}
				if msg.listing.ProjectName != "" {
					m.projectName = msg.listing.ProjectName
				}
			}
			if m.view == viewFiles {
				m.syncList()
			}
		}
		return m, nil

	case hooksLoadedMsg:
		if m.hooks.ApplyLoad(msg.seq, msg.items, msg.err) && m.view == viewHooks {
			m.syncList()
		}
		return m, nil

	case skillsLoadedMsg:
		if m.skills.ApplyLoad(msg.seq, msg.items, msg.err) && m.view == viewSkills {
			m.syncList()
		}
		return m, nil

	case mcpLoadedMsg:
		if m.mcp.ApplyLoad(msg.seq, msg.items, msg.err) && m.view == viewMCP {
			m.syncList()
		}
		return m, nil

	case logsLoadedMsg:
		if m.logs.ApplyLoad(msg.seq, msg.page.Items, msg.err) {
			if msg.err == nil {
				m.logTotal = msg.page.Total
				m.logOffset = msg.page.Offset
			}
			if m.view == viewLogs {
				m.syncList()
			}
		}
		return m, nil

	case sessionsLoadedMsg:
		if m.sessions.ApplyLoad(msg.seq, msg.items, msg.err) && m.view == viewSessions {
			m.syncList()
		}
		return m, nil

	case activityLoadedMsg:
		if m.activity.ApplyLoad(msg.seq, msg.items, msg.err) && m.view == viewActivity {
			m.syncList()
		}
		return m, nil

	case fileOpenedMsg:
		if msg.err != nil {
			return m, m.showToast(toastError, msg.err.Error())
		}
		m.openEditor(editFile, msg.path, msg.content)
		return m, nil

	case skillOpenedMsg:
		if msg.err != nil {
			return m, m.showToast(toastError, msg.err.Error())
		}
		m.detailSkill = msg.skill
		m.modal = modalDetail
		return m, nil

	case skillEditMsg:
		m.editorSkill = msg.skill
		m.openEditor(editSkill, msg.skill.Name, msg.skill.Content)
		return m, nil

	case mutationDoneMsg:
		m.mutating = false
		if msg.err != nil {
			if api.IsNotFound(msg.err) {
				// The row vanished under us; resync so the list stops
				// offering it.
				return m, tea.Batch(m.showToast(toastError, msg.err.Error()), m.reloadView(msg.refresh))
			}
			return m, m.showToast(toastError, msg.err.Error())
		}
		if msg.clearClip {
			m.clip.Clear()
		}
		return m, tea.Batch(m.showToast(toastSuccess, msg.op), m.reloadView(msg.refresh))

	case saveDoneMsg:
		if msg.err != nil {
			m.buf.SaveFailed()
			return m, m.showToast(toastError, msg.err.Error())
		}
		m.buf.SaveSucceeded()
		refresh := viewFiles
		switch m.editorFor {
		case editSkill:
			refresh = viewSkills
		case editMCP:
			refresh = viewMCP
		}
		return m, tea.Batch(m.showToast(toastSuccess, "Saved"), m.reloadView(refresh))

	case logTickMsg:
		m.logTickArmed = false
		if m.view != viewLogs || !m.logAutoRefresh {
			return m, nil
		}
		m.logTickArmed = true
		if m.modal != modalNone {
			// Paused while a modal is up; keep the timer alive.
			return m, logTick(m.logInterval)
		}
		return m, tea.Batch(m.loadLogs(), logTick(m.logInterval))

	case toastExpireMsg:
		m.expireToast(msg.seq)
		return m, nil

	case tea.KeyMsg:
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *appModel) resolveProjectName() {
	for _, p := range m.projects.Items() {
		if p.ID == m.projectID {
			m.projectName = p.Name
			return
		}
	}
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list's fuzzy filter prompt is active, it owns the keyboard.
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	m.dismissErrorToast()

	switch msg.String() {
	case "ctrl+c", "q":
		m.saveState()
		return m, tea.Quit

	case "tab":
		return m.switchView(nextView(m.view, 1))
	case "shift+tab":
		return m.switchView(nextView(m.view, -1))
	case "1", "2", "3", "4", "5", "6", "7", "8":
		return m.switchView(viewOrder[int(msg.String()[0]-'1')])

	case "r":
		return m, m.reloadView(m.view)

	case "b":
		if bucketView(m.view) {
			m.cycleBucket()
			return m, nil
		}
	}

	switch m.view {
	case viewProjects:
		return m.updateProjectsKey(msg)
	case viewFiles:
		return m.updateFilesKey(msg)
	case viewHooks:
		return m.updateHooksKey(msg)
	case viewSkills:
		return m.updateSkillsKey(msg)
	case viewMCP:
		return m.updateMCPKey(msg)
	case viewLogs:
		return m.updateLogsKey(msg)
	case viewSessions:
		return m.updateSessionsKey(msg)
		// viewActivity has list navigation only.
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func nextView(v view, delta int) view {
	for i, vv := range viewOrder {
		if vv == v {
			n := (i + delta + len(viewOrder)) % len(viewOrder)
			return viewOrder[n]
		}
	}
	return viewProjects
}

func (m appModel) switchView(v view) (tea.Model, tea.Cmd) {
	// Activity is local history and works without a project.
	if v != viewProjects && v != viewActivity && m.projectID == "" {
		return m, m.showToast(toastError, "select a project first")
	}
	m.view = v
	m.list.ResetFilter()
	m.syncList()

	cmds := []tea.Cmd{m.reloadView(v)}
	if v == viewLogs && m.logAutoRefresh && !m.logTickArmed {
		m.logTickArmed = true
		cmds = append(cmds, logTick(m.logInterval))
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updateProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		r, ok := m.list.SelectedItem().(projectRow)
		if !ok {
			break
		}
		m.projectID = r.ID
		m.projectName = r.Name
		m.filesPath = ""
		m.clip.Clear()
		return m.switchView(viewFiles)

	case "n":
		m.openInput(inputNewProject, "Project name", "")
		return m, nil

	case "d":
		r, ok := m.list.SelectedItem().(projectRow)
		if !ok {
			break
		}
		m.openConfirmDelete(deleteProject, r.ID, r.Name)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateFilesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		e, ok := m.selectedFileEntry()
		if !ok {
			break
		}
		if e.IsDir() {
			m.filesPath = e.Path
			return m, m.loadFiles(e.Path)
		}
		return m, m.openFile(e.Path)

	case "backspace", "left", "h":
		if m.filesPath == "" {
			break
		}
		m.filesPath = pathutil.Parent(m.filesPath)
		return m, m.loadFiles(m.filesPath)

	case "n":
		m.openInput(inputNewFile, "File name", "")
		return m, nil
	case "N":
		m.openInput(inputNewDirectory, "Directory name", "")
		return m, nil

	case "R":
		e, ok := m.selectedFileEntry()
		if !ok {
			break
		}
		m.renameFrom = e.Path
		m.openInput(inputRenameEntry, "New name", e.Name)
		return m, nil

	case "d":
		e, ok := m.selectedFileEntry()
		if !ok {
			break
		}
		m.openConfirmDelete(deleteEntry, e.Path, e.Name)
		return m, nil

	case "y":
		e, ok := m.selectedFileEntry()
		if !ok {
			break
		}
		m.clip.Copy(e)
		m.syncList()
		return m, m.showToast(toastSuccess, "Copied "+e.Name)

	case "x":
		e, ok := m.selectedFileEntry()
		if !ok {
			break
		}
		m.clip.Cut(e)
		m.syncList()
		return m, m.showToast(toastSuccess, "Cut "+e.Name)

	case "p":
		return m.pasteClipboard()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) pasteClipboard() (tea.Model, tea.Cmd) {
	if !m.clip.Active() {
		return m, m.showToast(toastError, "clipboard is empty")
	}
	dest, ok := m.clip.PasteDest(m.filesPath, m.files.Items())
	if !ok {
		// Cut into its own directory is a no-op; the pending cut is consumed.
		m.clip.Clear()
		m.syncList()
		return m, nil
	}
	// A cut is cleared only after the move succeeds; a copy survives the
	// paste so it can be pasted again.
	return m, m.pasteEntry(m.clip.entry.Path, dest, m.clip.mode == clipCut)
}

func (m appModel) updateHooksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.openInput(inputNewHook, "Hook name", "")
		return m, nil

	case "d":
		r, ok := m.list.SelectedItem().(hookRow)
		if !ok {
			break
		}
		m.openConfirmDelete(deleteHook, r.ID, r.Name)
		return m, nil

	case "t":
		r, ok := m.list.SelectedItem().(hookRow)
		if !ok {
			break
		}
		id := r.ID
		if r.Enabled {
			return m, m.mutate("Disabled "+r.Name, "hook", id, viewHooks, func(ctx context.Context) error {
				return m.client.DisableHook(ctx, m.projectID, id)
			})
		}
		return m, m.mutate("Enabled "+r.Name, "hook", id, viewHooks, func(ctx context.Context) error {
			return m.client.EnableHook(ctx, m.projectID, id)
		})

	case "f":
		r, ok := m.list.SelectedItem().(hookRow)
		if !ok {
			break
		}
		id := r.ID
		if r.Favorite {
			return m, m.mutate("Unfavorited "+r.Name, "hook", id, viewHooks, func(ctx context.Context) error {
				return m.client.UnfavoriteHook(ctx, m.projectID, id)
			})
		}
		return m, m.mutate("Favorited "+r.Name, "hook", id, viewHooks, func(ctx context.Context) error {
			return m.client.FavoriteHook(ctx, m.projectID, id)
		})
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateSkillsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		r, ok := m.list.SelectedItem().(skillRow)
		if !ok {
			break
		}
		return m, m.openSkill(r.ID)

	case "e":
		r, ok := m.list.SelectedItem().(skillRow)
		if !ok {
			break
		}
		// The list payload omits content; fetch the full skill first.
		return m, m.openSkillForEdit(r.ID)

	case "n":
		m.openInput(inputNewSkill, "Skill name", "")
		return m, nil

	case "d":
		r, ok := m.list.SelectedItem().(skillRow)
		if !ok {
			break
		}
		m.openConfirmDelete(deleteSkill, r.ID, r.Name)
		return m, nil

	case "t":
		r, ok := m.list.SelectedItem().(skillRow)
		if !ok {
			break
		}
		id := r.ID
		if r.Enabled {
			return m, m.mutate("Disabled "+r.Name, "skill", id, viewSkills, func(ctx context.Context) error {
				return m.client.DisableSkill(ctx, m.projectID, id)
			})
		}
		return m, m.mutate("Enabled "+r.Name, "skill", id, viewSkills, func(ctx context.Context) error {
			return m.client.EnableSkill(ctx, m.projectID, id)
		})

	case "f":
		r, ok := m.list.SelectedItem().(skillRow)
		if !ok {
			break
		}
		id := r.ID
		if r.Favorite {
			return m, m.mutate("Unfavorited "+r.Name, "skill", id, viewSkills, func(ctx context.Context) error {
				return m.client.UnfavoriteSkill(ctx, m.projectID, id)
			})
		}
		return m, m.mutate("Favorited "+r.Name, "skill", id, viewSkills, func(ctx context.Context) error {
			return m.client.FavoriteSkill(ctx, m.projectID, id)
		})
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// openSkillForEdit fetches the full skill and reopens the editor with it.
func (m *appModel) openSkillForEdit(id string) tea.Cmd {
	client, projectID := m.client, m.projectID
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		s, err := client.GetSkill(ctx, projectID, id)
		if err != nil {
			return mutationDoneMsg{op: "", refresh: viewSkills, err: err}
		}
		return skillEditMsg{skill: s}
	}
}

func (m appModel) updateMCPKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "e":
		r, ok := m.list.SelectedItem().(mcpRow)
		if !ok {
			break
		}
		m.editorMCP = r.MCPConfig
		m.openEditor(editMCP, r.Name, r.ConfigJSON)
		return m, nil

	case "n":
		m.openInput(inputNewMCP, "Configuration name", "")
		return m, nil

	case "d":
		r, ok := m.list.SelectedItem().(mcpRow)
		if !ok {
			break
		}
		m.openConfirmDelete(deleteMCP, r.ID, r.Name)
		return m, nil

	case "t":
		r, ok := m.list.SelectedItem().(mcpRow)
		if !ok {
			break
		}
		id := r.ID
		if r.Enabled {
			return m, m.mutate("Disabled "+r.Name, "mcp", id, viewMCP, func(ctx context.Context) error {
				return m.client.DisableMCPConfig(ctx, m.projectID, id)
			})
		}
		return m, m.mutate("Enabled "+r.Name, "mcp", id, viewMCP, func(ctx context.Context) error {
			return m.client.EnableMCPConfig(ctx, m.projectID, id)
		})

	case "f":
		r, ok := m.list.SelectedItem().(mcpRow)
		if !ok {
			break
		}
		id := r.ID
		if r.Favorite {
			return m, m.mutate("Unfavorited "+r.Name, "mcp", id, viewMCP, func(ctx context.Context) error {
				return m.client.UnfavoriteMCPConfig(ctx, m.projectID, id)
			})
		}
		return m, m.mutate("Favorited "+r.Name, "mcp", id, viewMCP, func(ctx context.Context) error {
			return m.client.FavoriteMCPConfig(ctx, m.projectID, id)
		})
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.logAutoRefresh = !m.logAutoRefresh
		if m.logAutoRefresh {
			cmds := []tea.Cmd{m.loadLogs()}
			if !m.logTickArmed {
				m.logTickArmed = true
				cmds = append(cmds, logTick(m.logInterval))
			}
			return m, tea.Batch(cmds...)
		}
		return m, nil

	case "L":
		m.logLevel = nextLogLevel(m.logLevel)
		m.logOffset = 0
		return m, m.loadLogs()

	case "]":
		if m.logOffset+logPageSize < m.logTotal {
			m.logOffset += logPageSize
			return m, m.loadLogs()
		}
		return m, nil

	case "[":
		if m.logOffset > 0 {
			m.logOffset -= logPageSize
			if m.logOffset < 0 {
				m.logOffset = 0
			}
			return m, m.loadLogs()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func nextLogLevel(level string) string {
	order := []string{"", "debug", "info", "warn", "error"}
	for i, l := range order {
		if l == level {
			return order[(i+1)%len(order)]
		}
	}
	return ""
}

func (m appModel) updateSessionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d":
		r, ok := m.list.SelectedItem().(sessionRow)
		if !ok {
			break
		}
		m.openConfirmDelete(deleteSession, r.ID, r.Title())
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

