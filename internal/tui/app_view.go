package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"claudetask-cli/internal/editbuf"
)

const chromeLines = 3 // header + help + toast strip

func listHeight(screenH int) int {
	h := screenH - chromeLines
	if h < 3 {
		h = 3
	}
	return h
}

func editorHeight(screenH int) int {
	h := screenH - 10
	if h < 5 {
		h = 5
	}
	if h > 40 {
		h = 40
	}
	return h
}

func (m appModel) View() string {
	if m.width == 0 {
		return "loading…"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		normalizePane(m.list.View(), m.width, listHeight(m.height)),
		m.renderFooter(),
	)

	switch m.modal {
	case modalInput:
		return overlayCentered(m.width, m.height, m.renderInputModal())
	case modalEditor:
		return overlayCentered(m.width, m.height, m.renderEditorModal())
	case modalConfirmDelete:
		return overlayCentered(m.width, m.height, renderConfirmModal(
			m.width,
			"Delete",
			fmt.Sprintf("Delete %q? This cannot be undone.", m.pendingDeleteLabel),
			"Delete", "Cancel", m.confirmFocus))
	case modalConfirmDiscard:
		return overlayCentered(m.width, m.height, renderConfirmModal(
			m.width,
			"Unsaved changes",
			fmt.Sprintf("Discard unsaved changes to %q?", m.buf.Path()),
			"Discard", "Keep editing", m.confirmFocus))
	case modalDetail:
		return overlayCentered(m.width, m.height, m.renderSkillDetail())
	}

	return body
}

func (m appModel) renderHeader() string {
	var tabs []string
	for i, v := range viewOrder {
		label := fmt.Sprintf("%d %s", i+1, viewTitle(v))
		st := styleMuted()
		if v == m.view {
			st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		tabs = append(tabs, st.Render(label))
	}
	left := strings.Join(tabs, "  ")

	right := ""
	if m.projectName != "" {
		right = styleMuted().Render("project: ") +
			lipgloss.NewStyle().Bold(true).Render(m.projectName)
	} else if m.projectID != "" {
		right = styleMuted().Render("project: " + m.projectID)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + left + strings.Repeat(" ", gap) + right
}

func (m appModel) renderFooter() string {
	help := m.helpLine()
	status := m.statusLine()

	toastLine := m.toast.render(m.width)
	if toastLine == "" {
		toastLine = status
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		fitLine(toastLine, m.width),
		styleMuted().Render(fitLine(" "+help, m.width)),
	)
}

func (m appModel) statusLine() string {
	var parts []string
	if m.activeLoading() {
		parts = append(parts, "loading…")
	}
	if err := m.activeErr(); err != nil {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorError).Render(err.Error()))
	}
	switch m.view {
	case viewFiles:
		crumb := "/"
		if len(m.breadcrumbs) > 0 {
			crumb = "/" + strings.Join(splitLast(m.breadcrumbs), " / ")
		}
		parts = append(parts, crumb)
		if m.clip.Active() {
			verb := "copied"
			if m.clip.mode == clipCut {
				verb = "cut"
			}
			parts = append(parts, fmt.Sprintf("clipboard: %s %s", verb, m.clip.entry.Name))
		}
	case viewLogs:
		level := m.logLevel
		if level == "" {
			level = "all"
		}
		auto := "off"
		if m.logAutoRefresh {
			auto = "on"
		}
		parts = append(parts, fmt.Sprintf("level: %s · offset %d/%d · auto-refresh %s",
			level, m.logOffset, m.logTotal, auto))
	}
	if bucketView(m.view) {
		parts = append(parts, "bucket: "+string(m.bucket))
	}
	return " " + strings.Join(parts, "   ")
}

// splitLast returns the final path segment of each breadcrumb.
func splitLast(crumbs []string) []string {
	out := make([]string, len(crumbs))
	for i, c := range crumbs {
		if j := strings.LastIndex(c, "/"); j >= 0 {
			c = c[j+1:]
		}
		out[i] = c
	}
	return out
}

func (m appModel) helpLine() string {
	common := "tab: view   /: filter   r: reload   q: quit"
	switch m.view {
	case viewProjects:
		return "enter: open   n: new   d: delete   " + common
	case viewFiles:
		return "enter: open   n/N: new file/dir   R: rename   y/x/p: copy/cut/paste   d: delete   " + common
	case viewHooks:
		return "t: enable/disable   f: favorite   b: bucket   n: new   d: delete   " + common
	case viewSkills:
		return "enter: view   e: edit   t: enable/disable   f: favorite   b: bucket   n: new   d: delete   " + common
	case viewMCP:
		return "enter: edit   t: enable/disable   f: favorite   b: bucket   n: new   d: delete   " + common
	case viewLogs:
		return "a: auto-refresh   L: level   [/]: page   " + common
	case viewSessions:
		return "d: delete   " + common
	}
	return common
}

func (m appModel) renderInputModal() string {
	bodyW := modalBodyWidth(m.width)
	title := inputModalTitle(m.inputFor)
	content := strings.Join([]string{
		renderInputLine(bodyW, m.input.View()),
		"",
		styleMuted().Width(bodyW).Render("enter: confirm   esc: cancel"),
	}, "\n")
	return renderModalBox(m.width, title, content)
}

func inputModalTitle(t inputTarget) string {
	switch t {
	case inputNewProject:
		return "New project"
	case inputNewFile:
		return "New file"
	case inputNewDirectory:
		return "New directory"
	case inputRenameEntry:
		return "Rename"
	case inputNewHook:
		return "New hook"
	case inputNewSkill:
		return "New skill"
	case inputNewMCP:
		return "New MCP configuration"
	}
	return ""
}

func (m appModel) renderEditorModal() string {
	bodyW := modalBodyWidth(m.width)

	title := m.buf.Path()
	switch m.buf.State() {
	case editbuf.Dirty:
		title += " [+]"
	case editbuf.Saving:
		title += " [saving…]"
	}

	help := "ctrl+s: save   esc: close"
	if m.buf.State() == editbuf.Saving {
		help = "saving…"
	}

	content := strings.Join([]string{
		m.editor.View(),
		"",
		styleMuted().Width(bodyW).Render(help),
	}, "\n")
	return renderModalBox(m.width, title, content)
}

func (m appModel) renderSkillDetail() string {
	bodyW := modalBodyWidth(m.width)

	meta := provenanceTag(m.detailSkill.Provenance)
	if m.detailSkill.Category != "" {
		meta += " · " + m.detailSkill.Category
	}
	meta += " · " + flagGlyphs(m.detailSkill.Flags())

	body := renderMarkdown(m.detailSkill.Content, bodyW)
	if body == "" {
		body = styleMuted().Render("(no content)")
	}
	// Bound the detail height; long bodies are cut rather than scrolled.
	maxLines := m.height - 8
	if maxLines < 5 {
		maxLines = 5
	}
	lines := strings.Split(body, "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], styleMuted().Render("…"))
		body = strings.Join(lines, "\n")
	}

	content := strings.Join([]string{
		styleMuted().Render(meta),
		"",
		body,
		"",
		styleMuted().Width(bodyW).Render("esc: close"),
	}, "\n")
	return renderModalBox(m.width, m.detailSkill.Name, content)
}
