package tui

import (
	"claudetask-cli/internal/model"
)

type view int

const (
	viewProjects view = iota
	viewFiles
	viewHooks
	viewSkills
	viewMCP
	viewLogs
	viewSessions
	viewActivity
)

var viewOrder = []view{
	viewProjects, viewFiles, viewHooks, viewSkills, viewMCP, viewLogs, viewSessions, viewActivity,
}

func viewToString(v view) string {
	switch v {
	case viewProjects:
		return "projects"
	case viewFiles:
		return "files"
	case viewHooks:
		return "hooks"
	case viewSkills:
		return "skills"
	case viewMCP:
		return "mcp"
	case viewLogs:
		return "logs"
	case viewSessions:
		return "sessions"
	case viewActivity:
		return "activity"
	}
	return "projects"
}

func viewFromString(s string) view {
	for _, v := range viewOrder {
		if viewToString(v) == s {
			return v
		}
	}
	return viewProjects
}

func viewTitle(v view) string {
	switch v {
	case viewProjects:
		return "Projects"
	case viewFiles:
		return "Files"
	case viewHooks:
		return "Hooks"
	case viewSkills:
		return "Skills"
	case viewMCP:
		return "MCP"
	case viewLogs:
		return "Logs"
	case viewSessions:
		return "Sessions"
	case viewActivity:
		return "Activity"
	}
	return ""
}

type modalKind int

const (
	modalNone modalKind = iota
	modalInput
	modalEditor
	modalConfirmDelete
	modalConfirmDiscard
	modalDetail
)

// inputTarget says what the single-line input modal creates or renames.
type inputTarget int

const (
	inputNewProject inputTarget = iota
	inputNewFile
	inputNewDirectory
	inputRenameEntry
	inputNewHook
	inputNewSkill
	inputNewMCP
)

// editTarget says which resource the editor modal's buffer belongs to.
type editTarget int

const (
	editFile editTarget = iota
	editSkill
	editMCP
)

// deleteTarget says what the confirm modal deletes on accept.
type deleteTarget int

const (
	deleteProject deleteTarget = iota
	deleteEntry
	deleteHook
	deleteSkill
	deleteMCP
	deleteSession
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// Load completions. Each carries the sequence number handed out by the
// controller's Begin; stale completions are dropped by ApplyLoad.
type projectsLoadedMsg struct {
	seq   int
	items []model.Project
	err   error
}

type filesLoadedMsg struct {
	seq     int
	listing model.FileListing
	err     error
}

type hooksLoadedMsg struct {
	seq   int
	items []model.Hook
	err   error
}

type skillsLoadedMsg struct {
	seq   int
	items []model.Skill
	err   error
}

type mcpLoadedMsg struct {
	seq   int
	items []model.MCPConfig
	err   error
}

type logsLoadedMsg struct {
	seq  int
	page model.LogPage
	err  error
}

type sessionsLoadedMsg struct {
	seq   int
	items []model.Session
	err   error
}

type activityLoadedMsg struct {
	seq   int
	items []activityRow
	err   error
}

type fileOpenedMsg struct {
	path    string
	content string
	err     error
}

type skillOpenedMsg struct {
	skill model.Skill
	err   error
}

// skillEditMsg carries a fully fetched skill into the editor modal.
type skillEditMsg struct {
	skill model.Skill
}

// mutationDoneMsg completes any write. op is the toast label on success;
// refresh names the view whose collection must be refetched. clearClip marks
// a cut paste, whose clipboard entry is consumed only on success.
type mutationDoneMsg struct {
	op        string
	refresh   view
	clearClip bool
	err       error
}

type saveDoneMsg struct {
	err error
}

type initMsg struct{}

type logTickMsg struct{}

type toastExpireMsg struct {
	seq int
}
