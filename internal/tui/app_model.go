package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"claudetask-cli/internal/api"
	"claudetask-cli/internal/editbuf"
	"claudetask-cli/internal/listsync"
	"claudetask-cli/internal/model"
	"claudetask-cli/internal/store"
)

const logPageSize = 100

type appModel struct {
	client *api.Client

	width  int
	height int

	view  view
	modal modalKind

	projectID   string
	projectName string

	// One controller per collection. The list widget is rebuilt from the
	// active controller after every applied load and filter change.
	projects listsync.Controller[model.Project]
	files    listsync.Controller[model.FileEntry]
	hooks    listsync.Controller[model.Hook]
	skills   listsync.Controller[model.Skill]
	mcp      listsync.Controller[model.MCPConfig]
	logs     listsync.Controller[model.LogEntry]
	sessions listsync.Controller[model.Session]
	activity listsync.Controller[activityRow]

	list   list.Model
	bucket listsync.Bucket

	// One mutation at a time; action keys are ignored while this is set.
	mutating bool

	filesPath   string
	breadcrumbs []string
	clip        fileClipboard

	logLevel       string
	logOffset      int
	logTotal       int
	logAutoRefresh bool
	logTickArmed   bool
	logInterval    time.Duration

	input      textinput.Model
	inputFor   inputTarget
	renameFrom string

	editor      textarea.Model
	buf         editbuf.Buffer
	editorFor   editTarget
	editorSkill model.Skill
	editorMCP   model.MCPConfig

	detailSkill model.Skill

	confirmFocus       confirmModalFocus
	pendingDelete      deleteTarget
	pendingDeleteID    string
	pendingDeleteLabel string

	toast    toast
	toastSeq int
}

func newAppModel(opts Options, st *store.TUIState) appModel {
	input := textinput.New()
	input.CharLimit = 256

	editor := textarea.New()
	editor.ShowLineNumbers = true

	delegate := newRowDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Filter = substringFilter
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	interval := defaultLogRefresh
	if opts.LogRefreshSeconds > 0 {
		interval = time.Duration(opts.LogRefreshSeconds) * time.Second
	}

	m := appModel{
		client:      opts.Client,
		view:        viewProjects,
		projectID:   opts.ProjectID,
		list:        l,
		bucket:      listsync.BucketAll,
		input:       input,
		editor:      editor,
		logInterval: interval,
	}

	// Restore the last screen, best effort. The project from flags/config
	// wins over the remembered one.
	if st != nil {
		if m.projectID == "" {
			m.projectID = st.SelectedProjectID
		}
		m.filesPath = st.FilesPath
		m.logAutoRefresh = st.LogAutoRefresh
		if v := viewFromString(st.View); v != viewProjects && (m.projectID != "" || v == viewActivity) {
			m.view = v
		}
	}

	return m
}

// Init defers the first loads to an initMsg so the controllers' sequence
// bookkeeping lands in the model bubbletea keeps, not in Init's copy.
func (m appModel) Init() tea.Cmd {
	return func() tea.Msg { return initMsg{} }
}

// saveState persists the small restore-on-relaunch state. Best effort.
func (m *appModel) saveState() {
	_ = store.SaveTUIState(&store.TUIState{
		Version:           1,
		View:              viewToString(m.view),
		SelectedProjectID: m.projectID,
		FilesPath:         m.filesPath,
		LogAutoRefresh:    m.logAutoRefresh,
	})
}

// syncList rebuilds the visible list from the active controller, applying the
// bucket filter. The text query is handled by the list widget's own filter.
func (m *appModel) syncList() {
	var items []list.Item
	switch m.view {
	case viewProjects:
		for _, p := range m.projects.Items() {
			items = append(items, projectRow{p})
		}
	case viewFiles:
		for _, e := range m.files.Items() {
			items = append(items, fileRow{
				FileEntry:  e,
				cutPending: m.clip.mode == clipCut && m.clip.entry.Path == e.Path,
			})
		}
	case viewHooks:
		for _, h := range listsync.InBucket(m.hooks.Items(), m.bucket) {
			items = append(items, hookRow{h})
		}
	case viewSkills:
		for _, s := range listsync.InBucket(m.skills.Items(), m.bucket) {
			items = append(items, skillRow{s})
		}
	case viewMCP:
		for _, c := range listsync.InBucket(m.mcp.Items(), m.bucket) {
			items = append(items, mcpRow{c})
		}
	case viewLogs:
		for _, e := range m.logs.Items() {
			items = append(items, logRow{e})
		}
	case viewSessions:
		for _, s := range m.sessions.Items() {
			items = append(items, sessionRow{s})
		}
	case viewActivity:
		for _, a := range m.activity.Items() {
			items = append(items, a)
		}
	}
	m.list.SetItems(items)
	if m.list.Index() >= len(items) {
		m.list.Select(0)
	}
}

// activeErr returns the load error of the active view's controller.
func (m *appModel) activeErr() error {
	switch m.view {
	case viewProjects:
		return m.projects.Err()
	case viewFiles:
		return m.files.Err()
	case viewHooks:
		return m.hooks.Err()
	case viewSkills:
		return m.skills.Err()
	case viewMCP:
		return m.mcp.Err()
	case viewLogs:
		return m.logs.Err()
	case viewSessions:
		return m.sessions.Err()
	case viewActivity:
		return m.activity.Err()
	}
	return nil
}

func (m *appModel) activeLoading() bool {
	switch m.view {
	case viewProjects:
		return m.projects.Loading()
	case viewFiles:
		return m.files.Loading()
	case viewHooks:
		return m.hooks.Loading()
	case viewSkills:
		return m.skills.Loading()
	case viewMCP:
		return m.mcp.Loading()
	case viewLogs:
		return m.logs.Loading()
	case viewSessions:
		return m.sessions.Loading()
	case viewActivity:
		return m.activity.Loading()
	}
	return false
}

// bucketViews have the provenance/favorite/enabled filter.
func bucketView(v view) bool {
	return v == viewHooks || v == viewSkills || v == viewMCP
}

func (m *appModel) cycleBucket() {
	order := listsync.Buckets()
	for i, b := range order {
		if b == m.bucket {
			m.bucket = order[(i+1)%len(order)]
			m.syncList()
			return
		}
	}
	m.bucket = listsync.BucketAll
	m.syncList()
}

// selectedFileEntry returns the file row under the cursor.
func (m *appModel) selectedFileEntry() (model.FileEntry, bool) {
	r, ok := m.list.SelectedItem().(fileRow)
	if !ok {
		return model.FileEntry{}, false
	}
	return r.FileEntry, true
}
