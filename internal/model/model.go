package model

import "time"

// Provenance classifies where a resource came from: shipped with ClaudeTask
// ("default") or created by the user ("custom").
type Provenance string

const (
	ProvenanceDefault Provenance = "default"
	ProvenanceCustom  Provenance = "custom"
)

type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Template  string    `json:"template,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FileKind string

const (
	FileKindFile      FileKind = "file"
	FileKindDirectory FileKind = "directory"
)

type FileEntry struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Kind       FileKind  `json:"kind"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

func (e FileEntry) IsDir() bool { return e.Kind == FileKindDirectory }

// FileListing is the browse envelope for one directory.
type FileListing struct {
	ProjectName string      `json:"projectName"`
	Path        string      `json:"path"`
	Breadcrumbs []string    `json:"breadcrumbs"`
	Entries     []FileEntry `json:"entries"`
}

// Hook is an event hook registered with the agent (e.g. pre-commit, on-save).
type Hook struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	EventType   string     `json:"eventType,omitempty"`
	Command     string     `json:"command,omitempty"`
	Provenance  Provenance `json:"provenance"`
	Enabled     bool       `json:"enabled"`
	Favorite    bool       `json:"favorite"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	// Content is the skill body in markdown.
	Content    string     `json:"content,omitempty"`
	Provenance Provenance `json:"provenance"`
	Enabled    bool       `json:"enabled"`
	Favorite   bool       `json:"favorite"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// MCPConfig is one Model Context Protocol server configuration.
// ConfigJSON is the raw config body as entered by the user; the client
// validates it before sending (lenient JSONC accepted, stored standardized).
type MCPConfig struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	ConfigJSON  string     `json:"configJson"`
	Provenance  Provenance `json:"provenance"`
	Enabled     bool       `json:"enabled"`
	Favorite    bool       `json:"favorite"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Source    string    `json:"source,omitempty"`
	Message   string    `json:"message"`
	SessionID string    `json:"sessionId,omitempty"`
}

// LogPage is one page of log entries plus pagination metadata.
type LogPage struct {
	Items  []LogEntry `json:"items"`
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
}

type Session struct {
	ID         string     `json:"id"`
	Title      string     `json:"title,omitempty"`
	Status     string     `json:"status"`
	Model      string     `json:"model,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	TurnCount  int        `json:"turnCount"`
	TokensUsed int64      `json:"tokensUsed"`
}

// Key is the composite identity used when unioning provenance buckets: the
// same id may legitimately appear once per provenance.
type Key struct {
	ID         string
	Provenance Provenance
}

// ListFlags exposes the toggle state a list view filters on.
type ListFlags struct {
	Enabled  bool
	Favorite bool
}

func (h Hook) ItemKey() Key { return Key{ID: h.ID, Provenance: h.Provenance} }
func (h Hook) SearchText() []string { return []string{h.Name, h.Description, h.Category} }
func (h Hook) Flags() ListFlags { return ListFlags{Enabled: h.Enabled, Favorite: h.Favorite} }

func (s Skill) ItemKey() Key { return Key{ID: s.ID, Provenance: s.Provenance} }
func (s Skill) SearchText() []string { return []string{s.Name, s.Description, s.Category} }
func (s Skill) Flags() ListFlags { return ListFlags{Enabled: s.Enabled, Favorite: s.Favorite} }

func (c MCPConfig) ItemKey() Key { return Key{ID: c.ID, Provenance: c.Provenance} }
func (c MCPConfig) SearchText() []string { return []string{c.Name, c.Description, c.Category} }
func (c MCPConfig) Flags() ListFlags { return ListFlags{Enabled: c.Enabled, Favorite: c.Favorite} }

func (e FileEntry) ItemKey() Key { return Key{ID: e.Path} }
func (e FileEntry) SearchText() []string { return []string{e.Name} }
func (e FileEntry) Flags() ListFlags { return ListFlags{} }

func (l LogEntry) ItemKey() Key { return Key{ID: l.ID} }
func (l LogEntry) SearchText() []string { return []string{l.Message, l.Source, l.Level} }
func (l LogEntry) Flags() ListFlags { return ListFlags{} }

func (s Session) ItemKey() Key { return Key{ID: s.ID} }
func (s Session) SearchText() []string { return []string{s.Title, s.Status, s.Model} }
func (s Session) Flags() ListFlags { return ListFlags{} }

func (p Project) ItemKey() Key { return Key{ID: p.ID} }
func (p Project) SearchText() []string { return []string{p.Name, p.Path} }
func (p Project) Flags() ListFlags { return ListFlags{} }
