package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"claudetask-cli/internal/model"
	"claudetask-cli/internal/store"
)

// Row glyphs. Kept plain ASCII-adjacent so narrow fonts line up.
const (
	glyphEnabled  = "●"
	glyphDisabled = "○"
	glyphFavorite = "★"
	glyphDir      = "▸"
	glyphFile     = " "
	glyphCut      = "✂"
)

func flagGlyphs(f model.ListFlags) string {
	g := glyphDisabled
	if f.Enabled {
		g = glyphEnabled
	}
	if f.Favorite {
		g += " " + glyphFavorite
	} else {
		g += "  "
	}
	return g
}

func provenanceTag(p model.Provenance) string {
	if p == model.ProvenanceCustom {
		return "custom"
	}
	return "default"
}

type projectRow struct{ model.Project }

func (r projectRow) Title() string       { return r.Name }
func (r projectRow) Description() string { return r.Project.Path }
func (r projectRow) FilterValue() string { return r.Name + " " + r.Project.Path }

type fileRow struct {
	model.FileEntry
	cutPending bool
}

func (r fileRow) Title() string {
	g := glyphFile
	if r.IsDir() {
		g = glyphDir
	}
	name := r.Name
	if r.cutPending {
		name = glyphCut + " " + name
	}
	return g + " " + name
}

func (r fileRow) Description() string {
	if r.IsDir() {
		return "directory"
	}
	return fmt.Sprintf("%s · %s", humanSize(r.Size), r.ModifiedAt.Format("2006-01-02 15:04"))
}

func (r fileRow) FilterValue() string { return r.Name }

type hookRow struct{ model.Hook }

func (r hookRow) Title() string {
	return flagGlyphs(r.Flags()) + " " + r.Name
}

func (r hookRow) Description() string {
	parts := []string{provenanceTag(r.Provenance)}
	if r.EventType != "" {
		parts = append(parts, r.EventType)
	}
	if r.Hook.Description != "" {
		parts = append(parts, r.Hook.Description)
	}
	return strings.Join(parts, " · ")
}

func (r hookRow) FilterValue() string { return strings.Join(r.SearchText(), " ") }

type skillRow struct{ model.Skill }

func (r skillRow) Title() string {
	return flagGlyphs(r.Flags()) + " " + r.Name
}

func (r skillRow) Description() string {
	parts := []string{provenanceTag(r.Provenance)}
	if r.Category != "" {
		parts = append(parts, r.Category)
	}
	if r.Skill.Description != "" {
		parts = append(parts, r.Skill.Description)
	}
	return strings.Join(parts, " · ")
}

func (r skillRow) FilterValue() string { return strings.Join(r.SearchText(), " ") }

type mcpRow struct{ model.MCPConfig }

func (r mcpRow) Title() string {
	return flagGlyphs(r.Flags()) + " " + r.Name
}

func (r mcpRow) Description() string {
	parts := []string{provenanceTag(r.Provenance)}
	if r.MCPConfig.Description != "" {
		parts = append(parts, r.MCPConfig.Description)
	}
	return strings.Join(parts, " · ")
}

func (r mcpRow) FilterValue() string { return strings.Join(r.SearchText(), " ") }

type logRow struct{ model.LogEntry }

func (r logRow) Title() string {
	return fmt.Sprintf("%s [%s] %s",
		r.Timestamp.Format("15:04:05"), strings.ToUpper(r.Level), r.Message)
}

func (r logRow) Description() string {
	parts := []string{}
	if r.Source != "" {
		parts = append(parts, r.Source)
	}
	if r.SessionID != "" {
		parts = append(parts, "session "+r.SessionID)
	}
	return strings.Join(parts, " · ")
}

func (r logRow) FilterValue() string { return strings.Join(r.SearchText(), " ") }

type sessionRow struct{ model.Session }

func (r sessionRow) Title() string {
	title := r.Session.Title
	if title == "" {
		title = r.ID
	}
	return title
}

func (r sessionRow) Description() string {
	parts := []string{r.Status}
	if r.Model != "" {
		parts = append(parts, r.Model)
	}
	parts = append(parts, fmt.Sprintf("%d turns", r.TurnCount))
	if r.TokensUsed > 0 {
		parts = append(parts, fmt.Sprintf("%d tokens", r.TokensUsed))
	}
	return strings.Join(parts, " · ")
}

func (r sessionRow) FilterValue() string { return strings.Join(r.SearchText(), " ") }

// activityRow is one entry of the local mutation history. Unlike the other
// rows it is backed by the on-disk history db, not the backend.
type activityRow struct{ store.HistoryEntry }

func (r activityRow) ItemKey() model.Key { return model.Key{ID: strconv.FormatInt(r.ID, 10)} }
func (r activityRow) SearchText() []string {
	return []string{r.Operation, r.Resource, r.Target, r.Detail}
}
func (r activityRow) Flags() model.ListFlags { return model.ListFlags{} }

func (r activityRow) Title() string {
	g := glyphEnabled
	if !r.OK {
		g = glyphDisabled
	}
	return fmt.Sprintf("%s %s · %s", g, r.Operation, r.Target)
}

func (r activityRow) Description() string {
	parts := []string{r.At.Local().Format("2006-01-02 15:04:05"), r.Resource}
	if r.Detail != "" {
		parts = append(parts, r.Detail)
	}
	return strings.Join(parts, " · ")
}

func (r activityRow) FilterValue() string { return strings.Join(r.SearchText(), " ") }

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

var _ = []list.Item{
	projectRow{}, fileRow{}, hookRow{}, skillRow{}, mcpRow{}, logRow{}, sessionRow{}, activityRow{},
}
