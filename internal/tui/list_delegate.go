package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"claudetask-cli/internal/listsync"
)

// substringFilter is the list widget's `/` filter: case-insensitive substring
// match over the row's filter value, the same rule listsync.Matches applies
// for the CLI. The widget's default matcher is fuzzy and would accept queries
// like "lgr" for "Logger".
func substringFilter(term string, targets []string) []list.Rank {
	q := strings.ToLower(strings.TrimSpace(term))
	ranks := make([]list.Rank, 0, len(targets))
	for i, t := range targets {
		if !listsync.Matches([]string{t}, term) {
			continue
		}
		var matched []int
		if start := strings.Index(strings.ToLower(t), q); start >= 0 {
			for j := start; j < start+len(q); j++ {
				matched = append(matched, j)
			}
		}
		ranks = append(ranks, list.Rank{Index: i, MatchedIndexes: matched})
	}
	return ranks
}

// rowDelegate renders each item as a title line plus a muted meta line.
// Rendering is ANSI-aware: rows are padded or cut to the list width so the
// selection background forms a clean block.
type rowDelegate struct {
	normal     lipgloss.Style
	normalMeta lipgloss.Style
	selected   lipgloss.Style
	selMeta    lipgloss.Style
}

func newRowDelegate() rowDelegate {
	return rowDelegate{
		normal:     lipgloss.NewStyle(),
		normalMeta: styleMuted(),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		selMeta: lipgloss.NewStyle().
			Foreground(colorMetaFg).
			Background(colorSelectedBg),
	}
}

func (d rowDelegate) Height() int  { return 2 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		return
	}

	titleStyle, metaStyle := d.normal, d.normalMeta
	if index == m.Index() {
		titleStyle, metaStyle = d.selected, d.selMeta
	}

	title := ""
	meta := ""
	if t, ok := item.(interface{ Title() string }); ok {
		title = t.Title()
	} else {
		title = fmt.Sprint(item)
	}
	if de, ok := item.(interface{ Description() string }); ok {
		meta = de.Description()
	}

	fmt.Fprint(w, titleStyle.Render(fitLine(title, contentW)))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, metaStyle.Render(fitLine("  "+meta, contentW)))
}

// fitLine pads or cuts a line to exactly width columns.
func fitLine(line string, width int) string {
	w := xansi.StringWidth(line)
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}
	if w > width {
		if width <= 1 {
			return xansi.Cut(line, 0, width)
		}
		return xansi.Cut(line, 0, width-1) + "…"
	}
	return line
}
