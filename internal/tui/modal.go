package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func modalWidth(screenW int) int {
	w := screenW - 8
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

func modalBodyWidth(screenW int) int {
	return modalWidth(screenW) - 4
}

// renderModalBox draws a titled box with a header strip and padded body.
// No borders: some terminals show background artifacts when nesting bordered
// components inside a modal with a background color.
func renderModalBox(screenW int, title, content string) string {
	w := modalWidth(screenW)
	bodyW := w - 4

	header := lipgloss.NewStyle().
		Width(w).
		Padding(0, 2).
		Background(colorControlBg).
		Foreground(colorSurfaceFg).
		Bold(true).
		Render(fitLine(title, bodyW))

	body := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Background(colorSurfaceBg).
		Foreground(colorSurfaceFg).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// overlayCentered places the modal over the background view.
func overlayCentered(screenW, screenH int, modal string) string {
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, modal)
}

func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}

	// Text inputs should always render as a single visual line inside modals.
	// Newlines (or ANSI overflow) can trigger wrapping that looks like
	// "newline insertion" while typing.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Never exceed the modal body width; terminate ANSI styling to
		// prevent bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
