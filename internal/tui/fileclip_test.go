package tui

import (
	"testing"

	"claudetask-cli/internal/model"
)

func entry(path string, dir bool) model.FileEntry {
	kind := model.FileKindFile
	if dir {
		kind = model.FileKindDirectory
	}
	name := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			name = path[i+1:]
			break
		}
	}
	return model.FileEntry{Name: name, Path: path, Kind: kind}
}

func TestPasteCopyIntoSameDirBumpsName(t *testing.T) {
	var c fileClipboard
	c.Copy(entry("docs/a.txt", false))

	dest, ok := c.PasteDest("docs", []model.FileEntry{entry("docs/a.txt", false)})
	if !ok {
		t.Fatal("paste should be possible")
	}
	if dest != "docs/a (1).txt" {
		t.Fatalf("dest = %q", dest)
	}
}

func TestPasteCopySkipsTakenSuffixes(t *testing.T) {
	var c fileClipboard
	c.Copy(entry("src/a.txt", false))

	dest, ok := c.PasteDest("docs", []model.FileEntry{
		entry("docs/a.txt", false),
		entry("docs/a (1).txt", false),
	})
	if !ok || dest != "docs/a (2).txt" {
		t.Fatalf("dest = %q ok = %v", dest, ok)
	}
}

func TestPasteDirectorySuffixAfterName(t *testing.T) {
	var c fileClipboard
	c.Copy(entry("docs", true))

	dest, ok := c.PasteDest("", []model.FileEntry{entry("docs", true)})
	if !ok || dest != "docs (1)" {
		t.Fatalf("dest = %q ok = %v", dest, ok)
	}
}

func TestPasteCutIntoOwnDirIsNoop(t *testing.T) {
	var c fileClipboard
	c.Cut(entry("docs/a.txt", false))

	if _, ok := c.PasteDest("docs", []model.FileEntry{entry("docs/a.txt", false)}); ok {
		t.Fatal("cut pasted into its own directory must be a no-op")
	}
}

func TestPasteCutIntoOtherDirKeepsFreeName(t *testing.T) {
	var c fileClipboard
	c.Cut(entry("docs/a.txt", false))

	dest, ok := c.PasteDest("src", nil)
	if !ok || dest != "src/a.txt" {
		t.Fatalf("dest = %q ok = %v", dest, ok)
	}
}

func TestEmptyClipboardCannotPaste(t *testing.T) {
	var c fileClipboard
	if _, ok := c.PasteDest("docs", nil); ok {
		t.Fatal("empty clipboard pasted")
	}
	if c.Active() {
		t.Fatal("empty clipboard reports active")
	}
	c.Copy(entry("a", false))
	c.Clear()
	if c.Active() {
		t.Fatal("cleared clipboard reports active")
	}
}
