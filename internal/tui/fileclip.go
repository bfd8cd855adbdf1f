package tui

import (
	"claudetask-cli/internal/model"
	"claudetask-cli/internal/pathutil"
)

type clipMode int

const (
	clipNone clipMode = iota
	clipCopy
	clipCut
)

// fileClipboard holds at most one copied or cut entry from the file browser.
// Pasting resolves destination name collisions with " (n)" suffixes; a cut
// pasted into its own directory is a no-op.
type fileClipboard struct {
	mode  clipMode
	entry model.FileEntry
}

func (c *fileClipboard) Copy(e model.FileEntry) {
	c.mode = clipCopy
	c.entry = e
}

func (c *fileClipboard) Cut(e model.FileEntry) {
	c.mode = clipCut
	c.entry = e
}

func (c *fileClipboard) Clear() {
	*c = fileClipboard{}
}

func (c fileClipboard) Active() bool { return c.mode != clipNone }

// PasteDest computes the destination path for pasting into destDir, given the
// directory's current entries. ok is false when there is nothing to paste or
// the paste would be a no-op.
func (c fileClipboard) PasteDest(destDir string, entries []model.FileEntry) (dest string, ok bool) {
	if c.mode == clipNone {
		return "", false
	}
	if c.mode == clipCut && pathutil.Parent(c.entry.Path) == destDir {
		return "", false
	}
	existing := make(map[string]bool, len(entries))
	for _, e := range entries {
		existing[e.Name] = true
	}
	name := pathutil.ResolveCollision(existing, c.entry.Name, c.entry.IsDir())
	return pathutil.Join(destDir, name), true
}
