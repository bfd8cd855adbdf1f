// Package pathutil holds pure path/name helpers shared by the file browser
// (TUI) and the files CLI commands.
package pathutil

import (
	"fmt"
	"strings"
)

// SplitExt splits a file name into base and extension. The extension is the
// substring starting at the last '.' — but only when that dot is not the first
// character (".gitignore" has no extension).
func SplitExt(name string) (base, ext string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// ResolveCollision returns a destination name that is absent from existing.
// If name is free it is returned unchanged. Otherwise " (n)" is inserted
// before the extension for files, or appended to the name for directories,
// with n counting up from 1 until the candidate is free.
func ResolveCollision(existing map[string]bool, name string, isDir bool) string {
	if !existing[name] {
		return name
	}
	base, ext := name, ""
	if !isDir {
		base, ext = SplitExt(name)
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if !existing[candidate] {
			return candidate
		}
	}
}

// Join joins a directory path and a name using "/" separators, treating ""
// and "/" as the root. Remote paths are always slash-separated regardless of
// the local OS.
func Join(dir, name string) string {
	dir = strings.TrimRight(dir, "/")
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// Parent returns the parent directory of a slash-separated remote path
// ("" for top-level entries).
func Parent(path string) string {
	path = strings.TrimRight(path, "/")
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return ""
	}
	return path[:i]
}

// Base returns the last element of a slash-separated remote path.
func Base(path string) string {
	path = strings.TrimRight(path, "/")
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return path
	}
	return path[i+1:]
}

// Breadcrumbs splits a remote path into its ancestry, root first.
// "src/app/ui" => ["src", "src/app", "src/app/ui"].
func Breadcrumbs(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for i := range parts {
		out = append(out, strings.Join(parts[:i+1], "/"))
	}
	return out
}
