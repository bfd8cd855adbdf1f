// Package listsync keeps a local rendering of one remote collection
// consistent with the backend across fetch, filter and mutate operations.
//
// The controller owns no transport: callers issue the HTTP request (as a
// bubbletea command or a plain call) and feed the outcome back through
// ApplyLoad. Mutations are not represented here at all — a successful write
// is followed by a fresh sequenced load, never by patching the local slice.
package listsync

import "claudetask-cli/internal/model"

// Item is the minimal surface a resource needs to be listed, deduplicated
// and filtered.
type Item interface {
	ItemKey() model.Key
	SearchText() []string
	Flags() model.ListFlags
}

// Scope identifies which slice of a collection a load retrieves.
type Scope struct {
	ProjectID string
	Path      string
	Level     string
	Offset    int
	Limit     int
}

// Controller tracks the last successfully loaded list for one collection,
// plus enough bookkeeping to drop stale responses.
//
// Loads are sequenced: Begin hands out a monotonically increasing sequence
// number, and ApplyLoad discards any completion older than one already
// applied. There is no cancellation of in-flight requests; sequencing alone
// prevents a slow stale response from overwriting a newer list when the user
// switches scopes quickly.
type Controller[T Item] struct {
	scope   Scope
	items   []T
	loadErr error

	issued  int
	applied int
}

// Begin records a new load for the given scope and returns its sequence
// number. The caller passes the number back to ApplyLoad on completion.
func (c *Controller[T]) Begin(scope Scope) int {
	c.scope = scope
	c.issued++
	return c.issued
}

// Loading reports whether a load is outstanding.
func (c *Controller[T]) Loading() bool { return c.issued > c.applied }

// Scope returns the scope of the most recently issued load.
func (c *Controller[T]) Scope() Scope { return c.scope }

// ApplyLoad consumes a completed load. Returns false when the response was
// stale and dropped. On success the local list is replaced wholesale; on
// failure the previous list is preserved and the error recorded. Partial
// merges never happen.
func (c *Controller[T]) ApplyLoad(seq int, items []T, err error) bool {
	if seq <= c.applied {
		return false
	}
	c.applied = seq
	if err != nil {
		c.loadErr = err
		return true
	}
	c.loadErr = nil
	c.items = items
	return true
}

// Items returns the last successfully loaded list.
func (c *Controller[T]) Items() []T { return c.items }

// Err returns the error from the most recent applied load, if any.
func (c *Controller[T]) Err() error { return c.loadErr }

// ClearErr dismisses the recorded load error.
func (c *Controller[T]) ClearErr() { c.loadErr = nil }

// Visible applies the text query and bucket filter to the loaded list.
// Pure and recomputed per call; the base list is never mutated.
func (c *Controller[T]) Visible(query string, bucket Bucket) []T {
	return Filter(InBucket(c.items, bucket), query)
}
