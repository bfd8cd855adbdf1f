package api

import (
	"context"
	"net/http"
	"net/url"

	"claudetask-cli/internal/model"
)

func filesPath(projectID, suffix string) string {
	return "/api/projects/" + url.PathEscape(projectID) + "/files" + suffix
}

// ListFiles returns the directory listing for path ("" for the project root).
func (c *Client) ListFiles(ctx context.Context, projectID, path string) (model.FileListing, error) {
	q := url.Values{"path": {path}}
	var listing model.FileListing
	if err := c.do(ctx, http.MethodGet, filesPath(projectID, ""), q, nil, &listing); err != nil {
		return model.FileListing{}, err
	}
	return listing, nil
}

type fileContentEnvelope struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ReadFile returns the raw text content of one file.
func (c *Client) ReadFile(ctx context.Context, projectID, path string) (string, error) {
	q := url.Values{"path": {path}}
	var env fileContentEnvelope
	if err := c.do(ctx, http.MethodGet, filesPath(projectID, "/content"), q, nil, &env); err != nil {
		return "", err
	}
	return env.Content, nil
}

// WriteFile replaces the content of an existing file.
func (c *Client) WriteFile(ctx context.Context, projectID, path, content string) error {
	body := fileContentEnvelope{Path: path, Content: content}
	return c.do(ctx, http.MethodPut, filesPath(projectID, "/content"), nil, body, nil)
}

type createEntryRequest struct {
	Path string         `json:"path"`
	Kind model.FileKind `json:"kind"`
}

// CreateFile creates an empty file at path.
func (c *Client) CreateFile(ctx context.Context, projectID, path string) error {
	return c.do(ctx, http.MethodPost, filesPath(projectID, ""), nil,
		createEntryRequest{Path: path, Kind: model.FileKindFile}, nil)
}

// CreateDirectory creates a directory at path.
func (c *Client) CreateDirectory(ctx context.Context, projectID, path string) error {
	return c.do(ctx, http.MethodPost, filesPath(projectID, ""), nil,
		createEntryRequest{Path: path, Kind: model.FileKindDirectory}, nil)
}

type pathPairRequest struct {
	OldPath string `json:"oldPath"`
	NewPath string `json:"newPath"`
}

// RenameEntry moves an entry to a new name within its directory.
func (c *Client) RenameEntry(ctx context.Context, projectID, oldPath, newPath string) error {
	return c.do(ctx, http.MethodPut, filesPath(projectID, "/rename"), nil,
		pathPairRequest{OldPath: oldPath, NewPath: newPath}, nil)
}

type copyMoveRequest struct {
	SourcePath string `json:"sourcePath"`
	DestPath   string `json:"destPath"`
}

// CopyEntry copies an entry. The caller resolves destination name collisions
// before issuing the request (pathutil.ResolveCollision).
func (c *Client) CopyEntry(ctx context.Context, projectID, sourcePath, destPath string) error {
	return c.do(ctx, http.MethodPost, filesPath(projectID, "/copy"), nil,
		copyMoveRequest{SourcePath: sourcePath, DestPath: destPath}, nil)
}

// MoveEntry moves an entry to a new location.
func (c *Client) MoveEntry(ctx context.Context, projectID, sourcePath, destPath string) error {
	return c.do(ctx, http.MethodPost, filesPath(projectID, "/move"), nil,
		copyMoveRequest{SourcePath: sourcePath, DestPath: destPath}, nil)
}

// DeleteEntry removes a file or directory (recursively for directories).
func (c *Client) DeleteEntry(ctx context.Context, projectID, path string) error {
	q := url.Values{"path": {path}}
	return c.do(ctx, http.MethodDelete, filesPath(projectID, ""), q, nil, nil)
}
