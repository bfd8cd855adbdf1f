package api

import (
	"context"
	"net/http"
	"net/url"

	"claudetask-cli/internal/model"
)

// HookBuckets is the hooks list envelope: named sub-lists that may overlap
// (an enabled default hook appears in both enabled and available_default).
// Callers union the provenance buckets with listsync.Union for the "all" view.
type HookBuckets struct {
	Enabled          []model.Hook `json:"enabled"`
	AvailableDefault []model.Hook `json:"available_default"`
	Custom           []model.Hook `json:"custom"`
	Favorites        []model.Hook `json:"favorites"`
}

func hooksPath(projectID, suffix string) string {
	return "/api/projects/" + url.PathEscape(projectID) + "/hooks" + suffix
}

// ListHooks fetches the hook buckets for a project.
func (c *Client) ListHooks(ctx context.Context, projectID string) (HookBuckets, error) {
	var env HookBuckets
	if err := c.do(ctx, http.MethodGet, hooksPath(projectID, ""), nil, nil, &env); err != nil {
		return HookBuckets{}, err
	}
	return env, nil
}

// CreateHookRequest creates a custom hook.
type CreateHookRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	EventType   string `json:"eventType"`
	Command     string `json:"command"`
}

func (c *Client) CreateHook(ctx context.Context, projectID string, req CreateHookRequest) (model.Hook, error) {
	var h model.Hook
	if err := c.do(ctx, http.MethodPost, hooksPath(projectID, ""), nil, req, &h); err != nil {
		return model.Hook{}, err
	}
	return h, nil
}

// UpdateHook replaces a custom hook's definition.
func (c *Client) UpdateHook(ctx context.Context, projectID, hookID string, req CreateHookRequest) (model.Hook, error) {
	var h model.Hook
	if err := c.do(ctx, http.MethodPut, hooksPath(projectID, "/"+url.PathEscape(hookID)), nil, req, &h); err != nil {
		return model.Hook{}, err
	}
	return h, nil
}

func (c *Client) DeleteHook(ctx context.Context, projectID, hookID string) error {
	return c.do(ctx, http.MethodDelete, hooksPath(projectID, "/"+url.PathEscape(hookID)), nil, nil, nil)
}

// toggle endpoints are POSTs with a trailing action segment.
func (c *Client) hookAction(ctx context.Context, projectID, hookID, action string) error {
	return c.do(ctx, http.MethodPost, hooksPath(projectID, "/"+url.PathEscape(hookID)+"/"+action), nil, nil, nil)
}

func (c *Client) EnableHook(ctx context.Context, projectID, hookID string) error {
	return c.hookAction(ctx, projectID, hookID, "enable")
}

func (c *Client) DisableHook(ctx context.Context, projectID, hookID string) error {
	return c.hookAction(ctx, projectID, hookID, "disable")
}

func (c *Client) FavoriteHook(ctx context.Context, projectID, hookID string) error {
	return c.hookAction(ctx, projectID, hookID, "favorite")
}

func (c *Client) UnfavoriteHook(ctx context.Context, projectID, hookID string) error {
	return c.hookAction(ctx, projectID, hookID, "unfavorite")
}
