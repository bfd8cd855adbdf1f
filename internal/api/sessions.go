package api

import (
	"context"
	"net/http"
	"net/url"

	"claudetask-cli/internal/model"
)

type sessionsEnvelope struct {
	Items []model.Session `json:"items"`
}

// ListSessions returns the agent sessions for a project, newest first.
func (c *Client) ListSessions(ctx context.Context, projectID string) ([]model.Session, error) {
	var env sessionsEnvelope
	path := "/api/projects/" + url.PathEscape(projectID) + "/sessions"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// DeleteSession removes a finished session and its transcript.
func (c *Client) DeleteSession(ctx context.Context, projectID, sessionID string) error {
	path := "/api/projects/" + url.PathEscape(projectID) + "/sessions/" + url.PathEscape(sessionID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
