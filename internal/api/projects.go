package api

import (
	"context"
	"net/http"
	"net/url"

	"claudetask-cli/internal/model"
)

type projectsEnvelope struct {
	Projects []model.Project `json:"projects"`
}

// ListProjects returns all projects known to the server.
func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var env projectsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Projects, nil
}

// CreateProjectRequest is the setup-wizard payload.
type CreateProjectRequest struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Template string `json:"template,omitempty"`
}

// CreateProject registers a new project and returns it.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (model.Project, error) {
	var p model.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", nil, req, &p); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

// DeleteProject removes a project registration (the working tree stays).
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+url.PathEscape(projectID), nil, nil, nil)
}
