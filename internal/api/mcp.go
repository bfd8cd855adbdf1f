package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tailscale/hujson"

	"claudetask-cli/internal/model"
)

type mcpEnvelope struct {
	Configs []model.MCPConfig `json:"configs"`
}

func mcpPath(projectID, suffix string) string {
	return "/api/projects/" + url.PathEscape(projectID) + "/mcp" + suffix
}

// ListMCPConfigs returns all MCP server configurations (default and custom).
func (c *Client) ListMCPConfigs(ctx context.Context, projectID string) ([]model.MCPConfig, error) {
	var env mcpEnvelope
	if err := c.do(ctx, http.MethodGet, mcpPath(projectID, ""), nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Configs, nil
}

type CreateMCPConfigRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	ConfigJSON  string `json:"configJson"`
}

// ValidateMCPConfigJSON checks a user-entered config body before any request
// is sent. Comments and trailing commas are tolerated; the returned body is
// standardized to strict JSON.
func ValidateMCPConfigJSON(body string) (string, error) {
	b, err := hujson.Standardize([]byte(body))
	if err != nil {
		return "", fmt.Errorf("invalid config JSON: %w", err)
	}
	return string(b), nil
}

// CreateMCPConfig validates the config body client-side, then creates it.
func (c *Client) CreateMCPConfig(ctx context.Context, projectID string, req CreateMCPConfigRequest) (model.MCPConfig, error) {
	std, err := ValidateMCPConfigJSON(req.ConfigJSON)
	if err != nil {
		return model.MCPConfig{}, err
	}
	req.ConfigJSON = std
	var cfg model.MCPConfig
	if err := c.do(ctx, http.MethodPost, mcpPath(projectID, ""), nil, req, &cfg); err != nil {
		return model.MCPConfig{}, err
	}
	return cfg, nil
}

func (c *Client) UpdateMCPConfig(ctx context.Context, projectID, configID string, req CreateMCPConfigRequest) (model.MCPConfig, error) {
	std, err := ValidateMCPConfigJSON(req.ConfigJSON)
	if err != nil {
		return model.MCPConfig{}, err
	}
	req.ConfigJSON = std
	var cfg model.MCPConfig
	if err := c.do(ctx, http.MethodPut, mcpPath(projectID, "/"+url.PathEscape(configID)), nil, req, &cfg); err != nil {
		return model.MCPConfig{}, err
	}
	return cfg, nil
}

func (c *Client) DeleteMCPConfig(ctx context.Context, projectID, configID string) error {
	return c.do(ctx, http.MethodDelete, mcpPath(projectID, "/"+url.PathEscape(configID)), nil, nil, nil)
}

func (c *Client) mcpAction(ctx context.Context, projectID, configID, action string) error {
	return c.do(ctx, http.MethodPost, mcpPath(projectID, "/"+url.PathEscape(configID)+"/"+action), nil, nil, nil)
}

func (c *Client) EnableMCPConfig(ctx context.Context, projectID, configID string) error {
	return c.mcpAction(ctx, projectID, configID, "enable")
}

func (c *Client) DisableMCPConfig(ctx context.Context, projectID, configID string) error {
	return c.mcpAction(ctx, projectID, configID, "disable")
}

func (c *Client) FavoriteMCPConfig(ctx context.Context, projectID, configID string) error {
	return c.mcpAction(ctx, projectID, configID, "favorite")
}

func (c *Client) UnfavoriteMCPConfig(ctx context.Context, projectID, configID string) error {
	return c.mcpAction(ctx, projectID, configID, "unfavorite")
}
