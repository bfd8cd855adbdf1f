package api

import (
	"context"
	"net/http"
	"net/url"

	"claudetask-cli/internal/model"
)

// SkillBuckets mirrors HookBuckets for skills.
type SkillBuckets struct {
	Enabled          []model.Skill `json:"enabled"`
	AvailableDefault []model.Skill `json:"available_default"`
	Custom           []model.Skill `json:"custom"`
	Favorites        []model.Skill `json:"favorites"`
}

func skillsPath(projectID, suffix string) string {
	return "/api/projects/" + url.PathEscape(projectID) + "/skills" + suffix
}

func (c *Client) ListSkills(ctx context.Context, projectID string) (SkillBuckets, error) {
	var env SkillBuckets
	if err := c.do(ctx, http.MethodGet, skillsPath(projectID, ""), nil, nil, &env); err != nil {
		return SkillBuckets{}, err
	}
	return env, nil
}

// GetSkill returns one skill including its markdown content.
func (c *Client) GetSkill(ctx context.Context, projectID, skillID string) (model.Skill, error) {
	var s model.Skill
	if err := c.do(ctx, http.MethodGet, skillsPath(projectID, "/"+url.PathEscape(skillID)), nil, nil, &s); err != nil {
		return model.Skill{}, err
	}
	return s, nil
}

type CreateSkillRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Content     string `json:"content"`
}

func (c *Client) CreateSkill(ctx context.Context, projectID string, req CreateSkillRequest) (model.Skill, error) {
	var s model.Skill
	if err := c.do(ctx, http.MethodPost, skillsPath(projectID, ""), nil, req, &s); err != nil {
		return model.Skill{}, err
	}
	return s, nil
}

func (c *Client) UpdateSkill(ctx context.Context, projectID, skillID string, req CreateSkillRequest) (model.Skill, error) {
	var s model.Skill
	if err := c.do(ctx, http.MethodPut, skillsPath(projectID, "/"+url.PathEscape(skillID)), nil, req, &s); err != nil {
		return model.Skill{}, err
	}
	return s, nil
}

func (c *Client) DeleteSkill(ctx context.Context, projectID, skillID string) error {
	return c.do(ctx, http.MethodDelete, skillsPath(projectID, "/"+url.PathEscape(skillID)), nil, nil, nil)
}

func (c *Client) skillAction(ctx context.Context, projectID, skillID, action string) error {
	return c.do(ctx, http.MethodPost, skillsPath(projectID, "/"+url.PathEscape(skillID)+"/"+action), nil, nil, nil)
}

func (c *Client) EnableSkill(ctx context.Context, projectID, skillID string) error {
	return c.skillAction(ctx, projectID, skillID, "enable")
}

func (c *Client) DisableSkill(ctx context.Context, projectID, skillID string) error {
	return c.skillAction(ctx, projectID, skillID, "disable")
}

func (c *Client) FavoriteSkill(ctx context.Context, projectID, skillID string) error {
	return c.skillAction(ctx, projectID, skillID, "favorite")
}

func (c *Client) UnfavoriteSkill(ctx context.Context, projectID, skillID string) error {
	return c.skillAction(ctx, projectID, skillID, "unfavorite")
}
