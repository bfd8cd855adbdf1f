package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"claudetask-cli/internal/model"
)

// LogQuery selects one page of log entries.
type LogQuery struct {
	Offset int
	Limit  int
	Level  string // "" for all levels
}

// ListLogs fetches one page of agent log entries, newest first.
func (c *Client) ListLogs(ctx context.Context, projectID string, q LogQuery) (model.LogPage, error) {
	if q.Limit <= 0 {
		q.Limit = 100
	}
	vals := url.Values{
		"offset": {strconv.Itoa(q.Offset)},
		"limit":  {strconv.Itoa(q.Limit)},
	}
	if q.Level != "" {
		vals.Set("level", q.Level)
	}
	var page model.LogPage
	path := "/api/projects/" + url.PathEscape(projectID) + "/logs"
	if err := c.do(ctx, http.MethodGet, path, vals, nil, &page); err != nil {
		return model.LogPage{}, err
	}
	return page, nil
}
