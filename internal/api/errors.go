package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
)

// Error is a non-2xx backend response. Detail mirrors the conventional
// `{"detail": string | object}` error body.
type Error struct {
	Status int
	Detail any
}

func (e *Error) Error() string {
	msg := FormatDetail(e.Detail)
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, msg)
}

// IsNotFound reports whether err is (or wraps) a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var envelope struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Detail == nil {
		// Not the conventional envelope; keep whatever text came back.
		return &Error{Status: resp.StatusCode, Detail: strings.TrimSpace(string(body))}
	}
	return &Error{Status: resp.StatusCode, Detail: envelope.Detail}
}

// FormatDetail renders a `detail` payload as human-readable text. Strings
// pass through; objects (e.g. field-validation structures) are flattened into
// "field: message" lines instead of being dumped as JSON.
func FormatDetail(detail any) string {
	switch d := detail.(type) {
	case nil:
		return ""
	case string:
		return d
	case map[string]any:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, FormatDetail(d[k])))
		}
		return strings.Join(parts, "; ")
	case []any:
		parts := make([]string, 0, len(d))
		for _, v := range d {
			parts = append(parts, FormatDetail(v))
		}
		return strings.Join(parts, "; ")
	default:
		b, err := json.Marshal(d)
		if err != nil {
			return fmt.Sprintf("%v", d)
		}
		return string(b)
	}
}
