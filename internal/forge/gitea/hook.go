package gitea

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gradeline/internal/domain"

	"github.com/go-resty/resty/v2"
)

type hookConfig struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Secret      string `json:"secret,omitempty"`
}

type createHookRequest struct {
	Type   string     `json:"type"`
	Config hookConfig `json:"config"`
	Events []string   `json:"events"`
	Active bool       `json:"active"`
}

type hookDTO struct {
	ID     int64             `json:"id"`
	Config map[string]string `json:"config"`
}

// AddWebhook installs a push webhook that signs its payload with the secret.
func (c *Client) AddWebhook(ctx context.Context, repo string, hook domain.Webhook) error {
	body := createHookRequest{
		Type:   "gitea",
		Config: hookConfig{URL: hook.URL, ContentType: "json", Secret: hook.Secret},
		Events: []string{"push"},
		Active: true,
	}
	return c.call(ctx, resty.MethodPost, c.repoPath(repo, "hooks"), body, nil, repo, domain.ExternalNotFound)
}

// ErrEmptyHookMatch guards against deleting every hook of a repository.
var ErrEmptyHookMatch = errors.New("gitea: empty webhook url match")

// RemoveWebhooks deletes the hooks of fullName whose URL contains
// urlSubstring and returns how many were removed. A hook whose URL equals
// keepURL is never removed.
func (c *Client) RemoveWebhooks(ctx context.Context, fullName, urlSubstring, keepURL string) (int, error) {
	if urlSubstring == "" {
		return 0, ErrEmptyHookMatch
	}

	owner, name := c.owner, fullName
	if i := strings.Index(fullName, "/"); i >= 0 {
		owner, name = fullName[:i], fullName[i+1:]
	}

	var hooks []hookDTO
	if err := c.call(ctx, resty.MethodGet, repoPathFor(owner, name, "hooks"), nil, &hooks, fullName, domain.ExternalNotFound); err != nil {
		return 0, err
	}

	removed := 0
	for _, hook := range hooks {
		url := hook.Config["url"]
		if !strings.Contains(url, urlSubstring) || (keepURL != "" && url == keepURL) {
			continue
		}
		path := repoPathFor(owner, name, "hooks", strconv.FormatInt(hook.ID, 10))
		if err := c.call(ctx, resty.MethodDelete, path, nil, nil, fullName, domain.ExternalNotFound); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
