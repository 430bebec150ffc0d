// Package gitea is a client for the subset of the Gitea v1 REST API used to
// provision exercise repositories.
package gitea

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gradeline/internal/domain"

	"github.com/go-resty/resty/v2"
)

const serviceName = "gitea"

type Client struct {
	http *resty.Client
	// owner is the organisation or user every repository lives under.
	owner string
}

func New(baseURL, token, owner string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/api/v1").
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "token "+token).
		SetTimeout(timeout)

	return &Client{http: http, owner: owner}
}

func (c *Client) repoPath(name string, rest ...string) string {
	return repoPathFor(c.owner, name, rest...)
}

func repoPathFor(owner, name string, rest ...string) string {
	parts := []string{"/repos", url.PathEscape(owner), url.PathEscape(name)}
	for _, r := range rest {
		parts = append(parts, url.PathEscape(r))
	}
	return strings.Join(parts, "/")
}

// call sends one request. subject names the repository or user in errors,
// notFound is the kind reported for a 404.
func (c *Client) call(ctx context.Context, method, path string, body, result any, subject string, notFound domain.ExternalKind) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result).ForceContentType("application/json")
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("gitea %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return &domain.ExternalError{
			Service: serviceName,
			Kind:    classify(resp.StatusCode(), resp.String(), notFound),
			Status:  resp.StatusCode(),
			Body:    strings.TrimSpace(resp.String()),
			Subject: subject,
		}
	}
	return nil
}

func classify(status int, body string, notFound domain.ExternalKind) domain.ExternalKind {
	lower := strings.ToLower(body)
	switch {
	case status == 409:
		return domain.ExternalAlreadyExists
	case strings.Contains(lower, "not a template"):
		return domain.ExternalNotATemplate
	case strings.Contains(lower, "is empty"):
		return domain.ExternalEmpty
	case status == 404:
		return notFound
	}
	return domain.ExternalGeneric
}
