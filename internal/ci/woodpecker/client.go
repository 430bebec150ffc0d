// Package woodpecker talks to the Woodpecker CI API: repository activation,
// secrets and manual pipeline runs.
package woodpecker

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gradeline/internal/domain"

	"github.com/go-resty/resty/v2"
)

const serviceName = "woodpecker"

type Client struct {
	http *resty.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+"/api").
		SetHeader("Accept", "application/json").
		SetAuthToken(token).
		SetTimeout(timeout)

	return &Client{http: http}
}

type repoDTO struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Active   bool   `json:"active"`
}

func (r repoDTO) toDomain() *domain.CIRepository {
	return &domain.CIRepository{ID: r.ID, FullName: r.FullName, Active: r.Active}
}

func (c *Client) LookupRepository(ctx context.Context, fullName string) (*domain.CIRepository, error) {
	segments := strings.Split(fullName, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	var out repoDTO
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		ForceContentType("application/json").
		Get("/repos/lookup/" + strings.Join(segments, "/"))
	if err != nil {
		return nil, fmt.Errorf("woodpecker lookup %s: %w", fullName, err)
	}
	if resp.StatusCode() == 404 {
		return nil, nil
	}
	if resp.IsError() {
		return nil, externalError(resp, fullName)
	}
	return out.toDomain(), nil
}

// ActivateRepository enables the repository with the given Git host id.
func (c *Client) ActivateRepository(ctx context.Context, forgeID int64) (*domain.CIRepository, error) {
	var out repoDTO
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("forge_remote_id", strconv.FormatInt(forgeID, 10)).
		SetResult(&out).
		ForceContentType("application/json").
		Post("/repos")
	if err != nil {
		return nil, fmt.Errorf("woodpecker activate %d: %w", forgeID, err)
	}
	if resp.IsError() {
		return nil, externalError(resp, strconv.FormatInt(forgeID, 10))
	}
	return out.toDomain(), nil
}

type secretRequest struct {
	Name   string   `json:"name"`
	Value  string   `json:"value"`
	Events []string `json:"events"`
}

func (c *Client) AddSecret(ctx context.Context, repoID int64, name, value string) error {
	body := secretRequest{Name: name, Value: value, Events: []string{"push", "manual"}}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(fmt.Sprintf("/repos/%d/secrets", repoID))
	if err != nil {
		return fmt.Errorf("woodpecker secret %s: %w", name, err)
	}
	if resp.IsError() {
		return externalError(resp, name)
	}
	return nil
}

type pipelineRequest struct {
	Branch    string            `json:"branch"`
	Variables map[string]string `json:"variables"`
}

func (c *Client) TriggerPipeline(ctx context.Context, repoID int64, branch string) error {
	body := pipelineRequest{Branch: branch, Variables: map[string]string{}}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(fmt.Sprintf("/repos/%d/pipelines", repoID))
	if err != nil {
		return fmt.Errorf("woodpecker pipeline %d: %w", repoID, err)
	}
	if resp.IsError() {
		return externalError(resp, strconv.FormatInt(repoID, 10))
	}
	return nil
}

// externalError tags only 404s. Woodpecker conflicts concern secrets and
// pipelines, never a repository name, so they stay generic.
func externalError(resp *resty.Response, subject string) error {
	kind := domain.ExternalGeneric
	if resp.StatusCode() == 404 {
		kind = domain.ExternalNotFound
	}
	return &domain.ExternalError{
		Service: serviceName,
		Kind:    kind,
		Status:  resp.StatusCode(),
		Body:    strings.TrimSpace(resp.String()),
		Subject: subject,
	}
}
