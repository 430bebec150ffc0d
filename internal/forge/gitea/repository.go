package gitea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gradeline/internal/domain"

	"github.com/go-resty/resty/v2"
)

type repositoryDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	CloneURL string `json:"clone_url"`
}

func (r repositoryDTO) toDomain() *domain.Repository {
	return &domain.Repository{ID: r.ID, Name: r.Name, FullName: r.FullName, CloneURL: r.CloneURL}
}

type createRepositoryRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	AutoInit      bool   `json:"auto_init"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	Template      bool   `json:"template"`
}

func (c *Client) CreateRepository(ctx context.Context, name, description string, template bool) (*domain.Repository, error) {
	body := createRepositoryRequest{
		Name:          name,
		Description:   description,
		AutoInit:      true,
		DefaultBranch: "main",
		Private:       true,
		Template:      template,
	}

	var out repositoryDTO
	if err := c.call(ctx, resty.MethodPost, "/user/repos", body, &out, name, domain.ExternalNotFound); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

type generateRequest struct {
	Owner      string `json:"owner"`
	Name       string `json:"name"`
	Private    bool   `json:"private"`
	GitContent bool   `json:"git_content"`
	Topics     bool   `json:"topics"`
	Labels     bool   `json:"labels"`
}

func (c *Client) GenerateFromTemplate(ctx context.Context, template, name string) (*domain.Repository, error) {
	body := generateRequest{Owner: c.owner, Name: name, Private: true, GitContent: true, Topics: true, Labels: true}

	var out repositoryDTO
	err := c.call(ctx, resty.MethodPost, c.repoPath(template, "generate"), body, &out, name, domain.ExternalNotFound)
	if err != nil {
		// a 404 here is about the template, not the new repository
		var ext *domain.ExternalError
		if errors.As(err, &ext) && ext.Kind == domain.ExternalNotFound {
			ext.Subject = template
		}
		return nil, err
	}
	return out.toDomain(), nil
}

type migrateRequest struct {
	CloneAddr string `json:"clone_addr"`
	RepoName  string `json:"repo_name"`
	RepoOwner string `json:"repo_owner"`
	Private   bool   `json:"private"`
	Service   string `json:"service"`
}

func (c *Client) MigrateRepository(ctx context.Context, cloneURL, name string) (*domain.Repository, error) {
	body := migrateRequest{CloneAddr: cloneURL, RepoName: name, RepoOwner: c.owner, Private: true, Service: "git"}

	var out repositoryDTO
	if err := c.call(ctx, resty.MethodPost, "/repos/migrate", body, &out, name, domain.ExternalNotFound); err != nil {
		return nil, err
	}
	return out.toDomain(), nil
}

func (c *Client) ConvertToTemplate(ctx context.Context, name string) error {
	body := map[string]bool{"template": true}
	return c.call(ctx, resty.MethodPatch, c.repoPath(name), body, nil, name, domain.ExternalNotFound)
}

func (c *Client) DeleteRepository(ctx context.Context, name string) error {
	return c.call(ctx, resty.MethodDelete, c.repoPath(name), nil, nil, name, domain.ExternalNotFound)
}

func (c *Client) AddCollaborator(ctx context.Context, repo, username string) error {
	body := map[string]string{"permission": "write"}
	return c.call(ctx, resty.MethodPut, c.repoPath(repo, "collaborators", username), body, nil, username, domain.ExternalUserNotFound)
}

type branchProtectionRequest struct {
	BranchName            string `json:"branch_name"`
	RuleName              string `json:"rule_name"`
	ProtectedFilePatterns string `json:"protected_file_patterns"`
	EnablePush            bool   `json:"enable_push"`
}

func (c *Client) ProtectBranch(ctx context.Context, repo string, rule domain.BranchProtection) error {
	body := branchProtectionRequest{
		BranchName:            rule.Branch,
		RuleName:              rule.Branch,
		ProtectedFilePatterns: strings.Join(rule.Files, ";"),
		EnablePush:            true,
	}
	err := c.call(ctx, resty.MethodPost, c.repoPath(repo, "branch_protections"), body, nil, repo, domain.ExternalNotFound)
	if err != nil {
		return fmt.Errorf("protect %s: %w", rule.Branch, err)
	}
	return nil
}
