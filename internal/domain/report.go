package domain

import (
	"fmt"
	"strings"
)

// PassedError is stored as the error code of a passing test.
const PassedError = "OK"

type ReportTest struct {
	Name    string
	Passed  bool
	Error   *string
	Message *string
}

type ReportStep struct {
	Name  string
	Tests []ReportTest
}

// CIReport is the body posted back by the CI runner.
type CIReport struct {
	Token string
	Steps []ReportStep
}

// Validate checks the report shape: a token, at least one step, at least one
// test per step, and error+message on every failing test.
func (r CIReport) Validate() error {
	if strings.TrimSpace(r.Token) == "" {
		return &ValidationError{Field: "token", Reason: "is required"}
	}
	if len(r.Steps) == 0 {
		return &ValidationError{Field: "steps", Reason: "at least one step is required"}
	}
	for i, step := range r.Steps {
		if step.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("steps[%d].name", i), Reason: "is required"}
		}
		if len(step.Tests) == 0 {
			return &ValidationError{Field: fmt.Sprintf("steps[%d].tests", i), Reason: "at least one test is required"}
		}
		for j, test := range step.Tests {
			if test.Name == "" {
				return &ValidationError{Field: fmt.Sprintf("steps[%d].tests[%d].name", i, j), Reason: "is required"}
			}
			if !test.Passed && (test.Error == nil || test.Message == nil) {
				return &ValidationError{
					Field:  fmt.Sprintf("steps[%d].tests[%d]", i, j),
					Reason: "error and message missing for non-passed test",
				}
			}
		}
	}
	return nil
}

type PushRepository struct {
	ID            int64
	Name          string
	FullName      string
	DefaultBranch string
}

// PushEvent is the subset of a Git host push payload the pipeline consumes.
type PushEvent struct {
	Repository *PushRepository
}

func (e PushEvent) Validate() error {
	if e.Repository == nil {
		return &ValidationError{Field: "repository", Reason: "is required"}
	}
	if e.Repository.ID <= 0 {
		return &ValidationError{Field: "repository.id", Reason: "is required"}
	}
	if e.Repository.Name == "" {
		return &ValidationError{Field: "repository.name", Reason: "is required"}
	}
	if e.Repository.FullName == "" {
		return &ValidationError{Field: "repository.full_name", Reason: "is required"}
	}
	if e.Repository.DefaultBranch == "" {
		return &ValidationError{Field: "repository.default_branch", Reason: "is required"}
	}
	return nil
}

// Repository is a repository as created on the Git host.
type Repository struct {
	ID       int64
	Name     string
	FullName string
	CloneURL string
}

type Webhook struct {
	URL    string
	Secret string
}

type BranchProtection struct {
	Branch string
	Files  []string
}

// ForgeUser is an account to create on the Git host.
type ForgeUser struct {
	Username string
	Email    string
	FullName string
	Password string
}

// CIRepository is the CI runner's record of a Git repository.
type CIRepository struct {
	ID       int64
	FullName string
	Active   bool
}
