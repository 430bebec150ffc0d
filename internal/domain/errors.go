package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrNotFound             = errors.New("not found")
	ErrTeamNotFound         = fmt.Errorf("team %w", ErrNotFound)
	ErrProjectNotFound      = fmt.Errorf("project %w", ErrNotFound)
	ErrNoParentProject      = fmt.Errorf("parent %w", ErrProjectNotFound)
	ErrStepNotFound         = fmt.Errorf("step %w", ErrNotFound)
	ErrAccountNotFound      = fmt.Errorf("account %w", ErrNotFound)
	ErrTokenNotFound        = errors.New("token is not associated to a team or project")
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrMissingWebhookSecret = errors.New("team has no webhook secret")

	ErrTeamExists    = errors.New("team already exists")
	ErrProjectExists = errors.New("project already exists")
	ErrAccountExists = errors.New("account already exists")
	ErrTokenExists   = errors.New("token already in use")
	ErrStepInUse     = errors.New("step still has test results")

	ErrNotOwner      = errors.New("not the project owner")
	ErrNotInExercise = errors.New("not involved in this exercise")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ExternalKind tags the known failure shapes of the Git host and CI runner.
type ExternalKind int

const (
	ExternalGeneric ExternalKind = iota
	ExternalNotFound
	ExternalAlreadyExists
	ExternalNotATemplate
	ExternalEmpty
	ExternalUserNotFound
)

func (k ExternalKind) String() string {
	switch k {
	case ExternalNotFound:
		return "not_found"
	case ExternalAlreadyExists:
		return "already_exists"
	case ExternalNotATemplate:
		return "not_a_template"
	case ExternalEmpty:
		return "empty"
	case ExternalUserNotFound:
		return "user_not_found"
	}
	return "generic"
}

// ExternalError is a non-2xx answer from an upstream service.
type ExternalError struct {
	Service string
	Kind    ExternalKind
	Status  int
	Body    string
	// Subject is the repository or username the failure is about.
	Subject string
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Service, e.Describe())
}

// Describe renders the human readable detail for the error kind.
func (e *ExternalError) Describe() string {
	switch e.Kind {
	case ExternalNotFound:
		return fmt.Sprintf("%s not found", subjectOr(e.Subject, "resource"))
	case ExternalAlreadyExists:
		return fmt.Sprintf("repository %s already exists", subjectOr(e.Subject, ""))
	case ExternalNotATemplate:
		return fmt.Sprintf("repository %s is not a template", subjectOr(e.Subject, ""))
	case ExternalEmpty:
		return fmt.Sprintf("repository %s is empty", subjectOr(e.Subject, ""))
	case ExternalUserNotFound:
		return fmt.Sprintf("user %s not found", subjectOr(e.Subject, ""))
	}
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.Status)
	}
	return fmt.Sprintf("status %d: %s", e.Status, e.Body)
}

func subjectOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// IsExternalKind reports whether err wraps an ExternalError of the given kind.
func IsExternalKind(err error, kind ExternalKind) bool {
	var ext *ExternalError
	return errors.As(err, &ext) && ext.Kind == kind
}

// RollbackError means a compensating delete failed and the repository needs
// manual cleanup.
type RollbackError struct {
	Repo        string
	Cause       error
	RollbackErr error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("rollback of repository %s failed, manual cleanup required: %v (original error: %v)",
		e.Repo, e.RollbackErr, e.Cause)
}

func (e *RollbackError) Unwrap() error { return e.RollbackErr }

// PhaseError reports the reconciliation phase that stopped a batch.
type PhaseError struct {
	Phase string
	Item  string
	Done  Summary
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s %q failed after %s: %v", e.Phase, e.Item, e.Done.Message(), e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }
