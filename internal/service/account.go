package service

import (
	"context"
	"strings"

	"gradeline/internal/domain"
)

type RegisterAccountRequest struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	// Password is only used when the Git host user has to be created.
	Password string
}

func (r RegisterAccountRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return &domain.ValidationError{Field: "username", Reason: "is required"}
	}
	if !strings.Contains(r.Email, "@") {
		return &domain.ValidationError{Field: "email", Reason: "is invalid"}
	}
	return nil
}

// RegisterAccount creates the Git host user when it is missing, then the
// local account.
func (s *Service) RegisterAccount(ctx context.Context, req RegisterAccountRequest) (*domain.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.git.UserExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if !exists {
		if req.Password == "" {
			return nil, &domain.ValidationError{Field: "password", Reason: "is required for a new Git user"}
		}
		user := domain.ForgeUser{
			Username: req.Username,
			Email:    req.Email,
			FullName: strings.TrimSpace(req.FirstName + " " + req.LastName),
			Password: req.Password,
		}
		if err := s.git.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	account := domain.Account{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	id, err := s.accounts.CreateAccount(ctx, account)
	if err != nil {
		return nil, err
	}
	account.ID = id

	s.log.WithField("account", account.Username).Info("account registered")
	return &account, nil
}
