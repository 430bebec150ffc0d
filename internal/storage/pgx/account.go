package pgx

import (
	"context"
	"errors"

	"gradeline/internal/domain"

	"github.com/jackc/pgx/v5"
)

const accountColumns = `id_account, username, first_name, last_name, email`

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `select ` + accountColumns + ` from accounts where username = $1;`
	return s.getAccount(ctx, query, username)
}

func (s *Storage) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `select ` + accountColumns + ` from accounts where id_account = $1;`
	return s.getAccount(ctx, query, id)
}

func (s *Storage) getAccount(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var a domain.Account
	err := s.getExecutor(ctx).QueryRow(ctx, query, arg).Scan(&a.ID, &a.Username, &a.FirstName, &a.LastName, &a.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *Storage) CreateAccount(ctx context.Context, account domain.Account) (int64, error) {
	const query = `insert into accounts (username, first_name, last_name, email)
	values ($1, $2, $3, $4) returning id_account;`

	var id int64
	err := s.getExecutor(ctx).QueryRow(ctx, query, account.Username, account.FirstName, account.LastName, account.Email).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}
