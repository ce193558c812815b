package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/signup/internal/model"
	"github.com/deppfellow/signup/internal/sqlerr"
)

const insertAccount = `
INSERT INTO accounts (id, name, email, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

type AccountRepository struct {
	db querier
}

func NewAccountRepository(db querier) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts account and sets its CreatedAt. A duplicate email is
// reported as model.ErrAccountExists wrapping the *sqlerr.Error.
func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	err := r.db.QueryRow(ctx, insertAccount,
		account.ID,
		account.Name,
		account.Email,
		account.PasswordHash,
	).Scan(&account.CreatedAt)
	if err == nil {
		return nil
	}

	if sqlErr := sqlerr.Classify(err); sqlErr != nil {
		if sqlErr.Code == sqlerr.UniqueViolation && sqlerr.UniqueViolationColumn(sqlErr.ConstraintName) == "email" {
			return fmt.Errorf("%w: %w", model.ErrAccountExists, sqlErr)
		}
		return fmt.Errorf("failed to insert account: %w", sqlErr)
	}

	return fmt.Errorf("failed to insert account: %w", err)
}
