package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chainsaw-registry/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type staffRepository struct {
	db *sqlx.DB
}

func newStaffRepository(db *sqlx.DB) *staffRepository {
	return &staffRepository{
		db: db,
	}
}

func (r *staffRepository) GetByCredentials(ctx context.Context, email, passwordHash string) (*domain.Staff, error) {
	const op = "repository.staff.GetByCredentials"

	const query = `
	SELECT bin_to_uuid(id) as id, email, name, password, created_at, deleted_at
	FROM staff
	WHERE email = ? AND password = ? AND deleted_at IS NULL`

	var staff domain.Staff
	if err := r.db.GetContext(ctx, &staff, query, email, passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select staff failed: %w", op, err)
	}

	return &staff, nil
}
