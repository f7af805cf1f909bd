package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/workvine/crm-backend/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, name, email, role, is_blocked, is_active, verified, created_at
		FROM users
		WHERE id = $1
	`

	var u entity.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.IsBlocked,
		&u.IsActive,
		&u.Verified,
		&u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
