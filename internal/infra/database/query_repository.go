package database

import (
	"context"
	"database/sql"

	"github.com/workvine/crm-backend/internal/entity"
)

type QueryRepository struct {
	DB *sql.DB
}

func NewQueryRepository(db *sql.DB) *QueryRepository {
	return &QueryRepository{DB: db}
}

func (r *QueryRepository) Create(ctx context.Context, q *entity.Query) error {
	query := `
		INSERT INTO queries (id, name, email, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		q.ID,
		q.Name,
		q.Email,
		q.Message,
		q.Status,
		q.CreatedAt,
	)
	return err
}
