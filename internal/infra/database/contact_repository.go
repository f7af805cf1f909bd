package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/workvine/crm-backend/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

// upsertContact inserts the contact unless its (phone_no, email) pair is
// already present. The unique index makes the dedup check atomic.
func upsertContact(ctx context.Context, tx *sql.Tx, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, contact_name, company_name, phone_no, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (phone_no, email) DO NOTHING
	`

	_, err := tx.ExecContext(ctx, query,
		c.ID,
		c.ContactName,
		c.CompanyName,
		c.PhoneNo,
		c.Email,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *ContactRepository) FindByPhoneEmail(ctx context.Context, phone, email string) (*entity.Contact, error) {
	query := `
		SELECT id, contact_name, company_name, phone_no, email, created_at, updated_at
		FROM contacts
		WHERE phone_no = $1 AND email = $2
	`

	var c entity.Contact
	err := r.DB.QueryRowContext(ctx, query, phone, email).Scan(
		&c.ID,
		&c.ContactName,
		&c.CompanyName,
		&c.PhoneNo,
		&c.Email,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// updateContactByPhoneEmail rewrites the contact identified by its old
// (phone, email) pair, inside the caller's transaction. A missing contact
// is a no-op, not an error.
func updateContactByPhoneEmail(ctx context.Context, tx *sql.Tx, oldPhone, oldEmail string, c *entity.Contact) error {
	query := `
		UPDATE contacts
		SET contact_name = $1, company_name = $2, phone_no = $3, email = $4, updated_at = $5
		WHERE phone_no = $6 AND email = $7
	`

	_, err := tx.ExecContext(ctx, query,
		c.ContactName, c.CompanyName, c.PhoneNo, c.Email, c.UpdatedAt,
		oldPhone, oldEmail,
	)
	return err
}
