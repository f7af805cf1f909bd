package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/workvine/crm-backend/internal/entity"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

const clientColumns = `
	id, name, company, phone, email, location,
	COALESCE(time_zone, ''), COALESCE(source_lead_id, ''),
	created_at, updated_at
`

// Create inserts the client and, when a contact is given, upserts it in
// the same transaction so the dual write cannot half-apply.
func (r *ClientRepository) Create(ctx context.Context, c *entity.Client, contact *entity.Contact) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO clients (id, name, company, phone, email, location, time_zone, source_lead_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10)
	`

	_, err = tx.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Company,
		c.Phone,
		c.Email,
		c.Location,
		c.TimeZone,
		c.SourceLeadID,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return mapConflict(err)
	}

	if contact != nil {
		if err := upsertContact(ctx, tx, contact); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// CreateFromLead inserts the converted client and moves the lead into its
// terminal stage atomically.
func (r *ClientRepository) CreateFromLead(ctx context.Context, c *entity.Client, lead *entity.Lead) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO clients (id, name, company, phone, email, location, time_zone, source_lead_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10)
	`

	_, err = tx.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Company,
		c.Phone,
		c.Email,
		c.Location,
		c.TimeZone,
		c.SourceLeadID,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return mapConflict(err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE leads SET current_stage = $1, updated_at = $2 WHERE id = $3`,
		lead.CurrentStage, lead.UpdatedAt, lead.ID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	var c entity.Client
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Company,
		&c.Phone,
		&c.Email,
		&c.Location,
		&c.TimeZone,
		&c.SourceLeadID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []entity.Client{}
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Company,
			&c.Phone,
			&c.Email,
			&c.Location,
			&c.TimeZone,
			&c.SourceLeadID,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

// Update persists the merged client and, when a contact rewrite is given,
// applies it in the same transaction keyed by the old (phone, email) pair.
// A failed client update therefore never leaves a rewritten contact behind.
func (r *ClientRepository) Update(ctx context.Context, c *entity.Client, contact *entity.Contact, oldPhone, oldEmail string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE clients
		SET name = $1, company = $2, phone = $3, email = $4, location = $5, updated_at = $6
		WHERE id = $7
	`

	res, err := tx.ExecContext(ctx, query,
		c.Name, c.Company, c.Phone, c.Email, c.Location, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return mapConflict(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrClientNotFound
	}

	if contact != nil {
		if err := updateContactByPhoneEmail(ctx, tx, oldPhone, oldEmail, contact); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// EmailInUse reports whether any client other than excludeID holds the
// email. Pass an empty excludeID for create flows.
func (r *ClientRepository) EmailInUse(ctx context.Context, email, excludeID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE email = $1 AND id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *ClientRepository) PhoneInUse(ctx context.Context, phone, excludeID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE phone = $1 AND id <> $2)`,
		phone, excludeID,
	).Scan(&exists)
	return exists, err
}
