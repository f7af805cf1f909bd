package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/workvine/crm-backend/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, title, company_name, contact_name, phone, email, description,
	current_stage, location, COALESCE(team_id, ''), COALESCE(assigned_to, ''),
	employee_id, user_name, requirements, created_at, updated_at
`

func scanLead(row interface{ Scan(...interface{}) error }) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.CompanyName,
		&l.ContactName,
		&l.Phone,
		&l.Email,
		&l.Description,
		&l.CurrentStage,
		&l.Location,
		&l.TeamID,
		&l.AssignedTo,
		&l.EmployeeID,
		&l.UserName,
		&l.Requirements,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts the lead and upserts its contact in one transaction.
func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead, contact *entity.Contact) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO leads (id, title, company_name, contact_name, phone, email, description,
			current_stage, location, team_id, assigned_to, employee_id, user_name, requirements,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13, $14, $15, $16)
	`

	_, err = tx.ExecContext(ctx, query,
		l.ID,
		l.Title,
		l.CompanyName,
		l.ContactName,
		l.Phone,
		l.Email,
		l.Description,
		l.CurrentStage,
		l.Location,
		l.TeamID,
		l.AssignedTo,
		l.EmployeeID,
		l.UserName,
		l.Requirements,
		l.CreatedAt,
		l.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if contact != nil {
		if err := upsertContact(ctx, tx, contact); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	return r.findMany(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC`)
}

func (r *LeadRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]entity.Lead, error) {
	return r.findMany(ctx, `SELECT `+leadColumns+` FROM leads WHERE employee_id = $1 ORDER BY created_at DESC`, employeeID)
}

func (r *LeadRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}

	return leads, rows.Err()
}

// Update persists the merged lead and upserts its contact when the
// identity fields changed.
func (r *LeadRepository) Update(ctx context.Context, l *entity.Lead, contact *entity.Contact) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE leads
		SET title = $1, company_name = $2, contact_name = $3, phone = $4, email = $5,
			description = $6, current_stage = $7, location = $8, team_id = NULLIF($9, ''),
			assigned_to = NULLIF($10, ''), requirements = $11, updated_at = $12
		WHERE id = $13
	`

	res, err := tx.ExecContext(ctx, query,
		l.Title,
		l.CompanyName,
		l.ContactName,
		l.Phone,
		l.Email,
		l.Description,
		l.CurrentStage,
		l.Location,
		l.TeamID,
		l.AssignedTo,
		l.Requirements,
		l.UpdatedAt,
		l.ID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	if contact != nil {
		if err := upsertContact(ctx, tx, contact); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}
