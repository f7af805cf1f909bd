package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/workvine/crm-backend/internal/entity"
)

// StatsRepository serves the dashboard: read-only aggregate queries, one
// method per statistic, no shared state between them.
type StatsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n)
	return n, err
}

func (r *StatsRepository) groupCounts(ctx context.Context, query string) ([]entity.GroupCount, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []entity.GroupCount{}
	for rows.Next() {
		var gc entity.GroupCount
		if err := rows.Scan(&gc.Key, &gc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, gc)
	}

	return counts, rows.Err()
}

// monthCounts buckets rows by creation (year, month), ascending.
func (r *StatsRepository) monthCounts(ctx context.Context, table string) ([]entity.MonthCount, error) {
	query := fmt.Sprintf(`
		SELECT EXTRACT(YEAR FROM created_at)::int,
			EXTRACT(MONTH FROM created_at)::int,
			COUNT(*)::int
		FROM %s
		GROUP BY 1, 2
		ORDER BY 1, 2
	`, table)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []entity.MonthCount{}
	for rows.Next() {
		var mc entity.MonthCount
		if err := rows.Scan(&mc.Year, &mc.Month, &mc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, mc)
	}

	return counts, rows.Err()
}

func (r *StatsRepository) LeadStats(ctx context.Context) (*entity.LeadStats, error) {
	stats := &entity.LeadStats{}

	var err error
	if stats.Total, err = r.count(ctx, `SELECT COUNT(*) FROM leads`); err != nil {
		return nil, err
	}
	if stats.Stages, err = r.groupCounts(ctx, `SELECT current_stage, COUNT(*)::int FROM leads GROUP BY current_stage`); err != nil {
		return nil, err
	}
	if stats.MonthlyCounts, err = r.monthCounts(ctx, "leads"); err != nil {
		return nil, err
	}

	return stats, nil
}

// LeadTotal counts leads, optionally narrowed to one employee and to a
// half-open creation window. Zero times skip the window filter.
func (r *StatsRepository) LeadTotal(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM leads WHERE 1 = 1`
	args := []interface{}{}

	if employeeID != "" {
		args = append(args, employeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
		args = append(args, to)
		query += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	return r.count(ctx, query, args...)
}

func (r *StatsRepository) ProjectStats(ctx context.Context) (*entity.ProjectStats, error) {
	stats := &entity.ProjectStats{}

	var err error
	if stats.Total, err = r.count(ctx, `SELECT COUNT(*) FROM projects`); err != nil {
		return nil, err
	}
	if stats.Status, err = r.groupCounts(ctx, `SELECT project_status, COUNT(*)::int FROM projects GROUP BY project_status`); err != nil {
		return nil, err
	}
	if stats.MonthlyCounts, err = r.monthCounts(ctx, "projects"); err != nil {
		return nil, err
	}

	return stats, nil
}

// UserStats excludes the requesting user from the verified/unverified
// buckets, as the admin screen does not count itself.
func (r *StatsRepository) UserStats(ctx context.Context, excludeID string) (*entity.UserStats, error) {
	stats := &entity.UserStats{}

	var err error
	if stats.Total, err = r.count(ctx, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, err
	}
	if stats.Active, err = r.count(ctx, `SELECT COUNT(*) FROM users WHERE is_active`); err != nil {
		return nil, err
	}
	if stats.Verified, err = r.count(ctx, `SELECT COUNT(*) FROM users WHERE verified AND id <> $1`, excludeID); err != nil {
		return nil, err
	}
	if stats.Unverified, err = r.count(ctx, `SELECT COUNT(*) FROM users WHERE NOT verified AND id <> $1`, excludeID); err != nil {
		return nil, err
	}
	if stats.SubAdmins, err = r.count(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, entity.RoleSubAdmin); err != nil {
		return nil, err
	}
	if stats.Employees, err = r.count(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, entity.RoleEmployee); err != nil {
		return nil, err
	}

	return stats, nil
}

// ClientStats partitions clients into the configured "Indian" zone list
// and its complement. The two buckets always cover the whole set.
func (r *StatsRepository) ClientStats(ctx context.Context, indianZones []string) (*entity.ClientStats, error) {
	stats := &entity.ClientStats{}

	var err error
	if stats.Total, err = r.count(ctx, `SELECT COUNT(*) FROM clients`); err != nil {
		return nil, err
	}
	if stats.Indian, err = r.count(ctx, `SELECT COUNT(*) FROM clients WHERE time_zone = ANY($1)`, pq.Array(indianZones)); err != nil {
		return nil, err
	}
	stats.Foreigner = stats.Total - stats.Indian

	if stats.MonthlyCounts, err = r.monthCounts(ctx, "clients"); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *StatsRepository) QueryStats(ctx context.Context) (*entity.QueryStats, error) {
	stats := &entity.QueryStats{}

	var err error
	if stats.Total, err = r.count(ctx, `SELECT COUNT(*) FROM queries`); err != nil {
		return nil, err
	}
	if stats.Status, err = r.groupCounts(ctx, `SELECT status, COUNT(*)::int FROM queries GROUP BY status`); err != nil {
		return nil, err
	}
	if stats.MonthlyCounts, err = r.monthCounts(ctx, "queries"); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *StatsRepository) ContactStats(ctx context.Context) (*entity.ContactStats, error) {
	stats := &entity.ContactStats{}

	var err error
	if stats.Total, err = r.count(ctx, `SELECT COUNT(*) FROM contacts`); err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, contact_name, company_name, phone_no, email, created_at, updated_at
		FROM contacts
		ORDER BY created_at DESC
		LIMIT 2
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.Recent = []entity.Contact{}
	for rows.Next() {
		var c entity.Contact
		if err := rows.Scan(&c.ID, &c.ContactName, &c.CompanyName, &c.PhoneNo, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		stats.Recent = append(stats.Recent, c)
	}

	return stats, rows.Err()
}

func (r *StatsRepository) TeamStats(ctx context.Context) (*entity.TeamStats, error) {
	stats := &entity.TeamStats{}

	var err error
	if stats.Total, err = r.count(ctx, `SELECT COUNT(*) FROM teams`); err != nil {
		return nil, err
	}
	if stats.Departments, err = r.groupCounts(ctx, `SELECT department, COUNT(*)::int FROM teams GROUP BY department`); err != nil {
		return nil, err
	}

	return stats, nil
}
