package usecase

import (
	"context"
	"time"

	"github.com/workvine/crm-backend/internal/entity"
)

// DashboardUseCase composes the read-only statistics. Each statistic is an
// independent query; which ones get returned is assembled here, not baked
// into the store layer.
type DashboardUseCase struct {
	Stats       StatsReader
	Leads       LeadRepository
	IndianZones []string
}

func NewDashboardUseCase(stats StatsReader, leads LeadRepository, indianZones []string) *DashboardUseCase {
	return &DashboardUseCase{
		Stats:       stats,
		Leads:       leads,
		IndianZones: indianZones,
	}
}

// AdminDashboard returns the aggregate view. An optional employeeID and
// YYYY-MM-DD date narrow the lead total; the date matches the whole
// calendar month containing it, in server-local time.
func (uc *DashboardUseCase) AdminDashboard(ctx context.Context, requesterID, employeeID, date string) (*AdminDashboardOutput, error) {
	out := &AdminDashboardOutput{}

	var from, to time.Time
	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return nil, &DomainError{Code: CodeValidation, Message: "date must be YYYY-MM-DD"}
		}
		from = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.Local)
		to = from.AddDate(0, 1, 0)
	}

	var err error
	if employeeID == "" && date == "" {
		if out.LeadData, err = uc.Stats.LeadStats(ctx); err != nil {
			return nil, err
		}
	} else {
		total, err := uc.Stats.LeadTotal(ctx, employeeID, from, to)
		if err != nil {
			return nil, err
		}
		out.LeadData = &entity.LeadStats{Total: total}
	}

	if out.ProjectData, err = uc.Stats.ProjectStats(ctx); err != nil {
		return nil, err
	}
	if out.UserData, err = uc.Stats.UserStats(ctx, requesterID); err != nil {
		return nil, err
	}
	if out.ClientData, err = uc.Stats.ClientStats(ctx, uc.IndianZones); err != nil {
		return nil, err
	}
	if out.QueryData, err = uc.Stats.QueryStats(ctx); err != nil {
		return nil, err
	}
	if out.ContactData, err = uc.Stats.ContactStats(ctx); err != nil {
		return nil, err
	}
	if out.TeamData, err = uc.Stats.TeamStats(ctx); err != nil {
		return nil, err
	}

	return out, nil
}

// UserDashboard lists the leads belonging to one employee.
func (uc *DashboardUseCase) UserDashboard(ctx context.Context, employeeID string) (*UserDashboardOutput, error) {
	if employeeID == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "Employee ID is required"}
	}

	leads, err := uc.Leads.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return &UserDashboardOutput{LeadData: leads}, nil
}
