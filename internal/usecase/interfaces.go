package usecase

import (
	"context"
	"time"

	"github.com/workvine/crm-backend/internal/entity"
	"github.com/workvine/crm-backend/internal/infra/queue"
)

type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client, contact *entity.Contact) error
	CreateFromLead(ctx context.Context, c *entity.Client, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	FindAll(ctx context.Context) ([]entity.Client, error)
	Update(ctx context.Context, c *entity.Client, contact *entity.Contact, oldPhone, oldEmail string) error
	EmailInUse(ctx context.Context, email, excludeID string) (bool, error)
	PhoneInUse(ctx context.Context, phone, excludeID string) (bool, error)
}

type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead, contact *entity.Contact) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindAll(ctx context.Context) ([]entity.Lead, error)
	FindByEmployeeID(ctx context.Context, employeeID string) ([]entity.Lead, error)
	Update(ctx context.Context, l *entity.Lead, contact *entity.Contact) error
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	FindByPhoneEmail(ctx context.Context, phone, email string) (*entity.Contact, error)
}

type QueryRepository interface {
	Create(ctx context.Context, q *entity.Query) error
}

type StatsReader interface {
	LeadStats(ctx context.Context) (*entity.LeadStats, error)
	LeadTotal(ctx context.Context, employeeID string, from, to time.Time) (int, error)
	ProjectStats(ctx context.Context) (*entity.ProjectStats, error)
	UserStats(ctx context.Context, excludeID string) (*entity.UserStats, error)
	ClientStats(ctx context.Context, indianZones []string) (*entity.ClientStats, error)
	QueryStats(ctx context.Context) (*entity.QueryStats, error)
	ContactStats(ctx context.Context) (*entity.ContactStats, error)
	TeamStats(ctx context.Context) (*entity.TeamStats, error)
}

type EventProducer interface {
	PublishClientCreated(ctx context.Context, payload queue.ClientCreatedPayload) error
}
