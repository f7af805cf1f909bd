package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/workvine/crm-backend/internal/entity"
	"github.com/workvine/crm-backend/internal/infra/queue"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, c *entity.Client, contact *entity.Contact) error {
	args := m.Called(ctx, c, contact)
	return args.Error(0)
}

func (m *MockClientRepository) CreateFromLead(ctx context.Context, c *entity.Client, lead *entity.Lead) error {
	args := m.Called(ctx, c, lead)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, c *entity.Client, contact *entity.Contact, oldPhone, oldEmail string) error {
	args := m.Called(ctx, c, contact, oldPhone, oldEmail)
	return args.Error(0)
}

func (m *MockClientRepository) EmailInUse(ctx context.Context, email, excludeID string) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) PhoneInUse(ctx context.Context, phone, excludeID string) (bool, error) {
	args := m.Called(ctx, phone, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *entity.Lead, contact *entity.Contact) error {
	args := m.Called(ctx, l, contact)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]entity.Lead, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, l *entity.Lead, contact *entity.Contact) error {
	args := m.Called(ctx, l, contact)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByPhoneEmail(ctx context.Context, phone, email string) (*entity.Contact, error) {
	args := m.Called(ctx, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

type MockQueryRepository struct {
	mock.Mock
}

func (m *MockQueryRepository) Create(ctx context.Context, q *entity.Query) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

type MockEventProducer struct {
	mock.Mock
}

func (m *MockEventProducer) PublishClientCreated(ctx context.Context, payload queue.ClientCreatedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockStatsReader struct {
	mock.Mock
}

func (m *MockStatsReader) LeadStats(ctx context.Context) (*entity.LeadStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadStats), args.Error(1)
}

func (m *MockStatsReader) LeadTotal(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	args := m.Called(ctx, employeeID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockStatsReader) ProjectStats(ctx context.Context) (*entity.ProjectStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ProjectStats), args.Error(1)
}

func (m *MockStatsReader) UserStats(ctx context.Context, excludeID string) (*entity.UserStats, error) {
	args := m.Called(ctx, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserStats), args.Error(1)
}

func (m *MockStatsReader) ClientStats(ctx context.Context, indianZones []string) (*entity.ClientStats, error) {
	args := m.Called(ctx, indianZones)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ClientStats), args.Error(1)
}

func (m *MockStatsReader) QueryStats(ctx context.Context) (*entity.QueryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueryStats), args.Error(1)
}

func (m *MockStatsReader) ContactStats(ctx context.Context) (*entity.ContactStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContactStats), args.Error(1)
}

func (m *MockStatsReader) TeamStats(ctx context.Context) (*entity.TeamStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TeamStats), args.Error(1)
}
