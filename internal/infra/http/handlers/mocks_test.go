package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/workvine/crm-backend/internal/entity"
)

type mockClientRepository struct {
	mock.Mock
}

func (m *mockClientRepository) Create(ctx context.Context, c *entity.Client, contact *entity.Contact) error {
	args := m.Called(ctx, c, contact)
	return args.Error(0)
}

func (m *mockClientRepository) CreateFromLead(ctx context.Context, c *entity.Client, lead *entity.Lead) error {
	args := m.Called(ctx, c, lead)
	return args.Error(0)
}

func (m *mockClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *mockClientRepository) FindAll(ctx context.Context) ([]entity.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Client), args.Error(1)
}

func (m *mockClientRepository) Update(ctx context.Context, c *entity.Client, contact *entity.Contact, oldPhone, oldEmail string) error {
	args := m.Called(ctx, c, contact, oldPhone, oldEmail)
	return args.Error(0)
}

func (m *mockClientRepository) EmailInUse(ctx context.Context, email, excludeID string) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockClientRepository) PhoneInUse(ctx context.Context, phone, excludeID string) (bool, error) {
	args := m.Called(ctx, phone, excludeID)
	return args.Bool(0), args.Error(1)
}

type mockLeadRepository struct {
	mock.Mock
}

func (m *mockLeadRepository) Create(ctx context.Context, l *entity.Lead, contact *entity.Contact) error {
	args := m.Called(ctx, l, contact)
	return args.Error(0)
}

func (m *mockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *mockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *mockLeadRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]entity.Lead, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *mockLeadRepository) Update(ctx context.Context, l *entity.Lead, contact *entity.Contact) error {
	args := m.Called(ctx, l, contact)
	return args.Error(0)
}

func (m *mockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) FindByPhoneEmail(ctx context.Context, phone, email string) (*entity.Contact, error) {
	args := m.Called(ctx, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

type mockQueryRepository struct {
	mock.Mock
}

func (m *mockQueryRepository) Create(ctx context.Context, q *entity.Query) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
