package usecase

import (
	"context"
	"time"

	"github.com/workvine/crm-backend/internal/entity"
)

type UpdateClientUseCase struct {
	Clients ClientRepository
}

func NewUpdateClientUseCase(clients ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{Clients: clients}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, id string, input UpdateClientInput) (*entity.Client, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	client, err := uc.Clients.FindByID(ctx, id)
	if err != nil {
		return nil, wrapEntityError(err)
	}

	// Uniqueness checks exclude the client itself: re-submitting its own
	// phone or email is not a conflict.
	if input.Phone != "" {
		if inUse, err := uc.Clients.PhoneInUse(ctx, input.Phone, client.ID); err != nil {
			return nil, err
		} else if inUse {
			return nil, &DomainError{Code: CodePhoneConflict, Message: "client phone no. already exists"}
		}
	}
	if input.Email != "" {
		if inUse, err := uc.Clients.EmailInUse(ctx, input.Email, client.ID); err != nil {
			return nil, err
		} else if inUse {
			return nil, &DomainError{Code: CodeEmailConflict, Message: "client email already exists"}
		}
	}

	oldPhone, oldEmail := client.Phone, client.Email

	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Company != "" {
		client.Company = input.Company
	}
	if input.Phone != "" {
		client.Phone = input.Phone
	}
	if input.Email != "" {
		client.Email = input.Email
	}
	if input.Location != "" {
		client.Location = input.Location
	}
	client.UpdatedAt = time.Now()

	// When the identity changed, the contact that mirrored the old
	// (phone, email) pair is rewritten in the same transaction as the
	// client row. A missing contact is tolerated.
	var contact *entity.Contact
	if client.Phone != oldPhone || client.Email != oldEmail {
		contact = &entity.Contact{
			ContactName: client.Name,
			CompanyName: client.Company,
			PhoneNo:     client.Phone,
			Email:       client.Email,
			UpdatedAt:   client.UpdatedAt,
		}
	}

	if err := uc.Clients.Update(ctx, client, contact, oldPhone, oldEmail); err != nil {
		return nil, wrapEntityError(err)
	}

	return client, nil
}
