package usecase

import (
	"context"
	"errors"

	"github.com/workvine/crm-backend/internal/entity"
	"github.com/workvine/crm-backend/internal/infra/queue"
	"github.com/workvine/crm-backend/internal/logging"
)

type CreateClientUseCase struct {
	Clients  ClientRepository
	Contacts ContactRepository
	Producer EventProducer
}

func NewCreateClientUseCase(clients ClientRepository, contacts ContactRepository, producer EventProducer) *CreateClientUseCase {
	return &CreateClientUseCase{
		Clients:  clients,
		Contacts: contacts,
		Producer: producer,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*entity.Client, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	// Friendly pre-checks; the unique indexes remain authoritative.
	if inUse, err := uc.Clients.EmailInUse(ctx, input.Email, ""); err != nil {
		return nil, err
	} else if inUse {
		return nil, &DomainError{Code: CodeEmailConflict, Message: "client email already exists"}
	}
	if inUse, err := uc.Clients.PhoneInUse(ctx, input.Phone, ""); err != nil {
		return nil, err
	} else if inUse {
		return nil, &DomainError{Code: CodePhoneConflict, Message: "client phone no. already exists"}
	}

	client, err := entity.NewClient(input.Name, input.Company, input.Phone, input.Email, input.Location, input.TimeZone)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	contact, err := uc.contactFor(ctx, client)
	if err != nil {
		return nil, err
	}

	if err := uc.Clients.Create(ctx, client, contact); err != nil {
		return nil, wrapEntityError(err)
	}

	publishClientCreated(ctx, uc.Producer, client, "direct")

	return client, nil
}

// contactFor returns a contact to mirror the client's identity, or nil
// when one already exists for the (phone, email) pair.
func (uc *CreateClientUseCase) contactFor(ctx context.Context, client *entity.Client) (*entity.Contact, error) {
	_, err := uc.Contacts.FindByPhoneEmail(ctx, client.Phone, client.Email)
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, entity.ErrContactNotFound) {
		return nil, err
	}
	return entity.NewContact(client.Name, client.Company, client.Phone, client.Email), nil
}

// publishClientCreated emits the client.created event. Publish failures
// never fail the originating request.
func publishClientCreated(ctx context.Context, producer EventProducer, client *entity.Client, origin string) {
	if producer == nil {
		return
	}

	payload := queue.ClientCreatedPayload{
		ClientID:     client.ID,
		Name:         client.Name,
		Company:      client.Company,
		Phone:        client.Phone,
		Email:        client.Email,
		Location:     client.Location,
		SourceLeadID: client.SourceLeadID,
		Origin:       origin,
	}

	if err := producer.PublishClientCreated(ctx, payload); err != nil {
		logging.Logger.WithError(err).Warn("failed to publish client.created event")
	}
}
