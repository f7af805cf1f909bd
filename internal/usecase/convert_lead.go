package usecase

import (
	"context"

	"github.com/workvine/crm-backend/internal/entity"
)

// ConvertLeadUseCase turns a lead into a client. The client records where
// it came from and the lead ends up in its terminal stage, so conversion
// is visible from both sides and cannot run twice.
type ConvertLeadUseCase struct {
	Clients  ClientRepository
	Leads    LeadRepository
	Producer EventProducer
}

func NewConvertLeadUseCase(clients ClientRepository, leads LeadRepository, producer EventProducer) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{
		Clients:  clients,
		Leads:    leads,
		Producer: producer,
	}
}

func (uc *ConvertLeadUseCase) Execute(ctx context.Context, leadID string) (*entity.Client, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		return nil, wrapEntityError(err)
	}

	if err := lead.Convert(); err != nil {
		return nil, wrapEntityError(err)
	}

	client, err := entity.NewClientFromLead(lead)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	// Conversion goes through the same unique constraints as direct
	// creation; a lead whose email or phone already belongs to a client
	// surfaces as a conflict here.
	if err := uc.Clients.CreateFromLead(ctx, client, lead); err != nil {
		return nil, wrapEntityError(err)
	}

	publishClientCreated(ctx, uc.Producer, client, "conversion")

	return client, nil
}
