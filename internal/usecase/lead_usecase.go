package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/workvine/crm-backend/internal/entity"
)

type LeadUseCase struct {
	Leads    LeadRepository
	Contacts ContactRepository
}

func NewLeadUseCase(leads LeadRepository, contacts ContactRepository) *LeadUseCase {
	return &LeadUseCase{
		Leads:    leads,
		Contacts: contacts,
	}
}

func (uc *LeadUseCase) Create(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	lead, err := entity.NewLead(
		input.Title, input.CompanyName, input.ContactName, input.Phone,
		input.Email, input.Description, input.Location, input.EmployeeID,
		input.UserName,
	)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}
	lead.TeamID = input.TeamID
	lead.AssignedTo = input.AssignedTo
	if input.Requirements != nil {
		lead.Requirements = input.Requirements
	}

	contact, err := uc.contactFor(ctx, lead)
	if err != nil {
		return nil, err
	}

	if err := uc.Leads.Create(ctx, lead, contact); err != nil {
		return nil, wrapEntityError(err)
	}

	return lead, nil
}

func (uc *LeadUseCase) Get(ctx context.Context, id string) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, wrapEntityError(err)
	}
	return lead, nil
}

func (uc *LeadUseCase) List(ctx context.Context) ([]entity.Lead, error) {
	return uc.Leads.FindAll(ctx)
}

func (uc *LeadUseCase) Update(ctx context.Context, id string, input UpdateLeadInput) (*entity.Lead, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, wrapEntityError(err)
	}

	if input.Title != "" {
		lead.Title = input.Title
	}
	if input.CompanyName != "" {
		lead.CompanyName = input.CompanyName
	}
	if input.ContactName != "" {
		lead.ContactName = input.ContactName
	}
	if input.Phone != "" {
		lead.Phone = input.Phone
	}
	if input.Email != "" {
		lead.Email = input.Email
	}
	if input.Description != "" {
		lead.Description = input.Description
	}
	if input.Location != "" {
		lead.Location = input.Location
	}
	if input.TeamID != "" {
		lead.TeamID = input.TeamID
	}
	if input.AssignedTo != "" {
		lead.AssignedTo = input.AssignedTo
	}
	if input.Requirements != nil {
		lead.Requirements = input.Requirements
	}
	lead.UpdatedAt = time.Now()

	var contact *entity.Contact
	if input.Phone != "" || input.Email != "" {
		if contact, err = uc.contactFor(ctx, lead); err != nil {
			return nil, err
		}
	}

	if err := uc.Leads.Update(ctx, lead, contact); err != nil {
		return nil, wrapEntityError(err)
	}

	return lead, nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.Leads.Delete(ctx, id); err != nil {
		return wrapEntityError(err)
	}
	return nil
}

// ChangeStage moves the lead through the closed stage machine.
func (uc *LeadUseCase) ChangeStage(ctx context.Context, id, stageName string) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		return nil, wrapEntityError(err)
	}

	next, err := entity.ParseStage(stageName)
	if err != nil {
		return nil, wrapEntityError(err)
	}

	if err := lead.CurrentStage.CanTransitionTo(next); err != nil {
		return nil, wrapEntityError(err)
	}

	lead.CurrentStage = next
	lead.UpdatedAt = time.Now()

	if err := uc.Leads.Update(ctx, lead, nil); err != nil {
		return nil, wrapEntityError(err)
	}

	return lead, nil
}

func (uc *LeadUseCase) contactFor(ctx context.Context, lead *entity.Lead) (*entity.Contact, error) {
	_, err := uc.Contacts.FindByPhoneEmail(ctx, lead.Phone, lead.Email)
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, entity.ErrContactNotFound) {
		return nil, err
	}
	return entity.NewContact(lead.ContactName, lead.CompanyName, lead.Phone, lead.Email), nil
}
