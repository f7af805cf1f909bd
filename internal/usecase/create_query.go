package usecase

import (
	"context"

	"github.com/workvine/crm-backend/internal/entity"
)

type CreateQueryUseCase struct {
	Queries QueryRepository
}

func NewCreateQueryUseCase(queries QueryRepository) *CreateQueryUseCase {
	return &CreateQueryUseCase{Queries: queries}
}

func (uc *CreateQueryUseCase) Execute(ctx context.Context, input CreateQueryInput) (*entity.Query, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	query, err := entity.NewQuery(input.Name, input.Email, input.Message)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Queries.Create(ctx, query); err != nil {
		return nil, err
	}

	return query, nil
}
