package usecase

import (
	"errors"

	"github.com/workvine/crm-backend/internal/entity"
)

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeEmailConflict   = "EMAIL_CONFLICT"
	CodePhoneConflict   = "PHONE_CONFLICT"
	CodeClientNotFound  = "CLIENT_NOT_FOUND"
	CodeLeadNotFound    = "LEAD_NOT_FOUND"
	CodeInvalidStage    = "INVALID_STAGE"
	CodeStageTransition = "STAGE_TRANSITION"
	CodeLeadConverted   = "LEAD_ALREADY_CONVERTED"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

// wrapEntityError lifts sentinel store errors into coded domain errors so
// handlers can pick a status without knowing the entity package.
func wrapEntityError(err error) error {
	switch {
	case errors.Is(err, entity.ErrClientEmailExists):
		return &DomainError{Code: CodeEmailConflict, Message: "client email already exists"}
	case errors.Is(err, entity.ErrClientPhoneExists):
		return &DomainError{Code: CodePhoneConflict, Message: "client phone no. already exists"}
	case errors.Is(err, entity.ErrClientNotFound):
		return &DomainError{Code: CodeClientNotFound, Message: "client not found"}
	case errors.Is(err, entity.ErrLeadNotFound):
		return &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
	case errors.Is(err, entity.ErrLeadAlreadyConverted):
		return &DomainError{Code: CodeLeadConverted, Message: "lead already converted"}
	case errors.Is(err, entity.ErrInvalidStage):
		return &DomainError{Code: CodeInvalidStage, Message: "unknown lead stage"}
	case errors.Is(err, entity.ErrStageTransition):
		return &DomainError{Code: CodeStageTransition, Message: "illegal stage transition"}
	}
	return err
}
