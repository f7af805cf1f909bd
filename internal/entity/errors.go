package entity

import "errors"

var (
	ErrClientEmailExists = errors.New("client email already exists")
	ErrClientPhoneExists = errors.New("client phone already exists")
	ErrClientNotFound    = errors.New("client not found")

	ErrLeadNotFound         = errors.New("lead not found")
	ErrLeadAlreadyConverted = errors.New("lead already converted")
	ErrInvalidStage         = errors.New("unknown lead stage")
	ErrStageTransition      = errors.New("illegal stage transition")

	ErrContactNotFound = errors.New("contact not found")
	ErrUserNotFound    = errors.New("user not found")
)
