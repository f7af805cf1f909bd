package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	QueryStatusPending  = "pending"
	QueryStatusResolved = "resolved"
)

// Query is an inbound contact-us submission.
type Query struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewQuery(name, email, message string) (*Query, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	if message == "" {
		return nil, errors.New("message is required")
	}
	return &Query{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    QueryStatusPending,
		CreatedAt: time.Now(),
	}, nil
}
