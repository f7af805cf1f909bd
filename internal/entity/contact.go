package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is shared reference data: one row per (phoneNo, email) pair,
// written whenever a lead or client introduces a person we have not seen.
type Contact struct {
	ID          string    `json:"id"`
	ContactName string    `json:"contactName"`
	CompanyName string    `json:"companyName"`
	PhoneNo     string    `json:"phoneNo"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewContact(contactName, companyName, phoneNo, email string) *Contact {
	return &Contact{
		ID:          uuid.New().String(),
		ContactName: contactName,
		CompanyName: companyName,
		PhoneNo:     phoneNo,
		Email:       email,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
