package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Requirements maps a caller-defined period label (usually a month name)
// to a demand count. Labels are open-ended on purpose.
type Requirements map[string]int

// Total sums the demand across all periods.
func (r Requirements) Total() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

// Value stores requirements as JSONB.
func (r Requirements) Value() (driver.Value, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r)
}

func (r *Requirements) Scan(src interface{}) error {
	if src == nil {
		*r = Requirements{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("requirements: cannot scan %T", src)
	}
	return json.Unmarshal(b, r)
}

type Lead struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	CompanyName  string       `json:"companyName"`
	ContactName  string       `json:"contactName"`
	Phone        string       `json:"phone"`
	Email        string       `json:"email"`
	Description  string       `json:"description"`
	CurrentStage Stage        `json:"currentStage"`
	Location     string       `json:"location"`
	TeamID       string       `json:"team,omitempty"`
	AssignedTo   string       `json:"assignedTo,omitempty"`
	EmployeeID   string       `json:"employeeID"`
	UserName     string       `json:"userName"`
	Requirements Requirements `json:"requirements"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func NewLead(title, companyName, contactName, phone, email, description, location, employeeID, userName string) (*Lead, error) {
	lead := &Lead{
		ID:           uuid.New().String(),
		Title:        title,
		CompanyName:  companyName,
		ContactName:  contactName,
		Phone:        phone,
		Email:        email,
		Description:  description,
		CurrentStage: StageNewLead,
		Location:     location,
		EmployeeID:   employeeID,
		UserName:     userName,
		Requirements: Requirements{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Title == "" {
		return errors.New("title is required")
	}
	if l.CompanyName == "" {
		return errors.New("companyName is required")
	}
	if l.ContactName == "" {
		return errors.New("contactName is required")
	}
	if l.Phone == "" {
		return errors.New("phone is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if l.EmployeeID == "" {
		return errors.New("employeeID is required")
	}
	return nil
}

// Convert moves the lead into its terminal stage. It fails when the lead
// was already converted.
func (l *Lead) Convert() error {
	if l.CurrentStage == StageConverted {
		return ErrLeadAlreadyConverted
	}
	l.CurrentStage = StageConverted
	l.UpdatedAt = time.Now()
	return nil
}
