package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Location string `json:"location"`
	TimeZone string `json:"timeZone,omitempty"`

	// SourceLeadID links a converted client back to the lead it came from.
	// Empty for clients created directly.
	SourceLeadID string `json:"sourceLeadId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewClient(name, company, phone, email, location, timeZone string) (*Client, error) {
	client := &Client{
		ID:        uuid.New().String(),
		Name:      name,
		Company:   company,
		Phone:     phone,
		Email:     email,
		Location:  location,
		TimeZone:  timeZone,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	return client, nil
}

// NewClientFromLead copies the lead's identity fields and records the
// provenance link.
func NewClientFromLead(lead *Lead) (*Client, error) {
	client, err := NewClient(lead.ContactName, lead.CompanyName, lead.Phone, lead.Email, lead.Location, "")
	if err != nil {
		return nil, err
	}
	client.SourceLeadID = lead.ID
	return client, nil
}

func (c *Client) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Company == "" {
		return errors.New("company is required")
	}
	if c.Phone == "" {
		return errors.New("phone is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if c.Location == "" {
		return errors.New("location is required")
	}
	return nil
}
