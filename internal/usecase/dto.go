package usecase

import "github.com/workvine/crm-backend/internal/entity"

type CreateClientInput struct {
	Name     string `json:"name" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Location string `json:"location" validate:"required"`
	TimeZone string `json:"timeZone" validate:"omitempty"`
}

// UpdateClientInput carries merge-on-update semantics: empty fields keep
// their stored value.
type UpdateClientInput struct {
	Name     string `json:"name" validate:"omitempty"`
	Company  string `json:"company" validate:"omitempty"`
	Phone    string `json:"phone" validate:"omitempty"`
	Email    string `json:"email" validate:"omitempty,email"`
	Location string `json:"location" validate:"omitempty"`
}

type CreateLeadInput struct {
	Title        string              `json:"title" validate:"required"`
	CompanyName  string              `json:"companyName" validate:"required"`
	ContactName  string              `json:"contactName" validate:"required"`
	Phone        string              `json:"phone" validate:"required"`
	Email        string              `json:"email" validate:"required,email"`
	Description  string              `json:"description" validate:"required"`
	Location     string              `json:"location" validate:"required"`
	TeamID       string              `json:"team" validate:"omitempty"`
	AssignedTo   string              `json:"assignedTo" validate:"omitempty"`
	EmployeeID   string              `json:"employeeID" validate:"required"`
	UserName     string              `json:"userName" validate:"required"`
	Requirements entity.Requirements `json:"requirements" validate:"omitempty"`
}

type UpdateLeadInput struct {
	Title        string              `json:"title" validate:"omitempty"`
	CompanyName  string              `json:"companyName" validate:"omitempty"`
	ContactName  string              `json:"contactName" validate:"omitempty"`
	Phone        string              `json:"phone" validate:"omitempty"`
	Email        string              `json:"email" validate:"omitempty,email"`
	Description  string              `json:"description" validate:"omitempty"`
	Location     string              `json:"location" validate:"omitempty"`
	TeamID       string              `json:"team" validate:"omitempty"`
	AssignedTo   string              `json:"assignedTo" validate:"omitempty"`
	Requirements entity.Requirements `json:"requirements" validate:"omitempty"`
}

type CreateQueryInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type AdminDashboardOutput struct {
	LeadData    *entity.LeadStats    `json:"leadData"`
	ProjectData *entity.ProjectStats `json:"projectData"`
	UserData    *entity.UserStats    `json:"userData"`
	ClientData  *entity.ClientStats  `json:"clientData"`
	QueryData   *entity.QueryStats   `json:"queryData"`
	ContactData *entity.ContactStats `json:"connectionData"`
	TeamData    *entity.TeamStats    `json:"teamData"`
}

type UserDashboardOutput struct {
	LeadData []entity.Lead `json:"leadData"`
}
