package handler

import (
	"strings"

	"github.com/agencypulse/kpi-dashboard/internal/core/domain"
)

type clientRequest struct {
	Name             string       `json:"name"               validate:"required,max=255"`
	Industry         string       `json:"industry"           validate:"max=100"`
	ContactName      string       `json:"contact_name"       validate:"max=255"`
	ContactEmail     string       `json:"contact_email"      validate:"omitempty,email"`
	Phone            string       `json:"phone"              validate:"max=50"`
	Website          string       `json:"website"            validate:"max=255"`
	Status           string       `json:"status"             validate:"omitempty,oneof=active paused churned"`
	MonthlyBudget    float64      `json:"monthly_budget"     validate:"gte=0"`
	AccountManagerID *int64       `json:"account_manager_id" validate:"omitempty,gt=0"`
	StartDate        *domain.Date `json:"start_date"`
	Notes            string       `json:"notes"`
}

func (r clientRequest) toDomain() *domain.Client {
	c := &domain.Client{
		Name:             r.Name,
		Industry:         strings.TrimSpace(r.Industry),
		ContactName:      strings.TrimSpace(r.ContactName),
		ContactEmail:     r.ContactEmail,
		Phone:            strings.TrimSpace(r.Phone),
		Website:          strings.TrimSpace(r.Website),
		Status:           r.Status,
		MonthlyBudget:    r.MonthlyBudget,
		AccountManagerID: r.AccountManagerID,
		Notes:            r.Notes,
	}
	if r.StartDate != nil && !r.StartDate.IsZero() {
		d := *r.StartDate
		c.StartDate = &d
	}
	return c
}

type teamMemberRequest struct {
	Name       string       `json:"name"       validate:"required,max=255"`
	Email      string       `json:"email"      validate:"required,email"`
	Position   string       `json:"position"   validate:"max=100"`
	Department string       `json:"department" validate:"max=100"`
	Phone      string       `json:"phone"      validate:"max=50"`
	HireDate   *domain.Date `json:"hire_date"`
	Status     string       `json:"status"     validate:"omitempty,oneof=active inactive"`
}

func (r teamMemberRequest) toDomain() *domain.TeamMember {
	m := &domain.TeamMember{
		Name:       r.Name,
		Email:      r.Email,
		Position:   strings.TrimSpace(r.Position),
		Department: strings.TrimSpace(r.Department),
		Phone:      strings.TrimSpace(r.Phone),
		Status:     r.Status,
	}
	if r.HireDate != nil && !r.HireDate.IsZero() {
		d := *r.HireDate
		m.HireDate = &d
	}
	return m
}
