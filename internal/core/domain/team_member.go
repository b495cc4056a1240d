package domain

import "time"

const (
	MemberActive   = "active"
	MemberInactive = "inactive"
)

// TeamMember is an agency employee. Members may manage clients, answer
// client responses and carry their own team KPIs.
type TeamMember struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Phone      string    `json:"phone"`
	HireDate   *Date     `json:"hire_date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TeamFilter narrows team listings.
type TeamFilter struct {
	Status     string
	Department string
	Search     string
	Page       int
	Limit      int
}
