package entity

import (
	"strings"

	"github.com/google/uuid"
)

// User is a platform member who can be assigned maintenance work.
type User struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	OrganizationID string    `json:"organization_id"`
}

// DisplayName joins first and last name. It is empty when both are blank.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}

	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}
