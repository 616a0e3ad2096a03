// internal/model/employee.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a managed HR record, distinct from the User login principal.
type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Email          string    `gorm:"type:text;not null" json:"email"`
	Position       *string   `gorm:"type:text" json:"position"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Teams []Team `gorm:"many2many:team_employees" json:"teams"`
}
