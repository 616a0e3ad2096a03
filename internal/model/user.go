// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a login principal. Email uniqueness is global, not per
// organization; the organization id is immutable after creation.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"type:text;not null" json:"-"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
