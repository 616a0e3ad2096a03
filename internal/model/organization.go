// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the tenant boundary. Every user, employee, team and log
// row belongs to exactly one organization.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
