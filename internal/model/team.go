// internal/model/team.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Description    *string   `gorm:"type:text" json:"description"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null" json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Employees []Employee `gorm:"many2many:team_employees" json:"employees"`
}

// TeamEmployee is the assignment join row. The composite unique index is the
// enforcement point for at-most-one assignment per (employee, team) pair;
// concurrent assigns race on the constraint, not on application checks.
type TeamEmployee struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_employees_employee_team" json:"employee_id"`
	TeamID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_employees_employee_team" json:"team_id"`
	CreatedAt  time.Time `json:"created_at"`

	Employee *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Team     *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// TableName keeps the join table shared with the many2many associations.
func (TeamEmployee) TableName() string {
	return "team_employees"
}
