package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/shashitejag2k2/employee-management/internal/employee"
)

// Credential is the auth identity linked 1:1 to an employee. It is
// written exactly once, at registration; no update or delete exists.
type Credential struct {
	EmployeeID   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Email        string        `gorm:"size:254;not null;uniqueIndex:uq_credential_email,expression:LOWER(email)"`
	Role         employee.Role `gorm:"size:20;not null"`
	PasswordHash string        `gorm:"size:255;not null"`
	CreatedAt    time.Time     `gorm:"autoCreateTime"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime"`
}
