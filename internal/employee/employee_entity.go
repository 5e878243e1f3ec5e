package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleEmployee Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type Employee struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FirstName    string          `gorm:"size:100;not null"`
	LastName     string          `gorm:"size:100;not null"`
	Email        string          `gorm:"size:254;not null;uniqueIndex:uq_employee_email,expression:LOWER(email)"`
	Phone        *string         `gorm:"size:20"`
	Designation  string          `gorm:"size:100;not null"`
	Salary       decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	DepartmentID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Role         Role            `gorm:"size:20;not null"`
	Status       Status          `gorm:"size:20;not null;default:'ACTIVE'"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}
