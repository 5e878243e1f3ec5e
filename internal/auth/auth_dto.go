package auth

import "github.com/shopspring/decimal"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginResponse carries the issued opaque bearer token. The token
// embeds no claims; it is advisory metadata for the caller.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// RegisterRequest is the new-employee field set plus the raw password.
// The password is hashed before storage and never persisted or logged.
type RegisterRequest struct {
	FirstName    string          `json:"firstName" binding:"required,max=100"`
	LastName     string          `json:"lastName" binding:"required,max=100"`
	Email        string          `json:"email" binding:"required,email,max=254"`
	Phone        *string         `json:"phone" binding:"omitempty,max=20"`
	Designation  string          `json:"designation" binding:"required,max=100"`
	Salary       decimal.Decimal `json:"salary" binding:"required"`
	DepartmentID string          `json:"departmentId" binding:"required,uuid"`
	Role         string          `json:"role" binding:"required,oneof=ADMIN HR EMPLOYEE"`
	Password     string          `json:"password" binding:"required,min=8,max=128"`
}
