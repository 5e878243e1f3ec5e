package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	FirstName    string          `json:"firstName" binding:"required,max=100"`
	LastName     string          `json:"lastName" binding:"required,max=100"`
	Email        string          `json:"email" binding:"required,email,max=254"`
	Phone        *string         `json:"phone" binding:"omitempty,max=20"`
	Designation  string          `json:"designation" binding:"required,max=100"`
	Salary       decimal.Decimal `json:"salary" binding:"required"`
	DepartmentID string          `json:"departmentId" binding:"required,uuid"`
	Role         string          `json:"role" binding:"required,oneof=ADMIN HR EMPLOYEE"`
}

// UpdateEmployeeRequest is a full replacement: every field overwrites
// the stored value, including status.
type UpdateEmployeeRequest struct {
	FirstName    string          `json:"firstName" binding:"required,max=100"`
	LastName     string          `json:"lastName" binding:"required,max=100"`
	Email        string          `json:"email" binding:"required,email,max=254"`
	Phone        *string         `json:"phone" binding:"omitempty,max=20"`
	Designation  string          `json:"designation" binding:"required,max=100"`
	Salary       decimal.Decimal `json:"salary" binding:"required"`
	DepartmentID string          `json:"departmentId" binding:"required,uuid"`
	Role         string          `json:"role" binding:"required,oneof=ADMIN HR EMPLOYEE"`
	Status       string          `json:"status" binding:"required,oneof=ACTIVE INACTIVE"`
}

// ListEmployeesRequest carries pagination, sort and the optional
// equality filters. Absent filters contribute no constraint.
type ListEmployeesRequest struct {
	Page         int    `form:"page,default=0" binding:"min=0"`
	Size         int    `form:"size,default=20" binding:"min=1"`
	Sort         string `form:"sort"`
	DepartmentID string `form:"departmentId" binding:"omitempty,uuid"`
	Role         string `form:"role" binding:"omitempty,oneof=ADMIN HR EMPLOYEE"`
	Status       string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone,omitempty"`
	Designation  string          `json:"designation"`
	Salary       decimal.Decimal `json:"salary"`
	DepartmentID string          `json:"departmentId"`
	Role         string          `json:"role"`
	Status       string          `json:"status"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}
