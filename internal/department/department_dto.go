package department

type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// ListDepartmentsRequest carries pagination and sort query params.
type ListDepartmentsRequest struct {
	Page int    `form:"page,default=0" binding:"min=0"`
	Size int    `form:"size,default=20" binding:"min=1"`
	Sort string `form:"sort"`
}

type DepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}
