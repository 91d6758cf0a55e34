package request

// UpdateEmployeeRequest is the admin profile edit; password changes go
// through the reset flow instead
type UpdateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Contact    string `json:"contact" validate:"required"`
	Role       string `json:"role" validate:"required"`
}
