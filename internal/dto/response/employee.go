package response

import (
	"time"

	"ops-portal/internal/data/entity"
)

// EmployeeResponse is the admin management view, including how many
// customers the employee owns
type EmployeeResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Contact       string          `json:"contact"`
	Role          entity.UserRole `json:"role"`
	CustomerCount int64           `json:"customer_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Count     int                `json:"count"`
}

type EmployeeEnvelope struct {
	Message  string       `json:"message,omitempty"`
	Employee UserResponse `json:"employee"`
}

type RegisterEmployeeResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

func EmployeeToResponse(user *entity.User) EmployeeResponse {
	return EmployeeResponse{
		ID:            user.ID.String(),
		EmployeeID:    user.EmployeeID,
		Name:          user.Name,
		Email:         user.Email,
		Contact:       user.Contact,
		Role:          user.Role,
		CustomerCount: user.CustomerCount,
		CreatedAt:     user.CreatedAt,
	}
}

func EmployeesToResponse(users []*entity.User) EmployeeListResponse {
	employees := make([]EmployeeResponse, 0, len(users))
	for _, u := range users {
		employees = append(employees, EmployeeToResponse(u))
	}
	return EmployeeListResponse{Employees: employees, Count: len(employees)}
}
