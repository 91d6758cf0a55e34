package response

import (
	"ops-portal/internal/data/entity"
)

// UserResponse is the public view of a user; never carries the password
// hash or OTP state
type UserResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Contact    string          `json:"contact"`
	Role       entity.UserRole `json:"role"`
}

// AuthResponse is the register/login body: a fresh token plus the public
// user fields
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse wraps the authenticated user's own record
type ProfileResponse struct {
	User UserResponse `json:"user"`
}

// OTPResponse is the forgot-password / verify-otp body
type OTPResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

// MessageResponse is a bare confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		EmployeeID: user.EmployeeID,
		Name:       user.Name,
		Email:      user.Email,
		Contact:    user.Contact,
		Role:       user.Role,
	}
}
