package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// ValidRole reports whether the role is one of the two supported roles
func ValidRole(role string) bool {
	return role == string(RoleAdmin) || role == string(RoleEmployee)
}

// User is an account row. OTP fields are transient state for password
// reset; ResetVerifiedUntil marks a window opened by a successful OTP
// verification during which reset-password is allowed.
type User struct {
	ID                 uuid.UUID  `db:"id"`
	EmployeeID         string     `db:"employee_id"`
	Name               string     `db:"name"`
	Email              string     `db:"email"`
	Contact            string     `db:"contact"`
	PasswordHash       string     `db:"password"`
	Role               UserRole   `db:"role"`
	OTP                *string    `db:"otp"`
	OTPExpiry          *time.Time `db:"otp_expiry"`
	ResetVerifiedUntil *time.Time `db:"reset_verified_until"`
	CreatedAt          time.Time  `db:"created_at"`

	// CustomerCount is populated by the employee list join, not a column
	CustomerCount int64 `db:"-"`
}
