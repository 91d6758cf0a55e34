package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ops-portal/internal/data/entity"
	"ops-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrDuplicateUser is returned when an insert or update collides with
// another user's email or employee id.
var ErrDuplicateUser = errors.New("duplicate user email or employee id")

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (*entity.User, error)
	FindDuplicateForOther(ctx context.Context, email, employeeID string, excludeID uuid.UUID) (*entity.User, error)
	FindAllWithCustomerCount(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	SetOTP(ctx context.Context, id uuid.UUID, otp string, expiry time.Time) error
	ClearOTPOpenResetWindow(ctx context.Context, id uuid.UUID, until time.Time) error
	UpdatePasswordWithResetWindow(ctx context.Context, email, passwordHash string) (bool, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, employee_id, name, email, contact, password, role,
	       otp, otp_expiry, reset_verified_until, created_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.EmployeeID,
		&user.Name,
		&user.Email,
		&user.Contact,
		&user.PasswordHash,
		&user.Role,
		&user.OTP,
		&user.OTPExpiry,
		&user.ResetVerifiedUntil,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user row. A unique-constraint collision on email or
// employee_id comes back as ErrDuplicateUser.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, employee_id, name, email, contact, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.EmployeeID,
		user.Name,
		user.Email,
		user.Contact,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "") {
			return ErrDuplicateUser
		}
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("employee_id", user.EmployeeID),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

// FindByEmailOrEmployeeID is the registration conflict check
func (ur *userRepository) FindByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR employee_id = $2 LIMIT 1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email, employeeID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to check duplicate user",
			zap.Error(err),
			zap.String("email", email),
			zap.String("employee_id", employeeID),
		)
		return nil, fmt.Errorf("check duplicate user %s: %w", email, err)
	}

	return user, nil
}

// FindDuplicateForOther is the update conflict check: does any OTHER user
// already hold this email or employee id
func (ur *userRepository) FindDuplicateForOther(ctx context.Context, email, employeeID string, excludeID uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE (email = $1 OR employee_id = $2) AND id != $3 LIMIT 1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email, employeeID, excludeID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to check duplicate for other user",
			zap.Error(err),
			zap.String("email", email),
			zap.String("employee_id", employeeID),
		)
		return nil, fmt.Errorf("check duplicate for other %s: %w", email, err)
	}

	return user, nil
}

// FindAllWithCustomerCount lists every user with the number of customers
// they own, for the admin employee listing
func (ur *userRepository) FindAllWithCustomerCount(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.employee_id, u.name, u.email, u.contact, u.role, u.created_at,
		       COUNT(c.id) AS customer_count
		FROM users u
		LEFT JOIN customers c ON u.id = c.created_by
		GROUP BY u.id, u.employee_id, u.name, u.email, u.contact, u.role, u.created_at
		ORDER BY u.name
	`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		err := rows.Scan(
			&user.ID,
			&user.EmployeeID,
			&user.Name,
			&user.Email,
			&user.Contact,
			&user.Role,
			&user.CreatedAt,
			&user.CustomerCount,
		)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

// Update rewrites the admin-editable profile fields and returns the
// updated row, or nil when the user does not exist
func (ur *userRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		UPDATE users
		SET employee_id = $2, name = $3, email = $4, contact = $5, role = $6
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(ur.db.QueryRow(ctx, query,
		user.ID,
		user.EmployeeID,
		user.Name,
		user.Email,
		user.Contact,
		user.Role,
	))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, ErrDuplicateUser
		}
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return nil, fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	return updated, nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	result, err := ur.db.Exec(ctx, query, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return false, fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	ur.log.Info("User deleted", zap.String("id", id.String()))
	return true, nil
}

// SetOTP stores a fresh OTP and its expiry on the user row
func (ur *userRepository) SetOTP(ctx context.Context, id uuid.UUID, otp string, expiry time.Time) error {
	query := `UPDATE users SET otp = $2, otp_expiry = $3 WHERE id = $1`

	_, err := ur.db.Exec(ctx, query, id, otp, expiry)
	if err != nil {
		ur.log.Error("Failed to store OTP",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("store OTP for %s: %w", id.String(), err)
	}

	return nil
}

// ClearOTPOpenResetWindow consumes the OTP (single use) and opens the
// window during which reset-password is allowed
func (ur *userRepository) ClearOTPOpenResetWindow(ctx context.Context, id uuid.UUID, until time.Time) error {
	query := `
		UPDATE users
		SET otp = NULL, otp_expiry = NULL, reset_verified_until = $2
		WHERE id = $1
	`

	_, err := ur.db.Exec(ctx, query, id, until)
	if err != nil {
		ur.log.Error("Failed to clear OTP",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("clear OTP for %s: %w", id.String(), err)
	}

	return nil
}

// UpdatePasswordWithResetWindow overwrites the password hash and closes the
// reset window in one statement. Returns false when the window is not open,
// so a stale or never-verified reset attempt cannot change the password.
func (ur *userRepository) UpdatePasswordWithResetWindow(ctx context.Context, email, passwordHash string) (bool, error) {
	query := `
		UPDATE users
		SET password = $2, reset_verified_until = NULL
		WHERE email = $1 AND reset_verified_until IS NOT NULL AND reset_verified_until > NOW()
	`

	result, err := ur.db.Exec(ctx, query, email, passwordHash)
	if err != nil {
		ur.log.Error("Failed to reset password",
			zap.Error(err),
			zap.String("email", email),
		)
		return false, fmt.Errorf("reset password for %s: %w", email, err)
	}

	return result.RowsAffected() > 0, nil
}
