package repository

import (
	"errors"

	"ops-portal/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Customer CustomerRepository
	Camp     CampRepository
	Card     CardRepository
	Claim    ClaimRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Camp:     NewCampRepository(db, log),
		Card:     NewCardRepository(db, log),
		Claim:    NewClaimRepository(db, log),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation on the named constraint (any constraint when name is empty).
// The schema backs every handler-level duplicate pre-check, so two
// concurrent requests passing the same pre-check still cannot both insert.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return constraint == "" || pgErr.ConstraintName == constraint
	}
	return false
}
