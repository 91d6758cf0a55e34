package repository

import (
	"context"
	"fmt"

	"ops-portal/internal/data/entity"
	"ops-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Customer, error)
	FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer, ownerID *uuid.UUID) (*entity.Customer, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (bool, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = `c.id, c.customer_name, c.phone_number, c.email, c.type_of_work,
	       c.discussed_amount, c.paid_amount, c.pending_amount, c.credit_amount,
	       c.mode_of_payment, c.created_by, c.created_at, c.updated_at`

func scanCustomer(row pgx.Row, withOwnerName bool) (*entity.Customer, error) {
	var c entity.Customer
	dest := []any{
		&c.ID,
		&c.CustomerName,
		&c.PhoneNumber,
		&c.Email,
		&c.TypeOfWork,
		&c.DiscussedAmount,
		&c.PaidAmount,
		&c.PendingAmount,
		&c.CreditAmount,
		&c.ModeOfPayment,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
	if withOwnerName {
		dest = append(dest, &c.CreatedByName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

func (cr *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, customer_name, phone_number, email, type_of_work,
		                       discussed_amount, paid_amount, pending_amount, credit_amount,
		                       mode_of_payment, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := cr.db.Exec(ctx, query,
		customer.ID,
		customer.CustomerName,
		customer.PhoneNumber,
		customer.Email,
		customer.TypeOfWork,
		customer.DiscussedAmount,
		customer.PaidAmount,
		customer.PendingAmount,
		customer.CreditAmount,
		customer.ModeOfPayment,
		customer.CreatedBy,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("customer_name", customer.CustomerName),
			zap.String("created_by", customer.CreatedBy.String()),
		)
		return fmt.Errorf("create customer: %w", err)
	}

	return nil
}

func (cr *customerRepository) queryList(ctx context.Context, query string, args ...any) ([]*entity.Customer, error) {
	rows, err := cr.db.Query(ctx, query, args...)
	if err != nil {
		cr.log.Error("Failed to list customers", zap.Error(err))
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows, true)
		if err != nil {
			cr.log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}

// FindAll is the admin view: every customer, newest first
func (cr *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `, u.name AS created_by_name
		FROM customers c
		LEFT JOIN users u ON c.created_by = u.id
		ORDER BY c.created_at DESC
	`
	return cr.queryList(ctx, query)
}

// FindByOwner is the employee view: only rows they created
func (cr *customerRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `, u.name AS created_by_name
		FROM customers c
		LEFT JOIN users u ON c.created_by = u.id
		WHERE c.created_by = $1
		ORDER BY c.created_at DESC
	`
	return cr.queryList(ctx, query, ownerID)
}

// FindByID returns the customer when it exists and passes the ownership
// scope; a nil ownerID (admin) skips the scope. Missing and not-owned rows
// are both reported as nil.
func (cr *customerRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `, u.name AS created_by_name
		FROM customers c
		LEFT JOIN users u ON c.created_by = u.id
		WHERE c.id = $1
	`
	args := []any{id}
	if ownerID != nil {
		query += ` AND c.created_by = $2`
		args = append(args, *ownerID)
	}

	c, err := scanCustomer(cr.db.QueryRow(ctx, query, args...), true)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find customer",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer %s: %w", id.String(), err)
	}

	return c, nil
}

// Update rewrites the customer in one statement with the ownership scope
// in the WHERE clause, so a check cannot race the mutation. Returns nil
// when the row is missing or not owned by the requester.
func (cr *customerRepository) Update(ctx context.Context, customer *entity.Customer, ownerID *uuid.UUID) (*entity.Customer, error) {
	query := `
		UPDATE customers c
		SET customer_name = $2, phone_number = $3, email = $4, type_of_work = $5,
		    discussed_amount = $6, paid_amount = $7, pending_amount = $8,
		    credit_amount = $9, mode_of_payment = $10, updated_at = CURRENT_TIMESTAMP
		WHERE c.id = $1
	`
	args := []any{
		customer.ID,
		customer.CustomerName,
		customer.PhoneNumber,
		customer.Email,
		customer.TypeOfWork,
		customer.DiscussedAmount,
		customer.PaidAmount,
		customer.PendingAmount,
		customer.CreditAmount,
		customer.ModeOfPayment,
	}
	if ownerID != nil {
		query += ` AND c.created_by = $11`
		args = append(args, *ownerID)
	}
	query += ` RETURNING ` + customerColumns

	updated, err := scanCustomer(cr.db.QueryRow(ctx, query, args...), false)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return nil, fmt.Errorf("update customer %s: %w", customer.ID.String(), err)
	}

	return updated, nil
}

// Delete removes the customer with the ownership scope in the WHERE clause.
// Cards and claims go with it via cascade. Returns false when nothing
// matched (missing or not owned).
func (cr *customerRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (bool, error) {
	query := `DELETE FROM customers WHERE id = $1`
	args := []any{id}
	if ownerID != nil {
		query += ` AND created_by = $2`
		args = append(args, *ownerID)
	}

	result, err := cr.db.Exec(ctx, query, args...)
	if err != nil {
		cr.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return false, fmt.Errorf("delete customer %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
