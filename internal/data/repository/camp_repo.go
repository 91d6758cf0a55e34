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

type CampRepository interface {
	Create(ctx context.Context, camp *entity.Camp) error
	FindAll(ctx context.Context) ([]*entity.Camp, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Camp, error)
	Update(ctx context.Context, camp *entity.Camp) (*entity.Camp, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindAssigned(ctx context.Context, userID uuid.UUID) ([]*entity.Camp, error)
	UpdateStatusAssigned(ctx context.Context, id uuid.UUID, status entity.CampStatus, userID uuid.UUID) (*entity.Camp, error)
}

type campRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCampRepository(db database.PgxIface, log *zap.Logger) CampRepository {
	return &campRepository{
		db:  db,
		log: log.With(zap.String("repository", "camp")),
	}
}

const campColumns = `c.id, c.camp_date, c.location, c.location_link, c.phone_number,
	       c.status, c.conducted_by, c.assigned_to, c.created_by, c.created_at, c.last_updated`

// assignedNames resolves assigned user-id strings to display names
const assignedNames = `ARRAY(
	         SELECT u2.name FROM users u2 WHERE u2.id::text = ANY(c.assigned_to)
	       ) AS assigned_employee_names`

func scanCampRow(row pgx.Row, withJoins bool) (*entity.Camp, error) {
	var c entity.Camp
	dest := []any{
		&c.ID,
		&c.CampDate,
		&c.Location,
		&c.LocationLink,
		&c.PhoneNumber,
		&c.Status,
		&c.ConductedBy,
		&c.AssignedTo,
		&c.CreatedBy,
		&c.CreatedAt,
		&c.LastUpdated,
	}
	if withJoins {
		dest = append(dest, &c.CreatedByName, &c.AssignedEmployeeNames)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

func (cr *campRepository) Create(ctx context.Context, camp *entity.Camp) error {
	query := `
		INSERT INTO camps (id, camp_date, location, location_link, phone_number,
		                   status, conducted_by, assigned_to, created_by, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := cr.db.Exec(ctx, query,
		camp.ID,
		camp.CampDate,
		camp.Location,
		camp.LocationLink,
		camp.PhoneNumber,
		camp.Status,
		camp.ConductedBy,
		camp.AssignedTo,
		camp.CreatedBy,
		camp.CreatedAt,
		camp.LastUpdated,
	)

	if err != nil {
		cr.log.Error("Failed to create camp",
			zap.Error(err),
			zap.String("location", camp.Location),
		)
		return fmt.Errorf("create camp: %w", err)
	}

	return nil
}

func (cr *campRepository) FindAll(ctx context.Context) ([]*entity.Camp, error) {
	query := `
		SELECT ` + campColumns + `, u.name AS created_by_name, ` + assignedNames + `
		FROM camps c
		LEFT JOIN users u ON c.created_by = u.id
		ORDER BY c.camp_date DESC
	`

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		cr.log.Error("Failed to list camps", zap.Error(err))
		return nil, fmt.Errorf("list camps: %w", err)
	}
	defer rows.Close()

	var camps []*entity.Camp
	for rows.Next() {
		c, err := scanCampRow(rows, true)
		if err != nil {
			cr.log.Error("Failed to scan camp row", zap.Error(err))
			return nil, fmt.Errorf("scan camp row: %w", err)
		}
		camps = append(camps, c)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate camp rows: %w", err)
	}

	return camps, nil
}

func (cr *campRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Camp, error) {
	query := `
		SELECT ` + campColumns + `, u.name AS created_by_name, ` + assignedNames + `
		FROM camps c
		LEFT JOIN users u ON c.created_by = u.id
		WHERE c.id = $1
	`

	c, err := scanCampRow(cr.db.QueryRow(ctx, query, id), true)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find camp",
			zap.Error(err),
			zap.String("camp_id", id.String()),
		)
		return nil, fmt.Errorf("find camp %s: %w", id.String(), err)
	}

	return c, nil
}

// Update rewrites all admin-editable fields; returns nil when the camp
// does not exist
func (cr *campRepository) Update(ctx context.Context, camp *entity.Camp) (*entity.Camp, error) {
	query := `
		UPDATE camps c
		SET camp_date = $2, location = $3, location_link = $4, phone_number = $5,
		    status = $6, conducted_by = $7, assigned_to = $8, last_updated = CURRENT_TIMESTAMP
		WHERE c.id = $1
		RETURNING ` + campColumns

	updated, err := scanCampRow(cr.db.QueryRow(ctx, query,
		camp.ID,
		camp.CampDate,
		camp.Location,
		camp.LocationLink,
		camp.PhoneNumber,
		camp.Status,
		camp.ConductedBy,
		camp.AssignedTo,
	), false)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to update camp",
			zap.Error(err),
			zap.String("camp_id", camp.ID.String()),
		)
		return nil, fmt.Errorf("update camp %s: %w", camp.ID.String(), err)
	}

	return updated, nil
}

func (cr *campRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM camps WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete camp",
			zap.Error(err),
			zap.String("camp_id", id.String()),
		)
		return false, fmt.Errorf("delete camp %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// FindAssigned lists camps whose assigned_to contains the user, soonest first
func (cr *campRepository) FindAssigned(ctx context.Context, userID uuid.UUID) ([]*entity.Camp, error) {
	query := `
		SELECT ` + campColumns + `, u.name AS created_by_name, ` + assignedNames + `
		FROM camps c
		LEFT JOIN users u ON c.created_by = u.id
		WHERE $1 = ANY(c.assigned_to)
		ORDER BY c.camp_date ASC
	`

	rows, err := cr.db.Query(ctx, query, userID.String())
	if err != nil {
		cr.log.Error("Failed to list assigned camps",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list assigned camps: %w", err)
	}
	defer rows.Close()

	var camps []*entity.Camp
	for rows.Next() {
		c, err := scanCampRow(rows, true)
		if err != nil {
			cr.log.Error("Failed to scan camp row", zap.Error(err))
			return nil, fmt.Errorf("scan camp row: %w", err)
		}
		camps = append(camps, c)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate camp rows: %w", err)
	}

	return camps, nil
}

// UpdateStatusAssigned transitions the status with the assignment predicate
// inside the UPDATE itself, so losing the assignment between a read and the
// write cannot be exploited. Returns nil when the camp is missing or the
// user is not assigned to it.
func (cr *campRepository) UpdateStatusAssigned(ctx context.Context, id uuid.UUID, status entity.CampStatus, userID uuid.UUID) (*entity.Camp, error) {
	query := `
		UPDATE camps c
		SET status = $2, last_updated = CURRENT_TIMESTAMP
		WHERE c.id = $1 AND $3 = ANY(c.assigned_to)
		RETURNING ` + campColumns

	updated, err := scanCampRow(cr.db.QueryRow(ctx, query, id, status, userID.String()), false)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to update camp status",
			zap.Error(err),
			zap.String("camp_id", id.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("update camp %s status: %w", id.String(), err)
	}

	return updated, nil
}
