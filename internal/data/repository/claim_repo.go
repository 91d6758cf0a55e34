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

type ClaimRepository interface {
	Create(ctx context.Context, claim *entity.Claim) error
	FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Claim, error)
	FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Claim, error)
	Update(ctx context.Context, claim *entity.Claim, ownerID *uuid.UUID) (*entity.Claim, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Claim, error)
}

type claimRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClaimRepository(db database.PgxIface, log *zap.Logger) ClaimRepository {
	return &claimRepository{
		db:  db,
		log: log.With(zap.String("repository", "claim")),
	}
}

const claimColumns = `c.id, c.type_of_claim, c.process_state, c.discussed_amount,
	       c.paid_amount, c.pending_amount, c.card_id, c.created_by, c.created_at, c.updated_at`

// ownership of a claim runs through the owning card, not the claim row
const claimOwnedByCard = `c.card_id IN (SELECT cd.id FROM cards cd WHERE cd.created_by = `

func scanClaim(row pgx.Row, withOwnerName bool) (*entity.Claim, error) {
	var c entity.Claim
	dest := []any{
		&c.ID,
		&c.TypeOfClaim,
		&c.ProcessState,
		&c.DiscussedAmount,
		&c.PaidAmount,
		&c.PendingAmount,
		&c.CardID,
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

func (cr *claimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	query := `
		INSERT INTO claims (id, type_of_claim, process_state, discussed_amount,
		                    paid_amount, pending_amount, card_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := cr.db.Exec(ctx, query,
		claim.ID,
		claim.TypeOfClaim,
		claim.ProcessState,
		claim.DiscussedAmount,
		claim.PaidAmount,
		claim.PendingAmount,
		claim.CardID,
		claim.CreatedBy,
		claim.CreatedAt,
		claim.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create claim",
			zap.Error(err),
			zap.String("card_id", claim.CardID.String()),
		)
		return fmt.Errorf("create claim: %w", err)
	}

	return nil
}

// FindByCard lists a card's claims newest first. Callers check the card's
// ownership scope before reaching here.
func (cr *claimRepository) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Claim, error) {
	query := `
		SELECT ` + claimColumns + `, u.name AS created_by_name
		FROM claims c
		LEFT JOIN users u ON c.created_by = u.id
		WHERE c.card_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := cr.db.Query(ctx, query, cardID)
	if err != nil {
		cr.log.Error("Failed to list claims",
			zap.Error(err),
			zap.String("card_id", cardID.String()),
		)
		return nil, fmt.Errorf("list claims for card %s: %w", cardID.String(), err)
	}
	defer rows.Close()

	var claims []*entity.Claim
	for rows.Next() {
		c, err := scanClaim(rows, true)
		if err != nil {
			cr.log.Error("Failed to scan claim row", zap.Error(err))
			return nil, fmt.Errorf("scan claim row: %w", err)
		}
		claims = append(claims, c)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate claim rows: %w", err)
	}

	return claims, nil
}

// FindByID returns the claim when its owning card passes the ownership
// scope; nil ownerID (admin) skips the scope
func (cr *claimRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Claim, error) {
	query := `
		SELECT ` + claimColumns + `, u.name AS created_by_name
		FROM claims c
		LEFT JOIN users u ON c.created_by = u.id
		WHERE c.id = $1
	`
	args := []any{id}
	if ownerID != nil {
		query += ` AND ` + claimOwnedByCard + `$2)`
		args = append(args, *ownerID)
	}

	c, err := scanClaim(cr.db.QueryRow(ctx, query, args...), true)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find claim",
			zap.Error(err),
			zap.String("claim_id", id.String()),
		)
		return nil, fmt.Errorf("find claim %s: %w", id.String(), err)
	}

	return c, nil
}

// Update rewrites the claim in one statement; the transitive ownership
// predicate sits in the WHERE clause so a check cannot race the mutation.
// Returns nil when the claim is missing or its card is not owned.
func (cr *claimRepository) Update(ctx context.Context, claim *entity.Claim, ownerID *uuid.UUID) (*entity.Claim, error) {
	query := `
		UPDATE claims c
		SET type_of_claim = $2, process_state = $3, discussed_amount = $4,
		    paid_amount = $5, pending_amount = $6, updated_at = CURRENT_TIMESTAMP
		WHERE c.id = $1
	`
	args := []any{
		claim.ID,
		claim.TypeOfClaim,
		claim.ProcessState,
		claim.DiscussedAmount,
		claim.PaidAmount,
		claim.PendingAmount,
	}
	if ownerID != nil {
		query += ` AND ` + claimOwnedByCard + `$7)`
		args = append(args, *ownerID)
	}
	query += ` RETURNING ` + claimColumns

	updated, err := scanClaim(cr.db.QueryRow(ctx, query, args...), false)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to update claim",
			zap.Error(err),
			zap.String("claim_id", claim.ID.String()),
		)
		return nil, fmt.Errorf("update claim %s: %w", claim.ID.String(), err)
	}

	return updated, nil
}

// Delete removes the claim with the transitive ownership predicate in the
// WHERE clause, returning the deleted row or nil when nothing matched
func (cr *claimRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Claim, error) {
	query := `DELETE FROM claims c WHERE c.id = $1`
	args := []any{id}
	if ownerID != nil {
		query += ` AND ` + claimOwnedByCard + `$2)`
		args = append(args, *ownerID)
	}
	query += ` RETURNING ` + claimColumns

	deleted, err := scanClaim(cr.db.QueryRow(ctx, query, args...), false)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to delete claim",
			zap.Error(err),
			zap.String("claim_id", id.String()),
		)
		return nil, fmt.Errorf("delete claim %s: %w", id.String(), err)
	}

	return deleted, nil
}
