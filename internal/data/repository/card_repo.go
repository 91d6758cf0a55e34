package repository

import (
	"context"
	"errors"
	"fmt"

	"ops-portal/internal/data/entity"
	"ops-portal/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	// ErrCustomerHasCard is returned when an insert collides with the
	// one-card-per-customer constraint.
	ErrCustomerHasCard = errors.New("customer already has a card")
	// ErrDuplicateCardNumber is returned when a write collides with the
	// global card_number uniqueness constraint.
	ErrDuplicateCardNumber = errors.New("card number already exists")
)

type CardRepository interface {
	Create(ctx context.Context, card *entity.Card) error
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Card, error)
	FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Card, error)
	CardNumberTaken(ctx context.Context, cardNumber string, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, card *entity.Card, ownerID *uuid.UUID) (*entity.Card, error)
	Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Card, error)
}

type cardRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCardRepository(db database.PgxIface, log *zap.Logger) CardRepository {
	return &cardRepository{
		db:  db,
		log: log.With(zap.String("repository", "card")),
	}
}

const cardColumns = `c.id, c.card_number, c.register_number, c.card_holder_name,
	       c.agent_name, c.agent_mobile, c.customer_id, c.created_by, c.created_at, c.updated_at`

func scanCard(row pgx.Row, withOwnerName bool) (*entity.Card, error) {
	var c entity.Card
	dest := []any{
		&c.ID,
		&c.CardNumber,
		&c.RegisterNumber,
		&c.CardHolderName,
		&c.AgentName,
		&c.AgentMobile,
		&c.CustomerID,
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

// Create inserts the card. The unique constraints on customer_id and
// card_number are the final authority: two concurrent requests that both
// passed the service pre-checks still cannot both insert.
func (cr *cardRepository) Create(ctx context.Context, card *entity.Card) error {
	query := `
		INSERT INTO cards (id, card_number, register_number, card_holder_name,
		                   agent_name, agent_mobile, customer_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := cr.db.Exec(ctx, query,
		card.ID,
		card.CardNumber,
		card.RegisterNumber,
		card.CardHolderName,
		card.AgentName,
		card.AgentMobile,
		card.CustomerID,
		card.CreatedBy,
		card.CreatedAt,
		card.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "cards_customer_id_key") {
			return ErrCustomerHasCard
		}
		if isUniqueViolation(err, "cards_card_number_key") {
			return ErrDuplicateCardNumber
		}
		cr.log.Error("Failed to create card",
			zap.Error(err),
			zap.String("card_number", card.CardNumber),
			zap.String("customer_id", card.CustomerID.String()),
		)
		return fmt.Errorf("create card %s: %w", card.CardNumber, err)
	}

	return nil
}

// FindByCustomer returns the customer's card, or nil when none exists yet
func (cr *cardRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Card, error) {
	query := `
		SELECT ` + cardColumns + `, u.name AS created_by_name
		FROM cards c
		LEFT JOIN users u ON c.created_by = u.id
		WHERE c.customer_id = $1
	`

	c, err := scanCard(cr.db.QueryRow(ctx, query, customerID), true)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find card by customer",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find card for customer %s: %w", customerID.String(), err)
	}

	return c, nil
}

// FindByID returns the card when it passes the ownership scope; nil
// ownerID (admin) skips the scope
func (cr *cardRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Card, error) {
	query := `
		SELECT ` + cardColumns + `, u.name AS created_by_name
		FROM cards c
		LEFT JOIN users u ON c.created_by = u.id
		WHERE c.id = $1
	`
	args := []any{id}
	if ownerID != nil {
		query += ` AND c.created_by = $2`
		args = append(args, *ownerID)
	}

	c, err := scanCard(cr.db.QueryRow(ctx, query, args...), true)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find card",
			zap.Error(err),
			zap.String("card_id", id.String()),
		)
		return nil, fmt.Errorf("find card %s: %w", id.String(), err)
	}

	return c, nil
}

// CardNumberTaken is the duplicate pre-check; excludeID ignores the card
// being updated
func (cr *cardRepository) CardNumberTaken(ctx context.Context, cardNumber string, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cards WHERE card_number = $1`
	args := []any{cardNumber}
	if excludeID != nil {
		query += ` AND id != $2`
		args = append(args, *excludeID)
	}
	query += `)`

	var taken bool
	if err := cr.db.QueryRow(ctx, query, args...).Scan(&taken); err != nil {
		cr.log.Error("Failed to check card number",
			zap.Error(err),
			zap.String("card_number", cardNumber),
		)
		return false, fmt.Errorf("check card number %s: %w", cardNumber, err)
	}

	return taken, nil
}

// Update rewrites the card fields in one ownership-scoped statement.
// Returns nil when the card is missing or not owned by the requester.
func (cr *cardRepository) Update(ctx context.Context, card *entity.Card, ownerID *uuid.UUID) (*entity.Card, error) {
	query := `
		UPDATE cards c
		SET card_number = $2, register_number = $3, card_holder_name = $4,
		    agent_name = $5, agent_mobile = $6, updated_at = CURRENT_TIMESTAMP
		WHERE c.id = $1
	`
	args := []any{
		card.ID,
		card.CardNumber,
		card.RegisterNumber,
		card.CardHolderName,
		card.AgentName,
		card.AgentMobile,
	}
	if ownerID != nil {
		query += ` AND c.created_by = $7`
		args = append(args, *ownerID)
	}
	query += ` RETURNING ` + cardColumns

	updated, err := scanCard(cr.db.QueryRow(ctx, query, args...), false)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err, "cards_card_number_key") {
			return nil, ErrDuplicateCardNumber
		}
		cr.log.Error("Failed to update card",
			zap.Error(err),
			zap.String("card_id", card.ID.String()),
		)
		return nil, fmt.Errorf("update card %s: %w", card.ID.String(), err)
	}

	return updated, nil
}

// Delete removes the card (claims cascade) with the ownership scope in the
// WHERE clause, returning the deleted row or nil when nothing matched
func (cr *cardRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Card, error) {
	query := `DELETE FROM cards c WHERE c.id = $1`
	args := []any{id}
	if ownerID != nil {
		query += ` AND c.created_by = $2`
		args = append(args, *ownerID)
	}
	query += ` RETURNING ` + cardColumns

	deleted, err := scanCard(cr.db.QueryRow(ctx, query, args...), false)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to delete card",
			zap.Error(err),
			zap.String("card_id", id.String()),
		)
		return nil, fmt.Errorf("delete card %s: %w", id.String(), err)
	}

	return deleted, nil
}
