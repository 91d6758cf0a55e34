package entity

import "github.com/google/uuid"

// Card is a single insurance/membership record attached to exactly one
// customer. CardNumber is globally unique; CustomerID is unique so a
// customer can never hold two cards.
type Card struct {
	Base
	CardNumber     string    `db:"card_number"`
	RegisterNumber *string   `db:"register_number"`
	CardHolderName string    `db:"card_holder_name"`
	AgentName      *string   `db:"agent_name"`
	AgentMobile    *string   `db:"agent_mobile"`
	CustomerID     uuid.UUID `db:"customer_id"`
	CreatedBy      uuid.UUID `db:"created_by"`

	// CreatedByName is populated from the users join, not a column
	CreatedByName *string `db:"-"`
}
