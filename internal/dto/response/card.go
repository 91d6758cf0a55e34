package response

import (
	"time"

	"ops-portal/internal/data/entity"
)

type CardResponse struct {
	ID             string    `json:"id"`
	CardNumber     string    `json:"card_number"`
	RegisterNumber *string   `json:"register_number,omitempty"`
	CardHolderName string    `json:"card_holder_name"`
	AgentName      *string   `json:"agent_name,omitempty"`
	AgentMobile    *string   `json:"agent_mobile,omitempty"`
	CustomerID     string    `json:"customer_id"`
	CreatedBy      string    `json:"created_by"`
	CreatedByName  *string   `json:"created_by_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CardEnvelope wraps a card; Card stays null when the customer has none
type CardEnvelope struct {
	Message string        `json:"message,omitempty"`
	Card    *CardResponse `json:"card"`
}

func CardToResponse(c *entity.Card) *CardResponse {
	if c == nil {
		return nil
	}
	return &CardResponse{
		ID:             c.ID.String(),
		CardNumber:     c.CardNumber,
		RegisterNumber: c.RegisterNumber,
		CardHolderName: c.CardHolderName,
		AgentName:      c.AgentName,
		AgentMobile:    c.AgentMobile,
		CustomerID:     c.CustomerID.String(),
		CreatedBy:      c.CreatedBy.String(),
		CreatedByName:  c.CreatedByName,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
