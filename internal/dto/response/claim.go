package response

import (
	"time"

	"ops-portal/internal/data/entity"
)

type ClaimResponse struct {
	ID              string              `json:"id"`
	TypeOfClaim     entity.ClaimType    `json:"type_of_claim"`
	ProcessState    entity.ProcessState `json:"process_state"`
	DiscussedAmount float64             `json:"discussed_amount"`
	PaidAmount      float64             `json:"paid_amount"`
	PendingAmount   float64             `json:"pending_amount"`
	CardID          string              `json:"card_id"`
	CreatedBy       string              `json:"created_by"`
	CreatedByName   *string             `json:"created_by_name,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type ClaimListResponse struct {
	Claims []ClaimResponse `json:"claims"`
}

type ClaimEnvelope struct {
	Message string        `json:"message,omitempty"`
	Claim   ClaimResponse `json:"claim"`
}

func ClaimToResponse(c *entity.Claim) ClaimResponse {
	return ClaimResponse{
		ID:              c.ID.String(),
		TypeOfClaim:     c.TypeOfClaim,
		ProcessState:    c.ProcessState,
		DiscussedAmount: c.DiscussedAmount,
		PaidAmount:      c.PaidAmount,
		PendingAmount:   c.PendingAmount,
		CardID:          c.CardID.String(),
		CreatedBy:       c.CreatedBy.String(),
		CreatedByName:   c.CreatedByName,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func ClaimsToResponse(claims []*entity.Claim) ClaimListResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, ClaimToResponse(c))
	}
	return ClaimListResponse{Claims: out}
}
