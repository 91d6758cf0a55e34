package request

// ClaimRequest covers create and update. Amounts default to zero;
// pending is derived server-side like customers.
type ClaimRequest struct {
	TypeOfClaim     string  `json:"type_of_claim" validate:"required"`
	ProcessState    string  `json:"process_state" validate:"required"`
	DiscussedAmount Amount `json:"discussed_amount" validate:"gte=0"`
	PaidAmount      Amount `json:"paid_amount" validate:"gte=0"`
}
