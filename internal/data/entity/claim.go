package entity

import "github.com/google/uuid"

type ClaimType string

const (
	ClaimMarriageGift     ClaimType = "Marriage gift"
	ClaimMaternityBenefit ClaimType = "Maternity benefit"
	ClaimNaturalDeath     ClaimType = "Natural Death"
	ClaimAccidentalDeath  ClaimType = "Accidental death"
)

// ValidClaimType reports whether the claim type is one of the supported kinds
func ValidClaimType(t string) bool {
	switch ClaimType(t) {
	case ClaimMarriageGift, ClaimMaternityBenefit, ClaimNaturalDeath, ClaimAccidentalDeath:
		return true
	}
	return false
}

type ProcessState string

const (
	StateALO          ProcessState = "ALO"
	StateNodalOfficer ProcessState = "Nodal Officer"
	StateBoard        ProcessState = "Board"
	StateInsurance    ProcessState = "Insurance"
)

// ValidProcessState reports whether the state is a known workflow stage
func ValidProcessState(s string) bool {
	switch ProcessState(s) {
	case StateALO, StateNodalOfficer, StateBoard, StateInsurance:
		return true
	}
	return false
}

// Claim is a payout request against a card. Ownership is transitive:
// employees reach a claim only through a card they created.
type Claim struct {
	Base
	TypeOfClaim     ClaimType    `db:"type_of_claim"`
	ProcessState    ProcessState `db:"process_state"`
	DiscussedAmount float64      `db:"discussed_amount"`
	PaidAmount      float64      `db:"paid_amount"`
	PendingAmount   float64      `db:"pending_amount"`
	CardID          uuid.UUID    `db:"card_id"`
	CreatedBy       uuid.UUID    `db:"created_by"`

	// CreatedByName is populated from the users join, not a column
	CreatedByName *string `db:"-"`
}
