package entity

import "github.com/google/uuid"

type TypeOfWork string

const (
	WorkInterior TypeOfWork = "Interior"
	WorkExterior TypeOfWork = "Exterior"
	WorkBoth     TypeOfWork = "Both"
)

// Customer is owned by the employee who created it; admins bypass ownership.
type Customer struct {
	Base
	CustomerName    string     `db:"customer_name"`
	PhoneNumber     string     `db:"phone_number"`
	Email           *string    `db:"email"`
	TypeOfWork      TypeOfWork `db:"type_of_work"`
	DiscussedAmount float64    `db:"discussed_amount"`
	PaidAmount      float64    `db:"paid_amount"`
	PendingAmount   float64    `db:"pending_amount"`
	CreditAmount    float64    `db:"credit_amount"`
	ModeOfPayment   *string    `db:"mode_of_payment"`
	CreatedBy       uuid.UUID  `db:"created_by"`

	// CreatedByName is populated from the users join, not a column
	CreatedByName *string `db:"-"`
}

// ComputePendingAmount derives the stored pending amount from the
// discussed and paid amounts. Clients never set it directly.
func ComputePendingAmount(discussed, paid float64) float64 {
	pending := discussed - paid
	if pending < 0 {
		return 0
	}
	return pending
}
