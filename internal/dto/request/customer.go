package request

// CustomerRequest covers create and update. pending_amount is not
// accepted from clients; the server derives it from discussed and paid.
type CustomerRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required"`
	PhoneNumber     string  `json:"phone_number" validate:"required"`
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	TypeOfWork      string  `json:"type_of_work" validate:"required,oneof=Interior Exterior Both"`
	DiscussedAmount Amount  `json:"discussed_amount" validate:"gte=0"`
	PaidAmount      Amount  `json:"paid_amount" validate:"gte=0"`
	CreditAmount    Amount  `json:"credit_amount" validate:"gte=0"`
	ModeOfPayment   *string `json:"mode_of_payment,omitempty"`
}
