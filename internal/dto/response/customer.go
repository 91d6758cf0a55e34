package response

import (
	"time"

	"ops-portal/internal/data/entity"
)

type CustomerResponse struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customer_name"`
	PhoneNumber     string            `json:"phone_number"`
	Email           *string           `json:"email,omitempty"`
	TypeOfWork      entity.TypeOfWork `json:"type_of_work"`
	DiscussedAmount float64           `json:"discussed_amount"`
	PaidAmount      float64           `json:"paid_amount"`
	PendingAmount   float64           `json:"pending_amount"`
	CreditAmount    float64           `json:"credit_amount"`
	ModeOfPayment   *string           `json:"mode_of_payment,omitempty"`
	CreatedBy       string            `json:"created_by"`
	CreatedByName   *string           `json:"created_by_name,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

type CustomerEnvelope struct {
	Message  string           `json:"message,omitempty"`
	Customer CustomerResponse `json:"customer"`
}

func CustomerToResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:              c.ID.String(),
		CustomerName:    c.CustomerName,
		PhoneNumber:     c.PhoneNumber,
		Email:           c.Email,
		TypeOfWork:      c.TypeOfWork,
		DiscussedAmount: c.DiscussedAmount,
		PaidAmount:      c.PaidAmount,
		PendingAmount:   c.PendingAmount,
		CreditAmount:    c.CreditAmount,
		ModeOfPayment:   c.ModeOfPayment,
		CreatedBy:       c.CreatedBy.String(),
		CreatedByName:   c.CreatedByName,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func CustomersToResponse(customers []*entity.Customer) CustomerListResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerToResponse(c))
	}
	return CustomerListResponse{Customers: out}
}
