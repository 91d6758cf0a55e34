package request

type CardRequest struct {
	CardNumber     string  `json:"card_number" validate:"required"`
	RegisterNumber *string `json:"register_number,omitempty"`
	CardHolderName string  `json:"card_holder_name" validate:"required"`
	AgentName      *string `json:"agent_name,omitempty"`
	AgentMobile    *string `json:"agent_mobile,omitempty"`
}
