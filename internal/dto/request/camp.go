package request

// CampRequest covers admin create and update. CampDate is a calendar
// date, YYYY-MM-DD. AssignedTo holds user-id strings.
type CampRequest struct {
	CampDate     string   `json:"camp_date" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	LocationLink *string  `json:"location_link,omitempty"`
	PhoneNumber  *string  `json:"phone_number,omitempty"`
	Status       string   `json:"status" validate:"required"`
	ConductedBy  *string  `json:"conducted_by,omitempty"`
	AssignedTo   []string `json:"assigned_to"`
}

// UpdateCampStatusRequest is the only camp mutation open to assigned
// employees
type UpdateCampStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
