package response

import (
	"time"

	"ops-portal/internal/data/entity"
)

type CampResponse struct {
	ID                    string            `json:"id"`
	CampDate              time.Time         `json:"camp_date"`
	Location              string            `json:"location"`
	LocationLink          *string           `json:"location_link,omitempty"`
	PhoneNumber           *string           `json:"phone_number,omitempty"`
	Status                entity.CampStatus `json:"status"`
	ConductedBy           *string           `json:"conducted_by,omitempty"`
	AssignedTo            []string          `json:"assigned_to"`
	AssignedEmployeeNames []string          `json:"assigned_employee_names,omitempty"`
	CreatedBy             string            `json:"created_by"`
	CreatedByName         *string           `json:"created_by_name,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	LastUpdated           time.Time         `json:"last_updated"`
}

type CampListResponse struct {
	Camps []CampResponse `json:"camps"`
}

type CampEnvelope struct {
	Message string       `json:"message,omitempty"`
	Camp    CampResponse `json:"camp"`
}

func CampToResponse(c *entity.Camp) CampResponse {
	return CampResponse{
		ID:                    c.ID.String(),
		CampDate:              c.CampDate,
		Location:              c.Location,
		LocationLink:          c.LocationLink,
		PhoneNumber:           c.PhoneNumber,
		Status:                c.Status,
		ConductedBy:           c.ConductedBy,
		AssignedTo:            c.AssignedTo,
		AssignedEmployeeNames: c.AssignedEmployeeNames,
		CreatedBy:             c.CreatedBy.String(),
		CreatedByName:         c.CreatedByName,
		CreatedAt:             c.CreatedAt,
		LastUpdated:           c.LastUpdated,
	}
}

func CampsToResponse(camps []*entity.Camp) CampListResponse {
	out := make([]CampResponse, 0, len(camps))
	for _, c := range camps {
		out = append(out, CampToResponse(c))
	}
	return CampListResponse{Camps: out}
}
