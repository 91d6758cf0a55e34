package adaptor

import (
	"encoding/json"
	"net/http"

	"ops-portal/internal/apperr"
	"ops-portal/internal/data/entity"
	"ops-portal/internal/policy"
	"ops-portal/internal/usecase"
	"ops-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Employee *EmployeeHandler
	Customer *CustomerHandler
	Camp     *CampHandler
	Card     *CardHandler
	Claim    *ClaimHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Employee: NewEmployeeHandler(service.Employee, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Camp:     NewCampHandler(service.Camp, log),
		Card:     NewCardHandler(service.Card, log),
		Claim:    NewClaimHandler(service.Claim, log),
	}
}

// decodeBody parses the JSON request body; a write to w means the caller
// must return.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// pathID parses the named chi URL parameter as a UUID
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// requestActor lifts the authenticated user from the context into the
// policy actor services scope by.
func requestActor(w http.ResponseWriter, r *http.Request) (policy.Actor, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authorized, no token")
		return policy.Actor{}, false
	}
	return policy.Actor{ID: user.ID, Role: entity.UserRole(user.Role)}, true
}

// writeError shapes a service error into the {"error": string} body
func writeError(w http.ResponseWriter, err error) {
	appErr := apperr.From(err)
	utils.ResponseError(w, appErr.Status, appErr.Message)
}
