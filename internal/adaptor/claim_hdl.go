package adaptor

import (
	"net/http"

	"ops-portal/internal/dto/request"
	"ops-portal/internal/usecase"
	"ops-portal/pkg/utils"

	"go.uber.org/zap"
)

type ClaimHandler struct {
	service usecase.ClaimService
	log     *zap.Logger
}

func NewClaimHandler(service usecase.ClaimService, log *zap.Logger) *ClaimHandler {
	return &ClaimHandler{
		service: service,
		log:     log.With(zap.String("handler", "claim")),
	}
}

// ListByCard handles GET /api/cards/{id}/claims
func (h *ClaimHandler) ListByCard(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	cardID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.ListByCard(r.Context(), actor, cardID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// Create handles POST /api/cards/{id}/claims
func (h *ClaimHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	cardID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.ClaimRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), actor, cardID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseCreated(w, resp)
}

// Get handles GET /api/claims/{id}
func (h *ClaimHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// Update handles PUT /api/claims/{id}
func (h *ClaimHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.ClaimRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// Delete handles DELETE /api/claims/{id}
func (h *ClaimHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Delete(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}
