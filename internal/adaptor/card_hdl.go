package adaptor

import (
	"net/http"

	"ops-portal/internal/dto/request"
	"ops-portal/internal/usecase"
	"ops-portal/pkg/utils"

	"go.uber.org/zap"
)

type CardHandler struct {
	service usecase.CardService
	log     *zap.Logger
}

func NewCardHandler(service usecase.CardService, log *zap.Logger) *CardHandler {
	return &CardHandler{
		service: service,
		log:     log.With(zap.String("handler", "card")),
	}
}

// GetByCustomer handles GET /api/customers/{id}/card
func (h *CardHandler) GetByCustomer(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	customerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetByCustomer(r.Context(), actor, customerID)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// Create handles POST /api/customers/{id}/card
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	customerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.CardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), actor, customerID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseCreated(w, resp)
}

// Get handles GET /api/cards/{id}
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
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

// Update handles PUT /api/cards/{id}
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.CardRequest
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

// Delete handles DELETE /api/cards/{id}
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
