package adaptor

import (
	"net/http"

	"ops-portal/internal/dto/request"
	"ops-portal/internal/usecase"
	"ops-portal/pkg/utils"

	"go.uber.org/zap"
)

type CampHandler struct {
	service usecase.CampService
	log     *zap.Logger
}

func NewCampHandler(service usecase.CampService, log *zap.Logger) *CampHandler {
	return &CampHandler{
		service: service,
		log:     log.With(zap.String("handler", "camp")),
	}
}

// Create handles POST /api/camps (admin)
func (h *CampHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	var req request.CampRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseCreated(w, resp)
}

// List handles GET /api/camps (admin)
func (h *CampHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// Get handles GET /api/camps/{id} (admin)
func (h *CampHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// Update handles PUT /api/camps/{id} (admin)
func (h *CampHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.CampRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// Delete handles DELETE /api/camps/{id} (admin)
func (h *CampHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// ListAssigned handles GET /api/employee/camps
func (h *CampHandler) ListAssigned(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	resp, err := h.service.ListAssigned(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// UpdateStatus handles PUT /api/employee/camps/{id}/status
func (h *CampHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requestActor(w, r)
	if !ok {
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateCampStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), actor, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}
