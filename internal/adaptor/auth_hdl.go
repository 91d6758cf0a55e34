package adaptor

import (
	"net/http"

	"ops-portal/internal/data/entity"
	"ops-portal/internal/dto/request"
	"ops-portal/internal/dto/response"
	"ops-portal/internal/usecase"
	"ops-portal/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseCreated(w, resp)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// Profile handles GET /api/profile; the auth middleware already resolved
// the user, so this is a straight context read.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authorized, no token")
		return
	}

	utils.ResponseOK(w, response.ProfileResponse{
		User: response.UserResponse{
			ID:         user.ID.String(),
			EmployeeID: user.EmployeeID,
			Name:       user.Name,
			Email:      user.Email,
			Contact:    user.Contact,
			Role:       entity.UserRole(user.Role),
		},
	})
}

// ForgotPassword handles POST /api/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.ForgotPassword(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// VerifyOTP handles POST /api/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}

// ResetPassword handles POST /api/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.ResetPassword(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.ResponseOK(w, resp)
}
