package usecase

import (
	"context"
	"time"

	"ops-portal/internal/apperr"
	"ops-portal/internal/data/entity"
	"ops-portal/internal/data/repository"
	"ops-portal/internal/dto/request"
	"ops-portal/internal/dto/response"
	"ops-portal/internal/mailer"
	"ops-portal/pkg/token"
	"ops-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (*response.OTPResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.MessageResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (*response.MessageResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens *token.JWTManager
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tokens *token.JWTManager,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		mail:   mail,
		config: config,
		log:    log,
	}
}

// createUser runs the shared registration path: validation, duplicate
// pre-check, hashing, insert. The unique constraints on email and
// employee_id back the pre-check, so a concurrent duplicate surfaces as
// the same conflict message.
func (s *authService) createUser(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	if !entity.ValidRole(req.Role) {
		return nil, apperr.BadRequest("Role must be either admin or employee")
	}

	existing, err := s.repo.User.FindByEmailOrEmployeeID(ctx, req.Email, req.EmployeeID)
	if err != nil {
		s.log.Error("Failed to check existing user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("Server error")
	}
	if existing != nil {
		return nil, apperr.BadRequest("User with this email or employee ID already exists")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Internal("Server error")
	}

	user := &entity.User{
		ID:           uuid.New(),
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		Email:        req.Email,
		Contact:      req.Contact,
		PasswordHash: hashed,
		Role:         entity.UserRole(req.Role),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicateUser {
			return nil, apperr.BadRequest("User with this email or employee ID already exists")
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("Server error")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("employee_id", user.EmployeeID),
		zap.String("role", string(user.Role)))

	return user, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	user, err := s.createUser(ctx, req)
	if err != nil {
		return nil, err
	}

	tokenStr, _, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Internal("Server error")
	}

	return &response.AuthResponse{
		Message: "User registered successfully",
		Token:   tokenStr,
		User:    response.UserToResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("Server error")
	}

	// Unknown email and wrong password fail identically so the response
	// never reveals which accounts exist.
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login rejected", zap.String("email", req.Email))
		return nil, apperr.BadRequest("Invalid credentials")
	}

	tokenStr, _, err := s.tokens.Generate(user.ID)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Internal("Server error")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("employee_id", user.EmployeeID))

	return &response.AuthResponse{
		Message: "Login successful",
		Token:   tokenStr,
		User:    response.UserToResponse(user),
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) (*response.OTPResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for OTP", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("Server error")
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	otp := utils.GenerateOTP(s.config.OTP.Length)
	expiry := time.Now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	if err := s.repo.User.SetOTP(ctx, user.ID, otp, expiry); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Internal("Server error")
	}

	if err := s.mail.SendOTP(user.Email, otp); err != nil {
		s.log.Error("Failed to send OTP email", zap.Error(err), zap.String("email", user.Email))
		return nil, apperr.Internal("Failed to send OTP email")
	}

	s.log.Info("OTP issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiry))

	return &response.OTPResponse{
		Message: "OTP sent to your email",
		Email:   user.Email,
	}, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.MessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for OTP verification", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("Server error")
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	if user.OTP == nil {
		return nil, apperr.BadRequest("No OTP found. Please request a new one.")
	}
	if user.OTPExpiry == nil || time.Now().After(*user.OTPExpiry) {
		return nil, apperr.BadRequest("OTP has expired. Please request a new one.")
	}
	if *user.OTP != req.OTP {
		return nil, apperr.BadRequest("Invalid OTP")
	}

	// Single use: clear the OTP and open the window reset-password consumes.
	window := time.Now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)
	if err := s.repo.User.ClearOTPOpenResetWindow(ctx, user.ID, window); err != nil {
		s.log.Error("Failed to clear OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Internal("Server error")
	}

	s.log.Info("OTP verified", zap.String("user_id", user.ID.String()))

	return &response.MessageResponse{Message: "OTP verified successfully"}, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (*response.MessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	if len(req.NewPassword) < 6 {
		return nil, apperr.BadRequest("Password must be at least 6 characters long")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Internal("Server error")
	}

	// The update only matches inside an open reset window, and closes it,
	// so a reset requires a prior verify-otp and works at most once per OTP.
	updated, err := s.repo.User.UpdatePasswordWithResetWindow(ctx, req.Email, hashed)
	if err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Internal("Server error")
	}
	if !updated {
		return nil, apperr.BadRequest("OTP verification required. Please verify your OTP first.")
	}

	s.log.Info("Password reset", zap.String("email", req.Email))

	return &response.MessageResponse{Message: "Password reset successful"}, nil
}
