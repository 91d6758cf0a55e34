package usecase

import (
	"context"
	"time"

	"ops-portal/internal/apperr"
	"ops-portal/internal/data/entity"
	"ops-portal/internal/data/repository"
	"ops-portal/internal/dto/request"
	"ops-portal/internal/dto/response"
	"ops-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeService covers the admin account-management routes. Role gating
// happens in the route middleware; everything here already assumes an admin.
type EmployeeService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterEmployeeResponse, error)
	List(ctx context.Context) (*response.EmployeeListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*response.EmployeeEnvelope, error)
	Update(ctx context.Context, id uuid.UUID, req *request.UpdateEmployeeRequest) (*response.EmployeeEnvelope, error)
	Delete(ctx context.Context, id uuid.UUID) (*response.MessageResponse, error)
	Customers(ctx context.Context, id uuid.UUID) (*response.CustomerListResponse, error)
}

type employeeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEmployeeService(repo *repository.Repository, log *zap.Logger) EmployeeService {
	return &employeeService{
		repo: repo,
		log:  log,
	}
}

// Register creates an account on behalf of an admin. Unlike self-service
// registration it returns no token; the new user logs in themselves.
func (s *employeeService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterEmployeeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Employee register validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	if len(req.Password) < 6 {
		return nil, apperr.BadRequest("Password must be at least 6 characters long")
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

	s.log.Info("Employee account created",
		zap.String("user_id", user.ID.String()),
		zap.String("employee_id", user.EmployeeID),
		zap.String("role", string(user.Role)))

	return &response.RegisterEmployeeResponse{
		Message: "User registered successfully",
		User:    response.UserToResponse(user),
	}, nil
}

func (s *employeeService) List(ctx context.Context) (*response.EmployeeListResponse, error) {
	users, err := s.repo.User.FindAllWithCustomerCount(ctx)
	if err != nil {
		s.log.Error("Failed to list employees", zap.Error(err))
		return nil, apperr.Internal("Server error")
	}

	resp := response.EmployeesToResponse(users)
	return &resp, nil
}

func (s *employeeService) Get(ctx context.Context, id uuid.UUID) (*response.EmployeeEnvelope, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find employee", zap.Error(err), zap.String("employee_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if user == nil {
		return nil, apperr.NotFound("Employee not found")
	}

	return &response.EmployeeEnvelope{Employee: response.UserToResponse(user)}, nil
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, req *request.UpdateEmployeeRequest) (*response.EmployeeEnvelope, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Employee update validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	if !entity.ValidRole(req.Role) {
		return nil, apperr.BadRequest("Role must be either admin or employee")
	}

	duplicate, err := s.repo.User.FindDuplicateForOther(ctx, req.Email, req.EmployeeID, id)
	if err != nil {
		s.log.Error("Failed to check duplicate user", zap.Error(err), zap.String("employee_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if duplicate != nil {
		return nil, apperr.BadRequest("Email or Employee ID already exists for another user")
	}

	user := &entity.User{
		ID:         id,
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Contact:    req.Contact,
		Role:       entity.UserRole(req.Role),
	}

	updated, err := s.repo.User.Update(ctx, user)
	if err != nil {
		if err == repository.ErrDuplicateUser {
			return nil, apperr.BadRequest("Email or Employee ID already exists for another user")
		}
		s.log.Error("Failed to update employee", zap.Error(err), zap.String("employee_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if updated == nil {
		return nil, apperr.NotFound("Employee not found")
	}

	s.log.Info("Employee updated", zap.String("user_id", id.String()))

	return &response.EmployeeEnvelope{
		Message:  "Employee updated successfully",
		Employee: response.UserToResponse(updated),
	}, nil
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) (*response.MessageResponse, error) {
	deleted, err := s.repo.User.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete employee", zap.Error(err), zap.String("employee_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if !deleted {
		return nil, apperr.NotFound("Employee not found")
	}

	s.log.Info("Employee deleted", zap.String("user_id", id.String()))

	return &response.MessageResponse{Message: "Employee deleted successfully"}, nil
}

func (s *employeeService) Customers(ctx context.Context, id uuid.UUID) (*response.CustomerListResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find employee", zap.Error(err), zap.String("employee_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if user == nil {
		return nil, apperr.NotFound("Employee not found")
	}

	customers, err := s.repo.Customer.FindByOwner(ctx, id)
	if err != nil {
		s.log.Error("Failed to list employee customers", zap.Error(err), zap.String("employee_id", id.String()))
		return nil, apperr.Internal("Server error")
	}

	resp := response.CustomersToResponse(customers)
	return &resp, nil
}
