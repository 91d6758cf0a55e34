package usecase

import (
	"context"
	"time"

	"ops-portal/internal/apperr"
	"ops-portal/internal/data/entity"
	"ops-portal/internal/data/repository"
	"ops-portal/internal/dto/request"
	"ops-portal/internal/dto/response"
	"ops-portal/internal/policy"
	"ops-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerService is owner-or-admin scoped: admins see every row, everyone
// else only rows they created. Absence and ownership rejection share one
// message so an employee cannot probe which ids exist.
type CustomerService interface {
	Create(ctx context.Context, actor policy.Actor, req *request.CustomerRequest) (*response.CustomerEnvelope, error)
	List(ctx context.Context, actor policy.Actor) (*response.CustomerListResponse, error)
	Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.CustomerEnvelope, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *request.CustomerRequest) (*response.CustomerEnvelope, error)
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.MessageResponse, error)
}

type customerService struct {
	customers repository.CustomerRepository
	log       *zap.Logger
}

func NewCustomerService(customers repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customers: customers,
		log:       log,
	}
}

func (s *customerService) Create(ctx context.Context, actor policy.Actor, req *request.CustomerRequest) (*response.CustomerEnvelope, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Customer validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		TypeOfWork:      entity.TypeOfWork(req.TypeOfWork),
		DiscussedAmount: req.DiscussedAmount.Float64(),
		PaidAmount:      req.PaidAmount.Float64(),
		PendingAmount:   entity.ComputePendingAmount(req.DiscussedAmount.Float64(), req.PaidAmount.Float64()),
		CreditAmount:    req.CreditAmount.Float64(),
		ModeOfPayment:   req.ModeOfPayment,
		CreatedBy:       actor.ID,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer", zap.Error(err), zap.String("creator", actor.ID.String()))
		return nil, apperr.Internal("Server error")
	}

	s.log.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("creator", actor.ID.String()))

	return &response.CustomerEnvelope{
		Message:  "Customer created successfully",
		Customer: response.CustomerToResponse(customer),
	}, nil
}

func (s *customerService) List(ctx context.Context, actor policy.Actor) (*response.CustomerListResponse, error) {
	var (
		customers []*entity.Customer
		err       error
	)

	if policy.AdminOnly(actor) {
		customers, err = s.customers.FindAll(ctx)
	} else {
		customers, err = s.customers.FindByOwner(ctx, actor.ID)
	}
	if err != nil {
		s.log.Error("Failed to list customers", zap.Error(err), zap.String("actor", actor.ID.String()))
		return nil, apperr.Internal("Server error")
	}

	resp := response.CustomersToResponse(customers)
	return &resp, nil
}

func (s *customerService) Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.CustomerEnvelope, error) {
	customer, err := s.customers.FindByID(ctx, id, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("customer_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if customer == nil {
		return nil, apperr.NotFound("Customer not found or access denied")
	}

	return &response.CustomerEnvelope{Customer: response.CustomerToResponse(customer)}, nil
}

func (s *customerService) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *request.CustomerRequest) (*response.CustomerEnvelope, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Customer validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	customer := &entity.Customer{
		Base: entity.Base{
			ID:        id,
			UpdatedAt: time.Now(),
		},
		CustomerName:    req.CustomerName,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		TypeOfWork:      entity.TypeOfWork(req.TypeOfWork),
		DiscussedAmount: req.DiscussedAmount.Float64(),
		PaidAmount:      req.PaidAmount.Float64(),
		PendingAmount:   entity.ComputePendingAmount(req.DiscussedAmount.Float64(), req.PaidAmount.Float64()),
		CreditAmount:    req.CreditAmount.Float64(),
		ModeOfPayment:   req.ModeOfPayment,
	}

	// Ownership and mutation happen in one scoped statement.
	updated, err := s.customers.Update(ctx, customer, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to update customer", zap.Error(err), zap.String("customer_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if updated == nil {
		return nil, apperr.NotFound("Customer not found or access denied")
	}

	s.log.Info("Customer updated",
		zap.String("customer_id", id.String()),
		zap.String("actor", actor.ID.String()))

	return &response.CustomerEnvelope{
		Message:  "Customer updated successfully",
		Customer: response.CustomerToResponse(updated),
	}, nil
}

func (s *customerService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.MessageResponse, error) {
	deleted, err := s.customers.Delete(ctx, id, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to delete customer", zap.Error(err), zap.String("customer_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if !deleted {
		return nil, apperr.NotFound("Customer not found or access denied")
	}

	s.log.Info("Customer deleted",
		zap.String("customer_id", id.String()),
		zap.String("actor", actor.ID.String()))

	return &response.MessageResponse{Message: "Customer deleted successfully"}, nil
}
