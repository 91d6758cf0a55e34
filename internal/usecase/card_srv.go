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

// CardService enforces the one-card-per-customer and unique card-number
// rules. The pre-checks give the client the descriptive messages; the
// schema constraints make them hold under concurrency.
type CardService interface {
	GetByCustomer(ctx context.Context, actor policy.Actor, customerID uuid.UUID) (*response.CardEnvelope, error)
	Create(ctx context.Context, actor policy.Actor, customerID uuid.UUID, req *request.CardRequest) (*response.CardEnvelope, error)
	Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.CardEnvelope, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *request.CardRequest) (*response.CardEnvelope, error)
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.MessageResponse, error)
}

type cardService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCardService(repo *repository.Repository, log *zap.Logger) CardService {
	return &cardService{
		repo: repo,
		log:  log,
	}
}

// scopedCustomer resolves the customer through the actor's owner scope;
// a customer the actor cannot see reads as absent.
func (s *cardService) scopedCustomer(ctx context.Context, actor policy.Actor, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := s.repo.Customer.FindByID(ctx, customerID, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to find customer for card", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, apperr.Internal("Server error")
	}
	if customer == nil {
		return nil, apperr.NotFound("Customer not found or access denied")
	}
	return customer, nil
}

func (s *cardService) GetByCustomer(ctx context.Context, actor policy.Actor, customerID uuid.UUID) (*response.CardEnvelope, error) {
	if _, err := s.scopedCustomer(ctx, actor, customerID); err != nil {
		return nil, err
	}

	card, err := s.repo.Card.FindByCustomer(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to find card", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, apperr.Internal("Server error")
	}

	// card stays null when the customer has none.
	return &response.CardEnvelope{Card: response.CardToResponse(card)}, nil
}

func (s *cardService) Create(ctx context.Context, actor policy.Actor, customerID uuid.UUID, req *request.CardRequest) (*response.CardEnvelope, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Card validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	if _, err := s.scopedCustomer(ctx, actor, customerID); err != nil {
		return nil, err
	}

	existing, err := s.repo.Card.FindByCustomer(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to check existing card", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, apperr.Internal("Server error")
	}
	if existing != nil {
		return nil, apperr.BadRequest("Customer already has a card")
	}

	taken, err := s.repo.Card.CardNumberTaken(ctx, req.CardNumber, nil)
	if err != nil {
		s.log.Error("Failed to check card number", zap.Error(err), zap.String("card_number", req.CardNumber))
		return nil, apperr.Internal("Server error")
	}
	if taken {
		return nil, apperr.BadRequest("Card number already exists")
	}

	now := time.Now()
	card := &entity.Card{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CardNumber:     req.CardNumber,
		RegisterNumber: req.RegisterNumber,
		CardHolderName: req.CardHolderName,
		AgentName:      req.AgentName,
		AgentMobile:    req.AgentMobile,
		CustomerID:     customerID,
		CreatedBy:      actor.ID,
	}

	if err := s.repo.Card.Create(ctx, card); err != nil {
		switch err {
		case repository.ErrCustomerHasCard:
			return nil, apperr.BadRequest("Customer already has a card")
		case repository.ErrDuplicateCardNumber:
			return nil, apperr.BadRequest("Card number already exists")
		}
		s.log.Error("Failed to create card", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, apperr.Internal("Server error")
	}

	s.log.Info("Card created",
		zap.String("card_id", card.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("creator", actor.ID.String()))

	return &response.CardEnvelope{
		Message: "Card created successfully",
		Card:    response.CardToResponse(card),
	}, nil
}

func (s *cardService) Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.CardEnvelope, error) {
	card, err := s.repo.Card.FindByID(ctx, id, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to find card", zap.Error(err), zap.String("card_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if card == nil {
		return nil, apperr.NotFound("Card not found or access denied")
	}

	return &response.CardEnvelope{Card: response.CardToResponse(card)}, nil
}

func (s *cardService) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *request.CardRequest) (*response.CardEnvelope, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Card validation failed", zap.Any("errors", errs))
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	taken, err := s.repo.Card.CardNumberTaken(ctx, req.CardNumber, &id)
	if err != nil {
		s.log.Error("Failed to check card number", zap.Error(err), zap.String("card_number", req.CardNumber))
		return nil, apperr.Internal("Server error")
	}
	if taken {
		return nil, apperr.BadRequest("Card number already exists")
	}

	card := &entity.Card{
		Base: entity.Base{
			ID:        id,
			UpdatedAt: time.Now(),
		},
		CardNumber:     req.CardNumber,
		RegisterNumber: req.RegisterNumber,
		CardHolderName: req.CardHolderName,
		AgentName:      req.AgentName,
		AgentMobile:    req.AgentMobile,
	}

	updated, err := s.repo.Card.Update(ctx, card, policy.OwnerScope(actor))
	if err != nil {
		if err == repository.ErrDuplicateCardNumber {
			return nil, apperr.BadRequest("Card number already exists")
		}
		s.log.Error("Failed to update card", zap.Error(err), zap.String("card_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if updated == nil {
		return nil, apperr.NotFound("Card not found or access denied")
	}

	s.log.Info("Card updated", zap.String("card_id", id.String()))

	return &response.CardEnvelope{
		Message: "Card updated successfully",
		Card:    response.CardToResponse(updated),
	}, nil
}

// Delete removes the card; claims go with it via the cascade.
func (s *cardService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.MessageResponse, error) {
	deleted, err := s.repo.Card.Delete(ctx, id, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to delete card", zap.Error(err), zap.String("card_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if deleted == nil {
		return nil, apperr.NotFound("Card not found or access denied")
	}

	s.log.Info("Card deleted",
		zap.String("card_id", id.String()),
		zap.String("actor", actor.ID.String()))

	return &response.MessageResponse{Message: "Card deleted successfully"}, nil
}
