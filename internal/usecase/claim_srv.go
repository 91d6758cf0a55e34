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

// ClaimService scopes transitively: an employee reaches a claim only
// through a card they created. Mutations carry the scope predicate inside
// the statement like customers and cards.
type ClaimService interface {
	ListByCard(ctx context.Context, actor policy.Actor, cardID uuid.UUID) (*response.ClaimListResponse, error)
	Create(ctx context.Context, actor policy.Actor, cardID uuid.UUID, req *request.ClaimRequest) (*response.ClaimEnvelope, error)
	Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.ClaimEnvelope, error)
	Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *request.ClaimRequest) (*response.ClaimEnvelope, error)
	Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.MessageResponse, error)
}

type claimService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewClaimService(repo *repository.Repository, log *zap.Logger) ClaimService {
	return &claimService{
		repo: repo,
		log:  log,
	}
}

func (s *claimService) validateClaimRequest(req *request.ClaimRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Claim validation failed", zap.Any("errors", errs))
		return apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	if !entity.ValidClaimType(req.TypeOfClaim) {
		return apperr.BadRequest("Invalid type of claim")
	}
	if !entity.ValidProcessState(req.ProcessState) {
		return apperr.BadRequest("Invalid process state")
	}

	return nil
}

// scopedCard resolves the card through the actor's owner scope; a card the
// actor cannot see reads as absent.
func (s *claimService) scopedCard(ctx context.Context, actor policy.Actor, cardID uuid.UUID) (*entity.Card, error) {
	card, err := s.repo.Card.FindByID(ctx, cardID, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to find card for claims", zap.Error(err), zap.String("card_id", cardID.String()))
		return nil, apperr.Internal("Server error")
	}
	if card == nil {
		return nil, apperr.NotFound("Card not found or access denied")
	}
	return card, nil
}

func (s *claimService) ListByCard(ctx context.Context, actor policy.Actor, cardID uuid.UUID) (*response.ClaimListResponse, error) {
	if _, err := s.scopedCard(ctx, actor, cardID); err != nil {
		return nil, err
	}

	claims, err := s.repo.Claim.FindByCard(ctx, cardID)
	if err != nil {
		s.log.Error("Failed to list claims", zap.Error(err), zap.String("card_id", cardID.String()))
		return nil, apperr.Internal("Server error")
	}

	resp := response.ClaimsToResponse(claims)
	return &resp, nil
}

func (s *claimService) Create(ctx context.Context, actor policy.Actor, cardID uuid.UUID, req *request.ClaimRequest) (*response.ClaimEnvelope, error) {
	if err := s.validateClaimRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.scopedCard(ctx, actor, cardID); err != nil {
		return nil, err
	}

	now := time.Now()
	claim := &entity.Claim{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TypeOfClaim:     entity.ClaimType(req.TypeOfClaim),
		ProcessState:    entity.ProcessState(req.ProcessState),
		DiscussedAmount: req.DiscussedAmount.Float64(),
		PaidAmount:      req.PaidAmount.Float64(),
		PendingAmount:   entity.ComputePendingAmount(req.DiscussedAmount.Float64(), req.PaidAmount.Float64()),
		CardID:          cardID,
		CreatedBy:       actor.ID,
	}

	if err := s.repo.Claim.Create(ctx, claim); err != nil {
		s.log.Error("Failed to create claim", zap.Error(err), zap.String("card_id", cardID.String()))
		return nil, apperr.Internal("Server error")
	}

	s.log.Info("Claim created",
		zap.String("claim_id", claim.ID.String()),
		zap.String("card_id", cardID.String()),
		zap.String("creator", actor.ID.String()))

	return &response.ClaimEnvelope{
		Message: "Claim created successfully",
		Claim:   response.ClaimToResponse(claim),
	}, nil
}

func (s *claimService) Get(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.ClaimEnvelope, error) {
	claim, err := s.repo.Claim.FindByID(ctx, id, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to find claim", zap.Error(err), zap.String("claim_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if claim == nil {
		return nil, apperr.NotFound("Claim not found or access denied")
	}

	return &response.ClaimEnvelope{Claim: response.ClaimToResponse(claim)}, nil
}

func (s *claimService) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, req *request.ClaimRequest) (*response.ClaimEnvelope, error) {
	if err := s.validateClaimRequest(req); err != nil {
		return nil, err
	}

	claim := &entity.Claim{
		Base: entity.Base{
			ID:        id,
			UpdatedAt: time.Now(),
		},
		TypeOfClaim:     entity.ClaimType(req.TypeOfClaim),
		ProcessState:    entity.ProcessState(req.ProcessState),
		DiscussedAmount: req.DiscussedAmount.Float64(),
		PaidAmount:      req.PaidAmount.Float64(),
		PendingAmount:   entity.ComputePendingAmount(req.DiscussedAmount.Float64(), req.PaidAmount.Float64()),
	}

	updated, err := s.repo.Claim.Update(ctx, claim, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to update claim", zap.Error(err), zap.String("claim_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if updated == nil {
		return nil, apperr.NotFound("Claim not found or access denied")
	}

	s.log.Info("Claim updated", zap.String("claim_id", id.String()))

	return &response.ClaimEnvelope{
		Message: "Claim updated successfully",
		Claim:   response.ClaimToResponse(updated),
	}, nil
}

func (s *claimService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*response.MessageResponse, error) {
	deleted, err := s.repo.Claim.Delete(ctx, id, policy.OwnerScope(actor))
	if err != nil {
		s.log.Error("Failed to delete claim", zap.Error(err), zap.String("claim_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if deleted == nil {
		return nil, apperr.NotFound("Claim not found or access denied")
	}

	s.log.Info("Claim deleted",
		zap.String("claim_id", id.String()),
		zap.String("actor", actor.ID.String()))

	return &response.MessageResponse{Message: "Claim deleted successfully"}, nil
}
