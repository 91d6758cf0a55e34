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

const campDateLayout = "2006-01-02"

// CampService: admin-only CRUD plus the two assignment-scoped employee
// operations. The admin routes are gated by middleware; the employee
// operations scope by assignment inside the query itself.
type CampService interface {
	Create(ctx context.Context, actor policy.Actor, req *request.CampRequest) (*response.CampEnvelope, error)
	List(ctx context.Context) (*response.CampListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*response.CampEnvelope, error)
	Update(ctx context.Context, id uuid.UUID, req *request.CampRequest) (*response.CampEnvelope, error)
	Delete(ctx context.Context, id uuid.UUID) (*response.MessageResponse, error)
	ListAssigned(ctx context.Context, actor policy.Actor) (*response.CampListResponse, error)
	UpdateStatus(ctx context.Context, actor policy.Actor, id uuid.UUID, req *request.UpdateCampStatusRequest) (*response.CampEnvelope, error)
}

type campService struct {
	camps repository.CampRepository
	log   *zap.Logger
}

func NewCampService(camps repository.CampRepository, log *zap.Logger) CampService {
	return &campService{
		camps: camps,
		log:   log,
	}
}

// parseCampRequest validates the shared create/update fields and returns the
// parsed date and assignment list.
func (s *campService) parseCampRequest(req *request.CampRequest) (time.Time, []string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Camp validation failed", zap.Any("errors", errs))
		return time.Time{}, nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	if !entity.ValidCampStatus(req.Status) {
		return time.Time{}, nil, apperr.BadRequest("Invalid status. Must be one of: planned, ongoing, completed, cancelled")
	}

	campDate, err := time.Parse(campDateLayout, req.CampDate)
	if err != nil {
		return time.Time{}, nil, apperr.BadRequest("Invalid camp_date. Expected YYYY-MM-DD")
	}

	assigned := make([]string, 0, len(req.AssignedTo))
	for _, raw := range req.AssignedTo {
		id, err := uuid.Parse(raw)
		if err != nil {
			return time.Time{}, nil, apperr.BadRequest("Invalid employee id in assigned_to")
		}
		assigned = append(assigned, id.String())
	}

	return campDate, assigned, nil
}

func (s *campService) Create(ctx context.Context, actor policy.Actor, req *request.CampRequest) (*response.CampEnvelope, error) {
	campDate, assigned, err := s.parseCampRequest(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	camp := &entity.Camp{
		ID:           uuid.New(),
		CampDate:     campDate,
		Location:     req.Location,
		LocationLink: req.LocationLink,
		PhoneNumber:  req.PhoneNumber,
		Status:       entity.CampStatus(req.Status),
		ConductedBy:  req.ConductedBy,
		AssignedTo:   assigned,
		CreatedBy:    actor.ID,
		CreatedAt:    now,
		LastUpdated:  now,
	}

	if err := s.camps.Create(ctx, camp); err != nil {
		s.log.Error("Failed to create camp", zap.Error(err), zap.String("creator", actor.ID.String()))
		return nil, apperr.Internal("Server error")
	}

	s.log.Info("Camp created",
		zap.String("camp_id", camp.ID.String()),
		zap.String("location", camp.Location),
		zap.Int("assigned", len(assigned)))

	return &response.CampEnvelope{
		Message: "Camp created successfully",
		Camp:    response.CampToResponse(camp),
	}, nil
}

func (s *campService) List(ctx context.Context) (*response.CampListResponse, error) {
	camps, err := s.camps.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list camps", zap.Error(err))
		return nil, apperr.Internal("Server error")
	}

	resp := response.CampsToResponse(camps)
	return &resp, nil
}

func (s *campService) Get(ctx context.Context, id uuid.UUID) (*response.CampEnvelope, error) {
	camp, err := s.camps.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find camp", zap.Error(err), zap.String("camp_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if camp == nil {
		return nil, apperr.NotFound("Camp not found")
	}

	return &response.CampEnvelope{Camp: response.CampToResponse(camp)}, nil
}

func (s *campService) Update(ctx context.Context, id uuid.UUID, req *request.CampRequest) (*response.CampEnvelope, error) {
	campDate, assigned, err := s.parseCampRequest(req)
	if err != nil {
		return nil, err
	}

	camp := &entity.Camp{
		ID:           id,
		CampDate:     campDate,
		Location:     req.Location,
		LocationLink: req.LocationLink,
		PhoneNumber:  req.PhoneNumber,
		Status:       entity.CampStatus(req.Status),
		ConductedBy:  req.ConductedBy,
		AssignedTo:   assigned,
		LastUpdated:  time.Now(),
	}

	updated, err := s.camps.Update(ctx, camp)
	if err != nil {
		s.log.Error("Failed to update camp", zap.Error(err), zap.String("camp_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if updated == nil {
		return nil, apperr.NotFound("Camp not found")
	}

	s.log.Info("Camp updated", zap.String("camp_id", id.String()))

	return &response.CampEnvelope{
		Message: "Camp updated successfully",
		Camp:    response.CampToResponse(updated),
	}, nil
}

func (s *campService) Delete(ctx context.Context, id uuid.UUID) (*response.MessageResponse, error) {
	deleted, err := s.camps.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete camp", zap.Error(err), zap.String("camp_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if !deleted {
		return nil, apperr.NotFound("Camp not found")
	}

	s.log.Info("Camp deleted", zap.String("camp_id", id.String()))

	return &response.MessageResponse{Message: "Camp deleted successfully"}, nil
}

func (s *campService) ListAssigned(ctx context.Context, actor policy.Actor) (*response.CampListResponse, error) {
	camps, err := s.camps.FindAssigned(ctx, actor.ID)
	if err != nil {
		s.log.Error("Failed to list assigned camps", zap.Error(err), zap.String("actor", actor.ID.String()))
		return nil, apperr.Internal("Server error")
	}

	resp := response.CampsToResponse(camps)
	return &resp, nil
}

func (s *campService) UpdateStatus(ctx context.Context, actor policy.Actor, id uuid.UUID, req *request.UpdateCampStatusRequest) (*response.CampEnvelope, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.BadRequest(utils.FormatValidationErrors(errs))
	}

	if !entity.ValidCampStatus(req.Status) {
		return nil, apperr.BadRequest("Invalid status. Must be one of: planned, ongoing, completed, cancelled")
	}

	// The assignment predicate sits inside the UPDATE itself; an unassigned
	// camp and a missing camp are indistinguishable here.
	updated, err := s.camps.UpdateStatusAssigned(ctx, id, entity.CampStatus(req.Status), actor.ID)
	if err != nil {
		s.log.Error("Failed to update camp status", zap.Error(err), zap.String("camp_id", id.String()))
		return nil, apperr.Internal("Server error")
	}
	if updated == nil {
		return nil, apperr.NotFound("Camp not found or not assigned to you")
	}

	s.log.Info("Camp status updated",
		zap.String("camp_id", id.String()),
		zap.String("status", req.Status),
		zap.String("actor", actor.ID.String()))

	return &response.CampEnvelope{
		Message: "Camp status updated successfully",
		Camp:    response.CampToResponse(updated),
	}, nil
}
