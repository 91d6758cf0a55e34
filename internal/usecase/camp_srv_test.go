package usecase

import (
	"context"
	"testing"

	"ops-portal/internal/apperr"
	"ops-portal/internal/data/entity"
	"ops-portal/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func validCampRequest(assigned ...string) *request.CampRequest {
	return &request.CampRequest{
		CampDate:   "2026-09-15",
		Location:   "Mumbai Central",
		Status:     "planned",
		AssignedTo: assigned,
	}
}

func TestCampService_Create(t *testing.T) {
	actor := adminActor()

	t.Run("invalid status", func(t *testing.T) {
		svc := NewCampService(new(MockCampRepository), zap.NewNop())

		req := validCampRequest()
		req.Status = "done"

		_, err := svc.Create(context.Background(), actor, req)

		appErr := apperr.From(err)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Invalid status. Must be one of: planned, ongoing, completed, cancelled", appErr.Message)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc := NewCampService(new(MockCampRepository), zap.NewNop())

		req := validCampRequest()
		req.CampDate = "15-09-2026"

		_, err := svc.Create(context.Background(), actor, req)

		assert.Equal(t, 400, apperr.From(err).Status)
	})

	t.Run("invalid assigned_to entry", func(t *testing.T) {
		svc := NewCampService(new(MockCampRepository), zap.NewNop())

		_, err := svc.Create(context.Background(), actor, validCampRequest("not-a-uuid"))

		assert.Equal(t, 400, apperr.From(err).Status)
	})

	t.Run("success records creator and assignments", func(t *testing.T) {
		camps := new(MockCampRepository)

		var created *entity.Camp
		camps.On("Create", mock.Anything, mock.AnythingOfType("*entity.Camp")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Camp) }).
			Return(nil)

		svc := NewCampService(camps, zap.NewNop())
		emp1, emp2 := uuid.New(), uuid.New()

		resp, err := svc.Create(context.Background(), actor, validCampRequest(emp1.String(), emp2.String()))

		assert.NoError(t, err)
		assert.Equal(t, "Camp created successfully", resp.Message)
		assert.Equal(t, actor.ID, created.CreatedBy)
		assert.Equal(t, []string{emp1.String(), emp2.String()}, created.AssignedTo)
		assert.Equal(t, entity.CampPlanned, created.Status)
	})
}

func TestCampService_UpdateStatus(t *testing.T) {
	id := uuid.New()

	t.Run("invalid status", func(t *testing.T) {
		svc := NewCampService(new(MockCampRepository), zap.NewNop())

		_, err := svc.UpdateStatus(context.Background(), employeeActor(), id, &request.UpdateCampStatusRequest{Status: "finished"})

		appErr := apperr.From(err)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Invalid status. Must be one of: planned, ongoing, completed, cancelled", appErr.Message)
	})

	t.Run("assigned employee succeeds", func(t *testing.T) {
		camps := new(MockCampRepository)
		actor := employeeActor()
		camps.On("UpdateStatusAssigned", mock.Anything, id, entity.CampOngoing, actor.ID).
			Return(&entity.Camp{ID: id, Status: entity.CampOngoing, AssignedTo: []string{actor.ID.String()}}, nil)

		svc := NewCampService(camps, zap.NewNop())

		resp, err := svc.UpdateStatus(context.Background(), actor, id, &request.UpdateCampStatusRequest{Status: "ongoing"})

		assert.NoError(t, err)
		assert.Equal(t, entity.CampOngoing, resp.Camp.Status)
	})

	t.Run("unassigned employee gets the not-assigned 404", func(t *testing.T) {
		camps := new(MockCampRepository)
		actor := employeeActor()
		camps.On("UpdateStatusAssigned", mock.Anything, id, entity.CampOngoing, actor.ID).Return(nil, nil)

		svc := NewCampService(camps, zap.NewNop())

		_, err := svc.UpdateStatus(context.Background(), actor, id, &request.UpdateCampStatusRequest{Status: "ongoing"})

		appErr := apperr.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "Camp not found or not assigned to you", appErr.Message)
	})
}

func TestCampService_ListAssigned(t *testing.T) {
	camps := new(MockCampRepository)
	actor := employeeActor()
	camps.On("FindAssigned", mock.Anything, actor.ID).
		Return([]*entity.Camp{{ID: uuid.New(), Location: "Delhi NCR", AssignedTo: []string{actor.ID.String()}}}, nil)

	svc := NewCampService(camps, zap.NewNop())

	resp, err := svc.ListAssigned(context.Background(), actor)

	assert.NoError(t, err)
	assert.Len(t, resp.Camps, 1)
	assert.Equal(t, "Delhi NCR", resp.Camps[0].Location)
}

func TestCampService_Delete_NotFound(t *testing.T) {
	id := uuid.New()

	camps := new(MockCampRepository)
	camps.On("Delete", mock.Anything, id).Return(false, nil)

	svc := NewCampService(camps, zap.NewNop())

	_, err := svc.Delete(context.Background(), id)

	appErr := apperr.From(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Camp not found", appErr.Message)
}
