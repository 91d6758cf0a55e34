package usecase

import (
	"context"
	"testing"

	"ops-portal/internal/apperr"
	"ops-portal/internal/data/entity"
	"ops-portal/internal/dto/request"
	"ops-portal/internal/policy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func employeeActor() policy.Actor {
	return policy.Actor{ID: uuid.New(), Role: entity.RoleEmployee}
}

func adminActor() policy.Actor {
	return policy.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
}

func TestCustomerService_Create_DerivesPendingAmount(t *testing.T) {
	tests := []struct {
		name        string
		discussed   float64
		paid        float64
		wantPending float64
	}{
		{"partial payment", 100, 40, 60},
		{"fully paid", 100, 100, 0},
		{"overpaid clamps to zero", 100, 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers := new(MockCustomerRepository)

			var created *entity.Customer
			customers.On("Create", mock.Anything, mock.AnythingOfType("*entity.Customer")).
				Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Customer) }).
				Return(nil)

			svc := NewCustomerService(customers, zap.NewNop())
			actor := employeeActor()

			resp, err := svc.Create(context.Background(), actor, &request.CustomerRequest{
				CustomerName:    "A",
				PhoneNumber:     "1",
				TypeOfWork:      "Interior",
				DiscussedAmount: request.Amount(tt.discussed),
				PaidAmount:      request.Amount(tt.paid),
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPending, created.PendingAmount)
			assert.Equal(t, actor.ID, created.CreatedBy)
			assert.Equal(t, tt.wantPending, resp.Customer.PendingAmount)
		})
	}
}

func TestCustomerService_Create_RejectsInvalidTypeOfWork(t *testing.T) {
	svc := NewCustomerService(new(MockCustomerRepository), zap.NewNop())

	_, err := svc.Create(context.Background(), employeeActor(), &request.CustomerRequest{
		CustomerName: "A",
		PhoneNumber:  "1",
		TypeOfWork:   "Roofing",
	})

	assert.Equal(t, 400, apperr.From(err).Status)
}

func TestCustomerService_List_ScopesByRole(t *testing.T) {
	t.Run("admin sees all", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		customers.On("FindAll", mock.Anything).Return([]*entity.Customer{}, nil)

		svc := NewCustomerService(customers, zap.NewNop())

		_, err := svc.List(context.Background(), adminActor())

		assert.NoError(t, err)
		customers.AssertNotCalled(t, "FindByOwner", mock.Anything, mock.Anything)
	})

	t.Run("employee sees own rows only", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		actor := employeeActor()
		customers.On("FindByOwner", mock.Anything, actor.ID).Return([]*entity.Customer{}, nil)

		svc := NewCustomerService(customers, zap.NewNop())

		_, err := svc.List(context.Background(), actor)

		assert.NoError(t, err)
		customers.AssertNotCalled(t, "FindAll", mock.Anything)
	})
}

func TestCustomerService_Get_OwnershipScope(t *testing.T) {
	id := uuid.New()

	t.Run("employee lookup is owner scoped", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		actor := employeeActor()
		customers.On("FindByID", mock.Anything, id, &actor.ID).Return(nil, nil)

		svc := NewCustomerService(customers, zap.NewNop())

		_, err := svc.Get(context.Background(), actor, id)

		appErr := apperr.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "Customer not found or access denied", appErr.Message)
		customers.AssertExpectations(t)
	})

	t.Run("admin lookup is unscoped", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		customers.On("FindByID", mock.Anything, id, (*uuid.UUID)(nil)).
			Return(&entity.Customer{Base: entity.Base{ID: id}, CustomerName: "A"}, nil)

		svc := NewCustomerService(customers, zap.NewNop())

		resp, err := svc.Get(context.Background(), adminActor(), id)

		assert.NoError(t, err)
		assert.Equal(t, "A", resp.Customer.CustomerName)
	})
}

func TestCustomerService_Update_NotOwned(t *testing.T) {
	customers := new(MockCustomerRepository)
	actor := employeeActor()
	customers.On("Update", mock.Anything, mock.AnythingOfType("*entity.Customer"), &actor.ID).Return(nil, nil)

	svc := NewCustomerService(customers, zap.NewNop())

	_, err := svc.Update(context.Background(), actor, uuid.New(), &request.CustomerRequest{
		CustomerName: "A",
		PhoneNumber:  "1",
		TypeOfWork:   "Both",
	})

	appErr := apperr.From(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Customer not found or access denied", appErr.Message)
}

func TestCustomerService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("owned row deleted", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		actor := employeeActor()
		customers.On("Delete", mock.Anything, id, &actor.ID).Return(true, nil)

		svc := NewCustomerService(customers, zap.NewNop())

		resp, err := svc.Delete(context.Background(), actor, id)

		assert.NoError(t, err)
		assert.Equal(t, "Customer deleted successfully", resp.Message)
	})

	t.Run("unowned row reads as absent", func(t *testing.T) {
		customers := new(MockCustomerRepository)
		actor := employeeActor()
		customers.On("Delete", mock.Anything, id, &actor.ID).Return(false, nil)

		svc := NewCustomerService(customers, zap.NewNop())

		_, err := svc.Delete(context.Background(), actor, id)

		assert.Equal(t, 404, apperr.From(err).Status)
	})
}
