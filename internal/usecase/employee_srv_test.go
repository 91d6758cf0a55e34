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

func newEmployeeService(users *MockUserRepository, customers *MockCustomerRepository) EmployeeService {
	return NewEmployeeService(testRepository(users, customers, nil, nil, nil), zap.NewNop())
}

func TestEmployeeService_List_IncludesCustomerCount(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindAllWithCustomerCount", mock.Anything).Return([]*entity.User{
		{ID: uuid.New(), EmployeeID: "EMP001", Name: "John", Role: entity.RoleEmployee, CustomerCount: 4},
		{ID: uuid.New(), EmployeeID: "ADMIN001", Name: "Admin", Role: entity.RoleAdmin, CustomerCount: 0},
	}, nil)

	svc := newEmployeeService(users, new(MockCustomerRepository))

	resp, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, int64(4), resp.Employees[0].CustomerCount)
}

func TestEmployeeService_Update(t *testing.T) {
	id := uuid.New()
	req := &request.UpdateEmployeeRequest{
		EmployeeID: "EMP001",
		Name:       "John",
		Email:      "john@example.com",
		Contact:    "123",
		Role:       "employee",
	}

	t.Run("duplicate held by another user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindDuplicateForOther", mock.Anything, "john@example.com", "EMP001", id).
			Return(&entity.User{ID: uuid.New()}, nil)

		svc := newEmployeeService(users, new(MockCustomerRepository))

		_, err := svc.Update(context.Background(), id, req)

		appErr := apperr.From(err)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Email or Employee ID already exists for another user", appErr.Message)
	})

	t.Run("unknown employee", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindDuplicateForOther", mock.Anything, "john@example.com", "EMP001", id).Return(nil, nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil, nil)

		svc := newEmployeeService(users, new(MockCustomerRepository))

		_, err := svc.Update(context.Background(), id, req)

		appErr := apperr.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "Employee not found", appErr.Message)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc := newEmployeeService(new(MockUserRepository), new(MockCustomerRepository))

		bad := *req
		bad.Role = "supervisor"

		_, err := svc.Update(context.Background(), id, &bad)

		appErr := apperr.From(err)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Role must be either admin or employee", appErr.Message)
	})

	t.Run("successful update", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindDuplicateForOther", mock.Anything, "john@example.com", "EMP001", id).Return(nil, nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*entity.User")).
			Return(&entity.User{ID: id, EmployeeID: "EMP001", Name: "John", Email: "john@example.com", Contact: "123", Role: entity.RoleEmployee}, nil)

		svc := newEmployeeService(users, new(MockCustomerRepository))

		resp, err := svc.Update(context.Background(), id, req)

		assert.NoError(t, err)
		assert.Equal(t, "Employee updated successfully", resp.Message)
		assert.Equal(t, "John", resp.Employee.Name)
	})
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	id := uuid.New()

	users := new(MockUserRepository)
	users.On("Delete", mock.Anything, id).Return(false, nil)

	svc := newEmployeeService(users, new(MockCustomerRepository))

	_, err := svc.Delete(context.Background(), id)

	appErr := apperr.From(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "Employee not found", appErr.Message)
}

func TestEmployeeService_Customers(t *testing.T) {
	id := uuid.New()

	t.Run("unknown employee", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, id).Return(nil, nil)

		svc := newEmployeeService(users, new(MockCustomerRepository))

		_, err := svc.Customers(context.Background(), id)

		assert.Equal(t, 404, apperr.From(err).Status)
	})

	t.Run("lists rows owned by the employee", func(t *testing.T) {
		users := new(MockUserRepository)
		customers := new(MockCustomerRepository)
		users.On("FindByID", mock.Anything, id).Return(&entity.User{ID: id, Role: entity.RoleEmployee}, nil)
		customers.On("FindByOwner", mock.Anything, id).
			Return([]*entity.Customer{{Base: entity.Base{ID: uuid.New()}, CustomerName: "A", CreatedBy: id}}, nil)

		svc := newEmployeeService(users, customers)

		resp, err := svc.Customers(context.Background(), id)

		assert.NoError(t, err)
		assert.Len(t, resp.Customers, 1)
	})
}
