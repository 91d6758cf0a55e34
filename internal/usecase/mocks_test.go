package usecase

import (
	"context"
	"time"

	"ops-portal/internal/data/entity"
	"ops-portal/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailOrEmployeeID(ctx context.Context, email, employeeID string) (*entity.User, error) {
	args := m.Called(ctx, email, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindDuplicateForOther(ctx context.Context, email, employeeID string, excludeID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, email, employeeID, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllWithCustomerCount(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetOTP(ctx context.Context, id uuid.UUID, otp string, expiry time.Time) error {
	args := m.Called(ctx, id, otp, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ClearOTPOpenResetWindow(ctx context.Context, id uuid.UUID, until time.Time) error {
	args := m.Called(ctx, id, until)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordWithResetWindow(ctx context.Context, email, passwordHash string) (bool, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Bool(0), args.Error(1)
}

// MockCustomerRepository is a mock implementation of repository.CustomerRepository.
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Customer, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer, ownerID *uuid.UUID) (*entity.Customer, error) {
	args := m.Called(ctx, customer, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

// MockCampRepository is a mock implementation of repository.CampRepository.
type MockCampRepository struct {
	mock.Mock
}

func (m *MockCampRepository) Create(ctx context.Context, camp *entity.Camp) error {
	args := m.Called(ctx, camp)
	return args.Error(0)
}

func (m *MockCampRepository) FindAll(ctx context.Context) ([]*entity.Camp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Camp), args.Error(1)
}

func (m *MockCampRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Camp, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Camp), args.Error(1)
}

func (m *MockCampRepository) Update(ctx context.Context, camp *entity.Camp) (*entity.Camp, error) {
	args := m.Called(ctx, camp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Camp), args.Error(1)
}

func (m *MockCampRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCampRepository) FindAssigned(ctx context.Context, userID uuid.UUID) ([]*entity.Camp, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Camp), args.Error(1)
}

func (m *MockCampRepository) UpdateStatusAssigned(ctx context.Context, id uuid.UUID, status entity.CampStatus, userID uuid.UUID) (*entity.Camp, error) {
	args := m.Called(ctx, id, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Camp), args.Error(1)
}

// MockCardRepository is a mock implementation of repository.CardRepository.
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *entity.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Card, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

func (m *MockCardRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Card, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

func (m *MockCardRepository) CardNumberTaken(ctx context.Context, cardNumber string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, cardNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCardRepository) Update(ctx context.Context, card *entity.Card, ownerID *uuid.UUID) (*entity.Card, error) {
	args := m.Called(ctx, card, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Card, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

// MockClaimRepository is a mock implementation of repository.ClaimRepository.
type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *MockClaimRepository) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*entity.Claim, error) {
	args := m.Called(ctx, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Claim), args.Error(1)
}

func (m *MockClaimRepository) FindByID(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Claim, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Claim), args.Error(1)
}

func (m *MockClaimRepository) Update(ctx context.Context, claim *entity.Claim, ownerID *uuid.UUID) (*entity.Claim, error) {
	args := m.Called(ctx, claim, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Claim), args.Error(1)
}

func (m *MockClaimRepository) Delete(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (*entity.Claim, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Claim), args.Error(1)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOTP(email, otp string) error {
	args := m.Called(email, otp)
	return args.Error(0)
}

func testRepository(users *MockUserRepository, customers *MockCustomerRepository, camps *MockCampRepository, cards *MockCardRepository, claims *MockClaimRepository) *repository.Repository {
	return &repository.Repository{
		User:     users,
		Customer: customers,
		Camp:     camps,
		Card:     cards,
		Claim:    claims,
	}
}
