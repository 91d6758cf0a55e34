package usecase

import (
	"context"
	"testing"
	"time"

	"ops-portal/internal/apperr"
	"ops-portal/internal/data/entity"
	"ops-portal/internal/dto/request"
	"ops-portal/pkg/token"
	"ops-portal/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24},
		OTP: utils.OTPConfig{ExpiryMinutes: 10, Length: 6},
	}
}

func newAuthService(users *MockUserRepository, mail *MockMailer) AuthService {
	config := testConfig()
	tokens := token.NewJWTManager(config.JWT.Secret, config.JWT.ExpiryHours)
	repo := testRepository(users, nil, nil, nil, nil)
	return NewAuthService(repo, tokens, mail, config, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	validReq := func() *request.RegisterRequest {
		return &request.RegisterRequest{
			EmployeeID: "EMP010",
			Name:       "X",
			Email:      "x@x.com",
			Contact:    "123",
			Password:   "secret1",
			Role:       "employee",
		}
	}

	tests := []struct {
		name        string
		mutate      func(*request.RegisterRequest)
		setupMock   func(*MockUserRepository)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "successful registration",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmailOrEmployeeID", mock.Anything, "x@x.com", "EMP010").Return(nil, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
			},
		},
		{
			// no minimum length on registration; only reset-password enforces one
			name:   "short password accepted",
			mutate: func(r *request.RegisterRequest) { r.Password = "pw" },
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmailOrEmployeeID", mock.Anything, "x@x.com", "EMP010").Return(nil, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)
			},
		},
		{
			name:        "invalid role",
			mutate:      func(r *request.RegisterRequest) { r.Role = "manager" },
			wantStatus:  400,
			wantMessage: "Role must be either admin or employee",
		},
		{
			name: "duplicate email or employee id",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmailOrEmployeeID", mock.Anything, "x@x.com", "EMP010").
					Return(&entity.User{ID: uuid.New(), Email: "x@x.com"}, nil)
			},
			wantStatus:  400,
			wantMessage: "User with this email or employee ID already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			if tt.setupMock != nil {
				tt.setupMock(users)
			}
			svc := newAuthService(users, new(MockMailer))

			req := validReq()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			resp, err := svc.Register(context.Background(), req)

			if tt.wantStatus != 0 {
				assert.Nil(t, resp)
				appErr := apperr.From(err)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				assert.Contains(t, appErr.Message, tt.wantMessage)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, "EMP010", resp.User.EmployeeID)
			assert.Equal(t, entity.RoleEmployee, resp.User.Role)
			users.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_StoresHashNotPlaintext(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmailOrEmployeeID", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	var created *entity.User
	users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.User) }).
		Return(nil)

	svc := newAuthService(users, new(MockMailer))

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		EmployeeID: "EMP011", Name: "Y", Email: "y@y.com", Contact: "456",
		Password: "secret1", Role: "admin",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret1", created.PasswordHash))
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := utils.HashPassword("secret1")
	user := &entity.User{
		ID:           uuid.New(),
		EmployeeID:   "EMP001",
		Name:         "John",
		Email:        "john@example.com",
		Contact:      "123",
		PasswordHash: hashed,
		Role:         entity.RoleEmployee,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository)
		wantErr   bool
	}{
		{
			name:     "successful login",
			email:    "john@example.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "john@example.com").Return(user, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name:     "wrong password",
			email:    "john@example.com",
			password: "wrong-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "john@example.com").Return(user, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tt.setupMock(users)
			svc := newAuthService(users, new(MockMailer))

			resp, err := svc.Login(context.Background(), &request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})

			if tt.wantErr {
				assert.Nil(t, resp)
				appErr := apperr.From(err)
				// Unknown email and wrong password are indistinguishable.
				assert.Equal(t, 400, appErr.Status)
				assert.Equal(t, "Invalid credentials", appErr.Message)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, "john@example.com", resp.User.Email)
		})
	}
}

func TestAuthService_ForgotPassword(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "john@example.com"}

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
		svc := newAuthService(users, new(MockMailer))

		_, err := svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{Email: "ghost@example.com"})

		assert.Equal(t, 404, apperr.From(err).Status)
	})

	t.Run("stores OTP and sends email", func(t *testing.T) {
		users := new(MockUserRepository)
		mail := new(MockMailer)

		var storedOTP string
		users.On("FindByEmail", mock.Anything, "john@example.com").Return(user, nil)
		users.On("SetOTP", mock.Anything, user.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) { storedOTP = args.String(2) }).
			Return(nil)
		mail.On("SendOTP", "john@example.com", mock.AnythingOfType("string")).Return(nil)

		svc := newAuthService(users, mail)

		resp, err := svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{Email: "john@example.com"})

		assert.NoError(t, err)
		assert.Equal(t, "john@example.com", resp.Email)
		assert.Len(t, storedOTP, 6)
		mail.AssertCalled(t, "SendOTP", "john@example.com", storedOTP)
	})

	t.Run("mailer failure surfaces as 500", func(t *testing.T) {
		users := new(MockUserRepository)
		mail := new(MockMailer)

		users.On("FindByEmail", mock.Anything, "john@example.com").Return(user, nil)
		users.On("SetOTP", mock.Anything, user.ID, mock.Anything, mock.Anything).Return(nil)
		mail.On("SendOTP", mock.Anything, mock.Anything).Return(assert.AnError)

		svc := newAuthService(users, mail)

		_, err := svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{Email: "john@example.com"})

		assert.Equal(t, 500, apperr.From(err).Status)
	})
}

func TestAuthService_VerifyOTP(t *testing.T) {
	otp := "123456"
	future := time.Now().Add(5 * time.Minute)
	past := time.Now().Add(-5 * time.Minute)

	tests := []struct {
		name        string
		user        *entity.User
		submitted   string
		wantMessage string
	}{
		{
			name:        "no OTP on file",
			user:        &entity.User{ID: uuid.New(), Email: "a@a.com"},
			submitted:   otp,
			wantMessage: "No OTP found. Please request a new one.",
		},
		{
			name:        "expired OTP",
			user:        &entity.User{ID: uuid.New(), Email: "a@a.com", OTP: &otp, OTPExpiry: &past},
			submitted:   otp,
			wantMessage: "OTP has expired. Please request a new one.",
		},
		{
			name:        "wrong OTP",
			user:        &entity.User{ID: uuid.New(), Email: "a@a.com", OTP: &otp, OTPExpiry: &future},
			submitted:   "999999",
			wantMessage: "Invalid OTP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			users.On("FindByEmail", mock.Anything, "a@a.com").Return(tt.user, nil)
			svc := newAuthService(users, new(MockMailer))

			_, err := svc.VerifyOTP(context.Background(), &request.VerifyOTPRequest{Email: "a@a.com", OTP: tt.submitted})

			appErr := apperr.From(err)
			assert.Equal(t, 400, appErr.Status)
			assert.Equal(t, tt.wantMessage, appErr.Message)
		})
	}

	t.Run("success clears OTP and opens reset window", func(t *testing.T) {
		user := &entity.User{ID: uuid.New(), Email: "a@a.com", OTP: &otp, OTPExpiry: &future}
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "a@a.com").Return(user, nil)
		users.On("ClearOTPOpenResetWindow", mock.Anything, user.ID, mock.AnythingOfType("time.Time")).Return(nil)

		svc := newAuthService(users, new(MockMailer))

		resp, err := svc.VerifyOTP(context.Background(), &request.VerifyOTPRequest{Email: "a@a.com", OTP: otp})

		assert.NoError(t, err)
		assert.Equal(t, "OTP verified successfully", resp.Message)
		users.AssertExpectations(t)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		svc := newAuthService(new(MockUserRepository), new(MockMailer))

		_, err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
			Email: "a@a.com", NewPassword: "abc",
		})

		assert.Equal(t, 400, apperr.From(err).Status)
	})

	t.Run("rejected without a prior OTP verification", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("UpdatePasswordWithResetWindow", mock.Anything, "a@a.com", mock.AnythingOfType("string")).Return(false, nil)

		svc := newAuthService(users, new(MockMailer))

		_, err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
			Email: "a@a.com", NewPassword: "newsecret",
		})

		appErr := apperr.From(err)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "OTP verification required. Please verify your OTP first.", appErr.Message)
	})

	t.Run("success stores a hash", func(t *testing.T) {
		users := new(MockUserRepository)

		var storedHash string
		users.On("UpdatePasswordWithResetWindow", mock.Anything, "a@a.com", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { storedHash = args.String(2) }).
			Return(true, nil)

		svc := newAuthService(users, new(MockMailer))

		resp, err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
			Email: "a@a.com", NewPassword: "newsecret",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Password reset successful", resp.Message)
		assert.True(t, utils.CheckPasswordHash("newsecret", storedHash))
	})
}
