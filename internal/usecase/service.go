package usecase

import (
	"ops-portal/internal/data/repository"
	"ops-portal/internal/mailer"
	"ops-portal/pkg/token"
	"ops-portal/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Employee EmployeeService
	Customer CustomerService
	Camp     CampService
	Card     CardService
	Claim    ClaimService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	tokens := token.NewJWTManager(config.JWT.Secret, config.JWT.ExpiryHours)
	mail := mailer.New(config.Email, log)

	return &Service{
		Auth:     NewAuthService(repo, tokens, mail, config, log),
		Employee: NewEmployeeService(repo, log),
		Customer: NewCustomerService(repo.Customer, log),
		Camp:     NewCampService(repo.Camp, log),
		Card:     NewCardService(repo, log),
		Claim:    NewClaimService(repo, log),
	}
}
