// Command seed loads sample data: one admin, three employees, a handful
// of customers and camps. Safe to run repeatedly; existing emails are
// left alone.
package main

import (
	"context"
	"log"
	"time"

	"ops-portal/internal/data/entity"
	"ops-portal/internal/data/repository"
	"ops-portal/migrations"
	"ops-portal/pkg/database"
	"ops-portal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := database.NewMigrator(db, migrations.FS, logger).Run(ctx); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)

	admin := seedUser(ctx, repos, logger, "ADMIN001", "Admin User", "admin@example.com", "9876543210", "admin123", entity.RoleAdmin)

	employees := []*entity.User{
		seedUser(ctx, repos, logger, "EMP001", "John Doe", "john@example.com", "9876543211", "employee123", entity.RoleEmployee),
		seedUser(ctx, repos, logger, "EMP002", "Jane Smith", "jane@example.com", "9876543212", "employee123", entity.RoleEmployee),
		seedUser(ctx, repos, logger, "EMP003", "Mike Johnson", "mike@example.com", "9876543213", "employee123", entity.RoleEmployee),
	}

	seedCustomers(ctx, repos, logger, employees)
	seedCamps(ctx, repos, logger, admin, employees)

	logger.Info("Sample data ready",
		zap.String("admin", "admin@example.com / admin123"),
		zap.String("employee", "john@example.com / employee123"))
}

func seedUser(ctx context.Context, repos *repository.Repository, logger *zap.Logger,
	employeeID, name, email, contact, password string, role entity.UserRole) *entity.User {

	existing, err := repos.User.FindByEmail(ctx, email)
	if err != nil {
		logger.Fatal("Failed to check user", zap.Error(err), zap.String("email", email))
	}
	if existing != nil {
		return existing
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		logger.Fatal("Failed to hash password", zap.Error(err))
	}

	user := &entity.User{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		Name:         name,
		Email:        email,
		Contact:      contact,
		PasswordHash: hashed,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := repos.User.Create(ctx, user); err != nil {
		logger.Fatal("Failed to create user", zap.Error(err), zap.String("email", email))
	}

	logger.Info("Seeded user", zap.String("email", email), zap.String("role", string(role)))
	return user
}

func seedCustomers(ctx context.Context, repos *repository.Repository, logger *zap.Logger, employees []*entity.User) {
	samples := []struct {
		name, phone, email, work, payMode string
		discussed, paid                   float64
		owner                             *entity.User
	}{
		{"Alice Brown", "9876543221", "alice@example.com", "Interior", "UPI", 50000, 40000, employees[0]},
		{"Bob Wilson", "9876543222", "bob@example.com", "Exterior", "Cash", 75000, 50000, employees[1]},
		{"Carol Davis", "9876543223", "carol@example.com", "Both", "Bank transfer", 100000, 70000, employees[2]},
		{"David Miller", "9876543224", "david@example.com", "Interior", "UPI", 30000, 30000, employees[0]},
	}

	for _, s := range samples {
		owned, err := repos.Customer.FindByOwner(ctx, s.owner.ID)
		if err != nil {
			logger.Fatal("Failed to check customers", zap.Error(err))
		}
		exists := false
		for _, c := range owned {
			if c.CustomerName == s.name {
				exists = true
				break
			}
		}
		if exists {
			continue
		}

		email := s.email
		payMode := s.payMode
		now := time.Now()
		customer := &entity.Customer{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			CustomerName:    s.name,
			PhoneNumber:     s.phone,
			Email:           &email,
			TypeOfWork:      entity.TypeOfWork(s.work),
			DiscussedAmount: s.discussed,
			PaidAmount:      s.paid,
			PendingAmount:   entity.ComputePendingAmount(s.discussed, s.paid),
			ModeOfPayment:   &payMode,
			CreatedBy:       s.owner.ID,
		}

		if err := repos.Customer.Create(ctx, customer); err != nil {
			logger.Fatal("Failed to create customer", zap.Error(err), zap.String("name", s.name))
		}

		logger.Info("Seeded customer", zap.String("name", s.name))
	}
}

func seedCamps(ctx context.Context, repos *repository.Repository, logger *zap.Logger, admin *entity.User, employees []*entity.User) {
	existing, err := repos.Camp.FindAll(ctx)
	if err != nil {
		logger.Fatal("Failed to check camps", zap.Error(err))
	}
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[c.Location] = true
	}

	day := 24 * time.Hour
	samples := []struct {
		date             time.Time
		location, link   string
		phone, conductor string
		status           entity.CampStatus
		assigned         []*entity.User
	}{
		{time.Now().Add(7 * day), "Mumbai Central", "https://maps.google.com/mumbai-central", "9876543231", "John Doe", entity.CampPlanned, []*entity.User{employees[0], employees[1]}},
		{time.Now().Add(14 * day), "Delhi NCR", "https://maps.google.com/delhi-ncr", "9876543232", "Jane Smith", entity.CampOngoing, []*entity.User{employees[1], employees[2]}},
		{time.Now().Add(-7 * day), "Bangalore Tech Park", "https://maps.google.com/bangalore-tech-park", "9876543233", "Mike Johnson", entity.CampCompleted, []*entity.User{employees[2]}},
	}

	for _, s := range samples {
		if seen[s.location] {
			continue
		}

		assigned := make([]string, 0, len(s.assigned))
		for _, u := range s.assigned {
			assigned = append(assigned, u.ID.String())
		}

		link := s.link
		phone := s.phone
		conductor := s.conductor
		now := time.Now()
		camp := &entity.Camp{
			ID:           uuid.New(),
			CampDate:     s.date,
			Location:     s.location,
			LocationLink: &link,
			PhoneNumber:  &phone,
			Status:       s.status,
			ConductedBy:  &conductor,
			AssignedTo:   assigned,
			CreatedBy:    admin.ID,
			CreatedAt:    now,
			LastUpdated:  now,
		}

		if err := repos.Camp.Create(ctx, camp); err != nil {
			logger.Fatal("Failed to create camp", zap.Error(err), zap.String("location", s.location))
		}

		logger.Info("Seeded camp", zap.String("location", s.location))
	}
}
