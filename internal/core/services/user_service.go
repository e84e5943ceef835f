package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	portsrepo "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/repositories"
	portssvc "github.com/vinayak20130/dino-ventures-assignment/internal/core/ports/services"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
	"github.com/vinayak20130/dino-ventures-assignment/internal/middleware"
)

// userService manages the user reference entity.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser creates an ordinary (role USER) user.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	user := domain.User{
		UserID:   uuid.NewString(),
		Username: req.Username,
		Role:     domain.RoleUser,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Warn("Failed to create user", slog.String("username", req.Username), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("User created", slog.String("user_id", user.UserID), slog.String("username", user.Username))
	return &user, nil
}

// GetUserByID retrieves a user by id.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByUsername retrieves a user by username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}
