package services

import (
	"context"

	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
	"github.com/vinayak20130/dino-ventures-assignment/internal/dto"
)

// UserSvcFacade exposes reference-entity operations for users.
type UserSvcFacade interface {
	// CreateUser creates an ordinary (role USER) user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
