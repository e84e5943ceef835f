package dto

import (
	"github.com/vinayak20130/dino-ventures-assignment/internal/core/domain"
)

// CreateUserRequest is the payload for creating a reference user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID   string `json:"userID"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ToUserResponse converts a domain User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Role:     string(u.Role),
	}
}
