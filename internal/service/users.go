package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/charterpoint/transport-leads-api/internal/dto"
	"github.com/charterpoint/transport-leads-api/internal/entity"
	"github.com/charterpoint/transport-leads-api/internal/repository"
)

// UserService encapsulates administrative operations for dashboard operators.
type UserService struct {
	repo repository.AdminUsersRepository
}

// NewUserService builds a new UserService instance.
func NewUserService(repo repository.AdminUsersRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns all operators as DTOs.
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, userResponse(&u))
	}
	return responses, nil
}

// CreateUser creates a new operator with the supplied role.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.TrimSpace(req.Role)
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}
	if req.Role == "" {
		req.Role = "admin"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, req.Email, string(hashed), req.DisplayName, req.Role)
	if err != nil {
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

// UpdateUser mutates selected operator fields.
func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid user id")
	}

	var fields repository.AdminUserUpdate

	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		if trimmed == "" {
			return nil, errors.New("email cannot be empty")
		}
		fields.Email = &trimmed
	}
	if req.Role != nil {
		trimmed := strings.TrimSpace(*req.Role)
		if trimmed == "" {
			return nil, errors.New("role cannot be empty")
		}
		fields.Role = &trimmed
	}
	if req.DisplayName != nil {
		trimmed := strings.TrimSpace(*req.DisplayName)
		fields.DisplayName = &trimmed
	}
	if req.Password != nil {
		if strings.TrimSpace(*req.Password) == "" {
			return nil, errors.New("password cannot be empty")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		pwd := string(hashed)
		fields.PasswordHash = &pwd
	}
	fields.Active = req.Active

	user, err := s.repo.Update(ctx, userID, fields)
	if err != nil {
		return nil, err
	}

	resp := userResponse(user)
	return &resp, nil
}

// DeleteUser removes an operator by id.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return errors.New("invalid user id")
	}
	return s.repo.Delete(ctx, userID)
}

func userResponse(u *entity.AdminUser) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Active:      u.Active,
	}
}
