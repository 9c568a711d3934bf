package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"jobtracker/internal/auth"
	"jobtracker/internal/cache"
	"jobtracker/internal/errors"
	"jobtracker/internal/model"
	"jobtracker/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateUserInput carries the fields submitted on a profile update.
// Name and email are always required; a non-empty password triggers a
// rehash, otherwise the stored hash is left untouched.
type UpdateUserInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Avatar               string
	Role                 string
}

// UserService exposes user directory operations. Mutations are
// owner-only: a caller editing or deleting anyone but themselves gets
// the same not-found as for an absent id.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, targetID, callerID uint, input UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, targetID, callerID uint) error
}

type userService struct {
	repo      repository.UserRepository
	cache     *cache.Client
	validator *PolicyValidator
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache, validator: NewPolicyValidator()}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser applies a profile update. Email uniqueness is re-checked
// only when the email actually changes, and the password is rehashed
// only when a new one is submitted.
func (s *userService) UpdateUser(ctx context.Context, targetID, callerID uint, input UpdateUserInput) (*model.User, error) {
	if targetID != callerID {
		return nil, errors.ErrUserNotFound
	}

	if input.Name == "" {
		return nil, errors.NewValidation("name is required")
	}
	if err := s.validator.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if input.Email != user.Email {
		existing, err := s.repo.FindByEmail(ctx, input.Email)
		if err == nil && existing != nil {
			return nil, errors.ErrEmailTaken
		}
		if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	if input.Role != "" {
		user.Role = input.Role
	}

	if input.Password != "" {
		if err := s.validator.ValidateNewPassword(input.Password, input.PasswordConfirmation); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, targetID, callerID uint) error {
	if targetID != callerID {
		return errors.ErrUserNotFound
	}

	if err := s.repo.Delete(ctx, targetID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(targetID))
	return nil
}
