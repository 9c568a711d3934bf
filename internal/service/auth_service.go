package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"jobtracker/internal/auth"
	"jobtracker/internal/errors"
	"jobtracker/internal/model"
	"jobtracker/internal/repository"
)

// ErrInvalidCredentials is returned when email or password is
// incorrect. Unknown email and wrong password map to the same error so
// login failures do not reveal which part was wrong.
var ErrInvalidCredentials = stderrors.New("invalid email or password")

// RegisterInput carries the fields submitted on registration.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
	Role                 string
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSvc    *auth.JWTService
	validator *PolicyValidator
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtSvc *auth.JWTService) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSvc:    jwtSvc,
		validator: NewPolicyValidator(),
	}
}

// Register validates the submitted fields, creates the user with a
// hashed password and issues a token. The email uniqueness check runs
// before the insert; a concurrent duplicate insert that slips past it
// is caught by the unique index and reported the same way.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	if input.Name == "" {
		return nil, "", errors.NewValidation("name is required")
	}
	if err := s.validator.ValidateEmail(input.Email); err != nil {
		return nil, "", err
	}
	if err := s.validator.ValidateNewPassword(input.Password, input.PasswordConfirmation); err != nil {
		return nil, "", err
	}

	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, "", errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}

	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", errors.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user by email and password and issues a token.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}
