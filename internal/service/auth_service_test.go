package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"jobtracker/internal/auth"
	"jobtracker/internal/errors"
	"jobtracker/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService("test-secret")
	assert.NoError(t, err)
	return svc
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:                 "Ana",
		Email:                "ana@x.com",
		Password:             "Abc12345!",
		PasswordConfirmation: "Abc12345!",
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name           string
		input          RegisterInput
		setupMock      func(*MockUserRepository)
		expectedError  error
		wantValidation bool
	}{
		{
			name:  "successful registration",
			input: validRegisterInput(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:  "email already registered",
			input: validRegisterInput(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@x.com").Return(&model.User{Email: "ana@x.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name:  "duplicate insert race caught by unique index",
			input: validRegisterInput(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name: "missing name",
			input: RegisterInput{
				Email:                "ana@x.com",
				Password:             "Abc12345!",
				PasswordConfirmation: "Abc12345!",
			},
			setupMock:      func(m *MockUserRepository) {},
			wantValidation: true,
		},
		{
			name: "invalid email",
			input: RegisterInput{
				Name:                 "Ana",
				Email:                "ana@nodot",
				Password:             "Abc12345!",
				PasswordConfirmation: "Abc12345!",
			},
			setupMock:      func(m *MockUserRepository) {},
			wantValidation: true,
		},
		{
			name: "weak password",
			input: RegisterInput{
				Name:                 "Ana",
				Email:                "ana@x.com",
				Password:             "abc12345",
				PasswordConfirmation: "abc12345",
			},
			setupMock:      func(m *MockUserRepository) {},
			wantValidation: true,
		},
		{
			name: "confirmation mismatch",
			input: RegisterInput{
				Name:                 "Ana",
				Email:                "ana@x.com",
				Password:             "Abc12345!",
				PasswordConfirmation: "Abc12345?",
			},
			setupMock:      func(m *MockUserRepository) {},
			wantValidation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, newTestJWTService(t))
			user, token, err := svc.Register(context.Background(), tt.input)

			switch {
			case tt.wantValidation:
				assert.True(t, errors.IsValidation(err), "expected validation error, got %v", err)
				assert.Nil(t, user)
				assert.Empty(t, token)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.input.Email, user.Email)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	passwordHash, err := auth.HashPassword("Abc12345!")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "ana@x.com",
			password: "Abc12345!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@x.com").Return(&model.User{
					ID:           1,
					Email:        "ana@x.com",
					PasswordHash: passwordHash,
				}, nil)
			},
		},
		{
			name:          "missing email",
			email:         "",
			password:      "Abc12345!",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:          "missing password",
			email:         "ana@x.com",
			password:      "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@x.com",
			password: "Abc12345!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "ana@x.com",
			password: "Wrong4567!",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ana@x.com").Return(&model.User{
					ID:           1,
					Email:        "ana@x.com",
					PasswordHash: passwordHash,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, newTestJWTService(t))
			user, token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_RegisterIssuesVerifiableToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "ana@x.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 9
	}).Return(nil)

	jwtSvc := newTestJWTService(t)
	svc := NewAuthService(mockRepo, jwtSvc)

	user, token, err := svc.Register(context.Background(), validRegisterInput())
	assert.NoError(t, err)

	claims, err := jwtSvc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}
