package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"jobtracker/internal/errors"
	"jobtracker/internal/model"
)

func validUpdateInput() UpdateUserInput {
	return UpdateUserInput{
		Name:  "Ana Lima",
		Email: "ana@x.com",
	}
}

func storedUser() *model.User {
	return &model.User{
		ID:           1,
		Name:         "Ana",
		Email:        "ana@x.com",
		PasswordHash: "$2a$10$existinghashexistinghashexisting",
	}
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(storedUser(), nil)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.GetUser(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "ana@x.com", user.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, nil)
		user, err := svc.GetUser(context.Background(), 99)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	tests := []struct {
		name           string
		targetID       uint
		callerID       uint
		input          UpdateUserInput
		setupMock      func(*MockUserRepository)
		expectedError  error
		wantValidation bool
		check          func(*testing.T, *model.User)
	}{
		{
			name:     "successful update without password change",
			targetID: 1,
			callerID: 1,
			input: UpdateUserInput{
				Name:   "Ana Lima",
				Email:  "ana@x.com",
				Avatar: "ana.png",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(storedUser(), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.Equal(t, "Ana Lima", u.Name)
				assert.Equal(t, "ana.png", u.Avatar)
				// Unrelated updates never touch the stored hash.
				assert.Equal(t, storedUser().PasswordHash, u.PasswordHash)
			},
		},
		{
			name:     "password rehashed when changed",
			targetID: 1,
			callerID: 1,
			input: UpdateUserInput{
				Name:                 "Ana",
				Email:                "ana@x.com",
				Password:             "New12345!",
				PasswordConfirmation: "New12345!",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(storedUser(), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			check: func(t *testing.T, u *model.User) {
				assert.NotEqual(t, storedUser().PasswordHash, u.PasswordHash)
				assert.NotEqual(t, "New12345!", u.PasswordHash)
			},
		},
		{
			name:     "email change re-checks uniqueness",
			targetID: 1,
			callerID: 1,
			input: UpdateUserInput{
				Name:  "Ana",
				Email: "taken@x.com",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(storedUser(), nil)
				m.On("FindByEmail", mock.Anything, "taken@x.com").Return(&model.User{ID: 2, Email: "taken@x.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name:      "caller cannot edit another user",
			targetID:  2,
			callerID:  1,
			input:     validUpdateInput(),
			setupMock: func(m *MockUserRepository) {},
			// Reported as not-found, indistinguishable from an absent id.
			expectedError: errors.ErrUserNotFound,
		},
		{
			name:     "target absent",
			targetID: 1,
			callerID: 1,
			input:    validUpdateInput(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
		{
			name:     "weak new password rejected",
			targetID: 1,
			callerID: 1,
			input: UpdateUserInput{
				Name:                 "Ana",
				Email:                "ana@x.com",
				Password:             "short1!",
				PasswordConfirmation: "short1!",
			},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(storedUser(), nil)
			},
			wantValidation: true,
		},
		{
			name:     "invalid email rejected before lookup",
			targetID: 1,
			callerID: 1,
			input: UpdateUserInput{
				Name:  "Ana",
				Email: "not-an-email",
			},
			setupMock:      func(m *MockUserRepository) {},
			wantValidation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, nil)
			user, err := svc.UpdateUser(context.Background(), tt.targetID, tt.callerID, tt.input)

			switch {
			case tt.wantValidation:
				assert.True(t, errors.IsValidation(err), "expected validation error, got %v", err)
				assert.Nil(t, user)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, user)
				if tt.check != nil {
					tt.check(t, user)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

		svc := NewUserService(mockRepo, nil)
		assert.NoError(t, svc.DeleteUser(context.Background(), 1, 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("caller cannot delete another user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewUserService(mockRepo, nil)
		err := svc.DeleteUser(context.Background(), 2, 1)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("absent target", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("Delete", mock.Anything, uint(1)).Return(gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, nil)
		err := svc.DeleteUser(context.Background(), 1, 1)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}
