package services_test

import (
	"context"

	"github.com/SscSPs/user_auth_app/internal/core/domain"
	portsrepo "github.com/SscSPs/user_auth_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
// Each method can be driven either by a per-test Fn override (handy for
// stateful scenarios) or by the usual testify expectation API.
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	SaveUserFn           func(ctx context.Context, user domain.User) error
	UpdateTokensFn       func(ctx context.Context, userID, accessToken, refreshToken string) error
	UpdateBioFn          func(ctx context.Context, userID, bio string) error
	UpdatePasswordFn     func(ctx context.Context, userID, passwordHash string) error
	DeleteUserFn         func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateTokens(ctx context.Context, userID string, accessToken string, refreshToken string) error {
	if m.UpdateTokensFn != nil {
		return m.UpdateTokensFn(ctx, userID, accessToken, refreshToken)
	}
	args := m.Called(ctx, userID, accessToken, refreshToken)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateBio(ctx context.Context, userID string, bio string) error {
	if m.UpdateBioFn != nil {
		return m.UpdateBioFn(ctx, userID, bio)
	}
	args := m.Called(ctx, userID, bio)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID string, passwordHash string) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, userID, passwordHash)
	}
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)
