// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"expenselog/internal/domain"
	"expenselog/internal/util"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockSessionRepository is a mock implementation of repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("HashesPasswordAndAssignsID", func(t *testing.T) {
		ctx := context.Background()
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionRepository)
		svc := NewAuthService(mockUsers, mockSessions, util.GetLogger())

		assigned := primitive.NewObjectID()
		mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(assigned, nil).Once()

		user, err := svc.Signup(ctx, "kira", "Kira Vogel", "hunter22")

		require.NoError(t, err)
		assert.Equal(t, assigned, user.ID)
		assert.Equal(t, "kira", user.Username)
		assert.NotEqual(t, "hunter22", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
		mockUsers.AssertExpectations(t)
	})

	t.Run("RejectsEmptyCredentials", func(t *testing.T) {
		ctx := context.Background()
		svc := NewAuthService(new(MockUserRepository), new(MockSessionRepository), util.GetLogger())

		_, err := svc.Signup(ctx, "", "Anyone", "pw")
		assert.ErrorIs(t, err, util.ErrInvalidInput)

		_, err = svc.Signup(ctx, "anyone", "Anyone", "")
		assert.ErrorIs(t, err, util.ErrInvalidInput)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		ctx := context.Background()
		mockUsers := new(MockUserRepository)
		svc := NewAuthService(mockUsers, new(MockSessionRepository), util.GetLogger())

		mockUsers.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(primitive.NilObjectID, util.ErrDuplicateUsername).Once()

		_, err := svc.Signup(ctx, "kira", "Kira Vogel", "hunter22")

		assert.ErrorIs(t, err, util.ErrDuplicateUsername)
		mockUsers.AssertExpectations(t)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &domain.User{
		ID:           primitive.NewObjectID(),
		Username:     "kira",
		Fullname:     "Kira Vogel",
		PasswordHash: string(hash),
	}

	t.Run("OpensSession", func(t *testing.T) {
		ctx := context.Background()
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionRepository)
		svc := NewAuthService(mockUsers, mockSessions, util.GetLogger())

		mockUsers.On("GetByUsername", ctx, "kira").Return(storedUser, nil).Once()
		mockSessions.On("Create", ctx, mock.AnythingOfType("*domain.Session")).Return(nil).Once()

		token, user, err := svc.Login(ctx, "kira", "hunter22")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, storedUser.ID, user.ID)
		mockUsers.AssertExpectations(t)
		mockSessions.AssertExpectations(t)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ctx := context.Background()
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionRepository)
		svc := NewAuthService(mockUsers, mockSessions, util.GetLogger())

		mockUsers.On("GetByUsername", ctx, "kira").Return(storedUser, nil).Once()

		token, user, err := svc.Login(ctx, "kira", "wrong")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
		mockSessions.AssertNotCalled(t, "Create")
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		ctx := context.Background()
		mockUsers := new(MockUserRepository)
		svc := NewAuthService(mockUsers, new(MockSessionRepository), util.GetLogger())

		mockUsers.On("GetByUsername", ctx, "ghost").Return(nil, util.ErrNotFound).Once()

		_, _, err := svc.Login(ctx, "ghost", "whatever")

		// Unknown users and wrong passwords are indistinguishable to the caller.
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	storedUser := &domain.User{ID: primitive.NewObjectID(), Username: "kira"}

	t.Run("ValidSession", func(t *testing.T) {
		ctx := context.Background()
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionRepository)
		svc := NewAuthService(mockUsers, mockSessions, util.GetLogger())

		session := &domain.Session{
			Token:     "tok",
			UserID:    storedUser.ID,
			ExpiresAt: time.Now().Add(time.Hour),
		}
		mockSessions.On("Get", ctx, "tok").Return(session, nil).Once()
		mockUsers.On("GetByID", ctx, storedUser.ID).Return(storedUser, nil).Once()

		user, err := svc.Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, storedUser, user)
	})

	t.Run("ExpiredSession", func(t *testing.T) {
		ctx := context.Background()
		mockUsers := new(MockUserRepository)
		mockSessions := new(MockSessionRepository)
		svc := NewAuthService(mockUsers, mockSessions, util.GetLogger())

		session := &domain.Session{
			Token:     "tok",
			UserID:    storedUser.ID,
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		mockSessions.On("Get", ctx, "tok").Return(session, nil).Once()
		mockSessions.On("Delete", ctx, "tok").Return(nil).Once()

		user, err := svc.Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Nil(t, user)
		mockUsers.AssertNotCalled(t, "GetByID")
	})

	t.Run("UnknownToken", func(t *testing.T) {
		ctx := context.Background()
		mockSessions := new(MockSessionRepository)
		svc := NewAuthService(new(MockUserRepository), mockSessions, util.GetLogger())

		mockSessions.On("Get", ctx, "missing").Return(nil, util.ErrNotFound).Once()

		user, err := svc.Authenticate(ctx, "missing")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Nil(t, user)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	mockSessions := new(MockSessionRepository)
	svc := NewAuthService(new(MockUserRepository), mockSessions, util.GetLogger())

	mockSessions.On("Delete", ctx, "tok").Return(nil).Once()

	require.NoError(t, svc.Logout(ctx, "tok"))
	mockSessions.AssertExpectations(t)
}
