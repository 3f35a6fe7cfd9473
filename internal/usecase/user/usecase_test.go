package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	domain "club-service/internal/domain/user"
	apperrors "club-service/pkg/errors"
	"club-service/pkg/security"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func setupTestService(t *testing.T) (*Service, *MockRepository, *security.BcryptHasher) {
	mockRepo := new(MockRepository)
	hasher := security.NewBcryptHasherWithCost(bcrypt.MinCost)
	svc := New(mockRepo, hasher, zaptest.NewLogger(t), nil)
	return svc, mockRepo, hasher
}

// ==================== REGISTER TESTS ====================

func TestRegister_Success(t *testing.T) {
	svc, mockRepo, hasher := setupTestService(t)
	ctx := context.Background()

	req := RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "hunter22"}

	mockRepo.On("GetByEmail", ctx, req.Email).Return(nil, nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == req.Name && u.Email == req.Email &&
			u.PasswordHash != req.Password && hasher.Verify(req.Password, u.PasswordHash)
	})).Return(int64(1), nil)

	resp, err := svc.Register(ctx, req)

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)
	mockRepo.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	existing := &domain.User{ID: 1, Name: "Ann", Email: "a@x.com", PasswordHash: "h"}
	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(existing, nil)

	// Different name and password still conflict.
	resp, err := svc.Register(ctx, RegisterRequest{Name: "Bob", Email: "a@x.com", Password: "other"})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsConflict(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_ConflictAtInsert(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, nil)
	mockRepo.On("Create", ctx, mock.Anything).Return(int64(0), apperrors.ErrEmailTaken)

	_, err := svc.Register(ctx, RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "pw"})

	assert.True(t, apperrors.IsConflict(err))
}

func TestRegister_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		message string
	}{
		{"missing name", RegisterRequest{Email: "a@x.com", Password: "pw"}, "Name is required"},
		{"missing email", RegisterRequest{Name: "Ann", Password: "pw"}, "Email is required"},
		{"bad email", RegisterRequest{Name: "Ann", Email: "nope", Password: "pw"}, "Email must be a valid email"},
		{"missing password", RegisterRequest{Name: "Ann", Email: "a@x.com"}, "Password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := setupTestService(t)

			resp, err := svc.Register(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.True(t, apperrors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.message)
			mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_LookupFailure(t *testing.T) {
	svc, mockRepo, _ := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(nil, errors.New("db down"))

	_, err := svc.Register(ctx, RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "pw"})

	assert.Error(t, err)
	assert.False(t, apperrors.IsConflict(err))
	assert.Contains(t, err.Error(), "failed to validate email uniqueness")
}

// ==================== LOGIN TESTS ====================

func TestLogin_Success(t *testing.T) {
	svc, mockRepo, hasher := setupTestService(t)
	ctx := context.Background()

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(&domain.User{ID: 5, Email: "a@x.com", PasswordHash: hash}, nil)

	resp, err := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "hunter22"})

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(5), resp.ID)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, mockRepo, hasher := setupTestService(t)
	ctx := context.Background()

	hash, err := hasher.Hash("hunter22")
	require.NoError(t, err)
	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(&domain.User{ID: 5, Email: "a@x.com", PasswordHash: hash}, nil)
	mockRepo.On("GetByEmail", ctx, "ghost@x.com").Return(nil, nil)

	_, wrongPassword := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: "hunter23"})
	_, unknownEmail := svc.Login(ctx, LoginRequest{Email: "ghost@x.com", Password: "hunter22"})

	assert.True(t, apperrors.IsAuth(wrongPassword))
	assert.True(t, apperrors.IsAuth(unknownEmail))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLogin_LongPasswordUsesSameTruncation(t *testing.T) {
	svc, mockRepo, hasher := setupTestService(t)
	ctx := context.Background()

	long := strings.Repeat("long-password-", 10)
	hash, err := hasher.Hash(long)
	require.NoError(t, err)
	mockRepo.On("GetByEmail", ctx, "a@x.com").Return(&domain.User{ID: 1, PasswordHash: hash}, nil)

	resp, err := svc.Login(ctx, LoginRequest{Email: "a@x.com", Password: long})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestLogin_ValidationError(t *testing.T) {
	svc, _, _ := setupTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com"})

	assert.True(t, apperrors.IsValidation(err))
}
