package user

import (
	"context"

	"go.uber.org/zap"

	domain "club-service/internal/domain/user"
	"club-service/internal/usecase/validation"
	apperrors "club-service/pkg/errors"
	"club-service/pkg/metrics"
	"club-service/pkg/security"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)          // Create a new user
	GetByEmail(ctx context.Context, email string) (*domain.User, error) // Retrieve user by exact email, nil if missing
}

// Service implements registration and login.
type Service struct {
	repo     Repository              // Repository for data access
	hasher   security.PasswordHasher // Password hashing
	log      *zap.Logger             // Logger for structured logging
	validate *validation.Validator   // Validator for request validation
	metrics  *metrics.Metrics
}

// New creates a new user Service. m may be nil.
func New(r Repository, h security.PasswordHasher, log *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{repo: r, hasher: h, log: log, validate: validation.New(), metrics: m}
}

// Register creates a user after validating the request and checking email
// uniqueness. The email is stored exactly as given.
func (s *Service) Register(ctx context.Context, in RegisterRequest) (*RegisterResponse, error) {
	s.log.Info("registering user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	existingUser, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existingUser != nil {
		s.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	id, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}

	s.metrics.UserRegistered()
	return &RegisterResponse{ID: id}, nil
}

// Login checks credentials. An unknown email and a wrong password produce the
// same AuthError.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*LoginResponse, error) {
	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to look up user", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to look up user", err)
	}

	if u == nil || !s.hasher.Verify(in.Password, u.PasswordHash) {
		s.log.Warn("login rejected", zap.String("email", in.Email))
		s.metrics.LoginAttempt(false)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.log.Info("login succeeded", zap.Int64("user_id", u.ID))
	s.metrics.LoginAttempt(true)
	return &LoginResponse{ID: u.ID}, nil
}
