package club

import (
	"context"

	"go.uber.org/zap"

	domain "club-service/internal/domain/club"
	"club-service/internal/usecase/validation"
	apperrors "club-service/pkg/errors"
	"club-service/pkg/metrics"
)

// Repository defines the data access operations the club use case needs.
type Repository interface {
	Create(ctx context.Context, c *domain.Club) (int64, error)                                   // Create a club with empty membership
	GetByID(ctx context.Context, id int64) (*domain.Club, error)                                 // Retrieve club by ID, NotFoundError if missing
	GetByName(ctx context.Context, name string) (*domain.Club, error)                            // Retrieve club by exact name, nil if missing
	List(ctx context.Context) ([]domain.Club, error)                                             // List all clubs in storage order
	UpdateMembership(ctx context.Context, id int64, apply func(m *domain.Membership) bool) error // Atomic read-modify-write of membership
}

// Service implements the club and membership workflows.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validation.Validator
	metrics  *metrics.Metrics
}

// New creates a new club Service. m may be nil.
func New(r Repository, log *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{repo: r, log: log, validate: validation.New(), metrics: m}
}

// CreateClub creates a club after checking that its name is free.
func (s *Service) CreateClub(ctx context.Context, in CreateClubRequest) (*CreateClubResponse, error) {
	s.log.Info("creating club", zap.String("name", in.Name))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, in.Name)
	if err != nil {
		s.log.Error("failed to check existing club name", zap.String("name", in.Name), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate club name uniqueness", err)
	}
	if existing != nil {
		s.log.Warn("club already exists", zap.String("name", in.Name))
		return nil, apperrors.ErrClubExists
	}

	id, err := s.repo.Create(ctx, &domain.Club{
		Name:        in.Name,
		Description: in.Description,
	})
	if err != nil {
		s.log.Error("failed to create club", zap.String("name", in.Name), zap.Error(err))
		return nil, err
	}

	s.metrics.ClubCreated()
	return &CreateClubResponse{ID: id}, nil
}

// ListClubs returns every club in storage order.
func (s *Service) ListClubs(ctx context.Context) (*ListClubsResponse, error) {
	clubs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list clubs", zap.Error(err))
		return nil, err
	}

	out := make([]Club, len(clubs))
	for i, c := range clubs {
		out[i] = Club{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Members:     domain.Encode(c.Membership.Members),
			Pending:     domain.Encode(c.Membership.Pending),
		}
	}

	return &ListClubsResponse{Clubs: out}, nil
}

// GetMembers returns the confirmed and pending user ids of a club.
func (s *Service) GetMembers(ctx context.Context, in GetMembersRequest) (*GetMembersResponse, error) {
	c, err := s.repo.GetByID(ctx, in.ClubID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.log.Warn("club not found", zap.Int64("club_id", in.ClubID))
		} else {
			s.log.Error("failed to get club", zap.Int64("club_id", in.ClubID), zap.Error(err))
		}
		return nil, err
	}

	return &GetMembersResponse{
		Members: nonNil(c.Membership.Members),
		Pending: nonNil(c.Membership.Pending),
	}, nil
}

// RequestJoin moves a stranger into the club's pending list. Members and
// pending users are reported without any change.
func (s *Service) RequestJoin(ctx context.Context, in RequestJoinRequest) (*RequestJoinResponse, error) {
	s.log.Info("join request", zap.Int64("club_id", in.ClubID), zap.Int64("user_id", in.UserID))

	var status domain.JoinStatus
	err := s.repo.UpdateMembership(ctx, in.ClubID, func(m *domain.Membership) bool {
		status = m.RequestJoin(in.UserID)
		return status == domain.RequestSent
	})
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.log.Warn("join request for missing club", zap.Int64("club_id", in.ClubID))
			return nil, err
		}
		s.log.Error("failed to apply join request", zap.Int64("club_id", in.ClubID), zap.Error(err))
		return nil, err
	}

	s.metrics.JoinRequest(status.String())
	s.log.Info("join request handled",
		zap.Int64("club_id", in.ClubID),
		zap.Int64("user_id", in.UserID),
		zap.Stringer("status", status),
	)

	return &RequestJoinResponse{
		Status:  status.String(),
		Message: status.Message(),
	}, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
