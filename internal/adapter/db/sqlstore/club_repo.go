package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"club-service/internal/domain/club"
	apperrors "club-service/pkg/errors"
)

// ClubRepo persists clubs with GORM. Membership sequences are stored as
// comma-joined text columns.
type ClubRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewClubRepo creates a new instance of ClubRepo.
func NewClubRepo(db *gorm.DB, log *zap.Logger) *ClubRepo {
	return &ClubRepo{db: db, log: log}
}

// ClubSchema represents the database schema for the clubs table.
type ClubSchema struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null;uniqueIndex"`
	Description string
	Members     string `gorm:"type:text;not null;default:''"`
	Pending     string `gorm:"type:text;not null;default:''"`
}

// TableName specifies the table name for the ClubSchema model.
func (ClubSchema) TableName() string {
	return "clubs"
}

func (m ClubSchema) toDomain() *club.Club {
	return &club.Club{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Membership:  club.DecodeMembership(m.Members, m.Pending),
	}
}

// Create inserts a new club with empty membership. A duplicate name yields
// a ConflictError.
func (r *ClubRepo) Create(ctx context.Context, c *club.Club) (int64, error) {
	if c == nil {
		return 0, errors.New("club cannot be nil")
	}

	model := ClubSchema{
		Name:        c.Name,
		Description: c.Description,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isDuplicateKey(err) {
			r.log.Warn("duplicate club name on insert", zap.String("name", c.Name))
			return 0, apperrors.ErrClubExists
		}
		r.log.Error("failed to create club in db", zap.Error(err), zap.String("name", c.Name))
		return 0, fmt.Errorf("failed to create club: %w", err)
	}

	r.log.Info("club created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// GetByID retrieves a club. A missing club yields a NotFoundError.
func (r *ClubRepo) GetByID(ctx context.Context, id int64) (*club.Club, error) {
	var model ClubSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("club not found", zap.Int64("id", id))
			return nil, apperrors.ErrClubNotFound
		}
		r.log.Error("failed to get club from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	return model.toDomain(), nil
}

// GetByName retrieves a club by exact name. It returns nil, nil when no club
// matches.
func (r *ClubRepo) GetByName(ctx context.Context, name string) (*club.Club, error) {
	var model ClubSchema
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("failed to get club by name from db", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("failed to get club by name: %w", err)
	}

	return model.toDomain(), nil
}

// List returns every club in insertion order.
func (r *ClubRepo) List(ctx context.Context) ([]club.Club, error) {
	var models []ClubSchema
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list clubs from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	clubs := make([]club.Club, len(models))
	for i, model := range models {
		clubs[i] = *model.toDomain()
	}

	return clubs, nil
}

// UpdateMembership loads the club row under a write lock, lets apply mutate
// its decoded membership, and writes the encoded result back when apply
// reports a change. The read and the write share one transaction.
func (r *ClubRepo) UpdateMembership(ctx context.Context, id int64, apply func(m *club.Membership) bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model ClubSchema
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrClubNotFound
			}
			r.log.Error("failed to lock club row", zap.Error(err), zap.Int64("id", id))
			return fmt.Errorf("failed to load club: %w", err)
		}

		m := club.DecodeMembership(model.Members, model.Pending)
		if !apply(&m) {
			return nil
		}

		err = tx.Model(&ClubSchema{}).Where("id = ?", id).Updates(map[string]any{
			"members": club.Encode(m.Members),
			"pending": club.Encode(m.Pending),
		}).Error
		if err != nil {
			r.log.Error("failed to write membership", zap.Error(err), zap.Int64("id", id))
			return fmt.Errorf("failed to update membership: %w", err)
		}

		r.log.Info("club membership updated",
			zap.Int64("id", id),
			zap.Int("members", len(m.Members)),
			zap.Int("pending", len(m.Pending)),
		)
		return nil
	})
}

// AutoMigrate creates or updates the users and clubs tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&UserSchema{}, &ClubSchema{})
}
