package actorrepo

import (
	"context"
	"errors"

	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActorDirectory implements ActorDirectory using GORM.
type GormActorDirectory struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormActorDirectory creates a new GORM actor directory.
func NewGormActorDirectory(db *gorm.DB, tracker aggregateTracker) *GormActorDirectory {
	return &GormActorDirectory{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
func (r *GormActorDirectory) Add(ctx context.Context, account *actor.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(account.ID(), account)
	return nil
}

// Update saves an existing account to the database.
func (r *GormActorDirectory) Update(ctx context.Context, account *actor.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	result := r.db.WithContext(ctx).Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "role", "is_active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("actor", account.ID().String())
	}

	r.tracker.TrackAggregate(account.ID(), account)
	return nil
}

// Get retrieves an account by ID.
func (r *GormActorDirectory) Get(ctx context.Context, id kernel.UUID) (*actor.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
