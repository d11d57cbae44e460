package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"sadhana/internal/models/db_models"
)

// FacilitatorRow is the projection of the counsellor directory join.
type FacilitatorRow struct {
	UserID        uuid.UUID
	InitiatedName string
}

type DevoteeRepository interface {
	Insert(ctx context.Context, devotee *db_models.Devotee) error
	FindById(ctx context.Context, id string) (*db_models.Devotee, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Devotee, error)
	ListByEmail(ctx context.Context, email string) ([]db_models.Devotee, error)
	ListAll(ctx context.Context) ([]db_models.Devotee, error)
	ListByFacilitator(ctx context.Context, facilitatorID uuid.UUID) ([]db_models.Devotee, error)
	Update(ctx context.Context, id string, devotee *db_models.Devotee) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	BulkInsert(ctx context.Context, devotees []db_models.Devotee, accounts []db_models.Account) error
	ListFacilitators(ctx context.Context) ([]FacilitatorRow, error)
}

type devoteeRepository struct {
	db *gorm.DB
}

func NewDevoteeRepository(db *gorm.DB) DevoteeRepository {
	return &devoteeRepository{db: db}
}

func (d *devoteeRepository) Insert(ctx context.Context, devotee *db_models.Devotee) error {
	return d.db.WithContext(ctx).Create(devotee).Error
}

func (d *devoteeRepository) FindById(ctx context.Context, id string) (*db_models.Devotee, error) {
	var devotee db_models.Devotee
	err := d.db.WithContext(ctx).First(&devotee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &devotee, nil
}

func (d *devoteeRepository) FindByEmail(ctx context.Context, email string) (*db_models.Devotee, error) {
	var devotee db_models.Devotee
	err := d.db.WithContext(ctx).First(&devotee, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &devotee, nil
}

// ListByEmail returns zero or one rows; the self-profile visibility mode
// reports an empty list rather than a 404 when no profile is paired yet.
func (d *devoteeRepository) ListByEmail(ctx context.Context, email string) ([]db_models.Devotee, error) {
	var devotees []db_models.Devotee
	err := d.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&devotees).Error
	return devotees, err
}

func (d *devoteeRepository) ListAll(ctx context.Context) ([]db_models.Devotee, error) {
	var devotees []db_models.Devotee
	err := d.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&devotees).Error
	return devotees, err
}

func (d *devoteeRepository) ListByFacilitator(ctx context.Context, facilitatorID uuid.UUID) ([]db_models.Devotee, error) {
	var devotees []db_models.Devotee
	err := d.db.WithContext(ctx).
		Where("facilitator_id = ?", facilitatorID).
		Order("created_at DESC").
		Find(&devotees).Error
	return devotees, err
}

func (d *devoteeRepository) Update(ctx context.Context, id string, devotee *db_models.Devotee) (int64, error) {
	result := d.db.WithContext(ctx).
		Model(&db_models.Devotee{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(devotee)
	return result.RowsAffected, result.Error
}

func (d *devoteeRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := d.db.WithContext(ctx).Delete(&db_models.Devotee{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// BulkInsert writes the devotee batch and their paired accounts in one
// transaction. Accounts whose email already exists are skipped, not errors.
func (d *devoteeRepository) BulkInsert(ctx context.Context, devotees []db_models.Devotee, accounts []db_models.Account) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&devotees).Error; err != nil {
			return err
		}
		if len(accounts) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&accounts).Error
	})
}

func (d *devoteeRepository) ListFacilitators(ctx context.Context) ([]FacilitatorRow, error) {
	var rows []FacilitatorRow
	err := d.db.WithContext(ctx).
		Model(&db_models.Devotee{}).
		Select("devotees.id AS user_id, devotees.initiated_name").
		Joins("JOIN accounts ON accounts.email = devotees.email").
		Where("accounts.role = ?", db_models.RoleCounsellor).
		Scan(&rows).Error
	return rows, err
}
