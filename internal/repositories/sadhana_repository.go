package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sadhana/internal/models/db_models"
)

type SadhanaRepository interface {
	Insert(ctx context.Context, entry *db_models.SadhanaEntry) error
	ListByDevotee(ctx context.Context, devoteeID uuid.UUID) ([]db_models.SadhanaEntry, error)
	ListByDate(ctx context.Context, devoteeID uuid.UUID, date string) ([]db_models.SadhanaEntry, error)
	ListByMonth(ctx context.Context, devoteeID uuid.UUID, yearMonth string, page int, pageSize int) ([]db_models.SadhanaEntry, int64, error)
	Update(ctx context.Context, devoteeID uuid.UUID, date string, entry *db_models.SadhanaEntry) (int64, error)
	Delete(ctx context.Context, devoteeID uuid.UUID, date string) (int64, error)
}

type sadhanaRepository struct {
	db *gorm.DB
}

func NewSadhanaRepository(db *gorm.DB) SadhanaRepository {
	return &sadhanaRepository{db: db}
}

func (s *sadhanaRepository) Insert(ctx context.Context, entry *db_models.SadhanaEntry) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *sadhanaRepository) ListByDevotee(ctx context.Context, devoteeID uuid.UUID) ([]db_models.SadhanaEntry, error) {
	var entries []db_models.SadhanaEntry
	err := s.db.WithContext(ctx).
		Where("devotee_id = ?", devoteeID).
		Order("entry_date DESC").
		Find(&entries).Error
	return entries, err
}

func (s *sadhanaRepository) ListByDate(ctx context.Context, devoteeID uuid.UUID, date string) ([]db_models.SadhanaEntry, error) {
	var entries []db_models.SadhanaEntry
	err := s.db.WithContext(ctx).
		Where("devotee_id = ? AND entry_date = ?", devoteeID, date).
		Find(&entries).Error
	return entries, err
}

// ListByMonth filters by the "YYYY-MM" prefix of entry_date and returns the
// requested page plus the total row count for page arithmetic.
func (s *sadhanaRepository) ListByMonth(ctx context.Context, devoteeID uuid.UUID, yearMonth string, page int, pageSize int) ([]db_models.SadhanaEntry, int64, error) {
	base := s.db.WithContext(ctx).
		Model(&db_models.SadhanaEntry{}).
		Where("devotee_id = ? AND entry_date LIKE ?", devoteeID, yearMonth+"%").
		Session(&gorm.Session{})

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var entries []db_models.SadhanaEntry
	err := base.
		Order("entry_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error
	return entries, count, err
}

func (s *sadhanaRepository) Update(ctx context.Context, devoteeID uuid.UUID, date string, entry *db_models.SadhanaEntry) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&db_models.SadhanaEntry{}).
		Where("devotee_id = ? AND entry_date = ?", devoteeID, date).
		Select("wake_up_time", "chanting_rounds", "reading_time", "reading_topic",
			"hearing_time", "hearing_topic", "service_name", "service_time").
		Updates(entry)
	return result.RowsAffected, result.Error
}

// Delete removes the row for good. A soft delete would keep the date occupied
// in idx_devotee_entry_date and block re-adding an entry for the same day.
func (s *sadhanaRepository) Delete(ctx context.Context, devoteeID uuid.UUID, date string) (int64, error) {
	result := s.db.WithContext(ctx).Unscoped().
		Delete(&db_models.SadhanaEntry{}, "devotee_id = ? AND entry_date = ?", devoteeID, date)
	return result.RowsAffected, result.Error
}
