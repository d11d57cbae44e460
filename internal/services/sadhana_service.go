package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sadhana/internal/models/db_models"
	"sadhana/internal/models/request_models"
	"sadhana/internal/models/response_models"
	"sadhana/internal/repositories"
	"sadhana/pkg/utils"
)

// MonthlyPageSize is the fixed page size of the monthly listing.
const MonthlyPageSize = 10

type SadhanaServiceInterface interface {
	Add(ctx context.Context, request request_models.SadhanaEntryRequest) error
	Entries(ctx context.Context, email string) ([]db_models.SadhanaEntry, error)
	Update(ctx context.Context, request request_models.SadhanaEntryRequest) error
	Delete(ctx context.Context, email string, entryDate string) error
	ByMonth(ctx context.Context, devoteeID string, year string, month string, page int) (*response_models.MonthlyEntriesResponse, error)
	ByDate(ctx context.Context, devoteeID string, entryDate string) ([]db_models.SadhanaEntry, error)
}

type SadhanaService struct {
	sadhanaRepo repositories.SadhanaRepository
	devoteeRepo repositories.DevoteeRepository
	accountRepo repositories.AccountRepository
}

func NewSadhanaService(
	sadhanaRepo repositories.SadhanaRepository,
	devoteeRepo repositories.DevoteeRepository,
	accountRepo repositories.AccountRepository) SadhanaServiceInterface {
	return &SadhanaService{
		sadhanaRepo: sadhanaRepo,
		devoteeRepo: devoteeRepo,
		accountRepo: accountRepo,
	}
}

// resolveOwner maps an email to the owning devotee id. Every entry operation
// resolves ownership the same way: the account must exist, and so must the
// paired devotee profile.
func (s *SadhanaService) resolveOwner(ctx context.Context, email string) (uuid.UUID, error) {

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if account == nil {
		return uuid.Nil, utils.ErrAccountNotFound
	}

	devotee, err := s.devoteeRepo.FindByEmail(ctx, email)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if devotee == nil {
		return uuid.Nil, utils.ErrDevoteeNotFound
	}

	return devotee.ID, nil
}

func (s *SadhanaService) Add(ctx context.Context, request request_models.SadhanaEntryRequest) error {

	ownerID, err := s.resolveOwner(ctx, request.Email)
	if err != nil {
		return err
	}

	entry := &db_models.SadhanaEntry{
		DevoteeID:      ownerID,
		EntryDate:      utils.DateOnly(request.EntryDate),
		WakeUpTime:     request.WakeUpTime,
		ChantingRounds: request.ChantingRounds,
		ReadingTime:    request.ReadingTime,
		ReadingTopic:   request.ReadingTopic,
		HearingTime:    request.HearingTime,
		HearingTopic:   request.HearingTopic,
		ServiceName:    request.ServiceName,
		ServiceTime:    request.ServiceTime,
	}

	if err := s.sadhanaRepo.Insert(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrDuplicateEntry
		}
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *SadhanaService) Entries(ctx context.Context, email string) ([]db_models.SadhanaEntry, error) {

	ownerID, err := s.resolveOwner(ctx, email)
	if err != nil {
		return nil, err
	}

	entries, err := s.sadhanaRepo.ListByDevotee(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (s *SadhanaService) Update(ctx context.Context, request request_models.SadhanaEntryRequest) error {

	ownerID, err := s.resolveOwner(ctx, request.Email)
	if err != nil {
		return err
	}

	entry := &db_models.SadhanaEntry{
		WakeUpTime:     request.WakeUpTime,
		ChantingRounds: request.ChantingRounds,
		ReadingTime:    request.ReadingTime,
		ReadingTopic:   request.ReadingTopic,
		HearingTime:    request.HearingTime,
		HearingTopic:   request.HearingTopic,
		ServiceName:    request.ServiceName,
		ServiceTime:    request.ServiceTime,
	}

	rows, err := s.sadhanaRepo.Update(ctx, ownerID, utils.DateOnly(request.EntryDate), entry)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrEntryNotFound
	}
	return nil
}

func (s *SadhanaService) Delete(ctx context.Context, email string, entryDate string) error {

	ownerID, err := s.resolveOwner(ctx, email)
	if err != nil {
		return err
	}

	rows, err := s.sadhanaRepo.Delete(ctx, ownerID, utils.DateOnly(entryDate))
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrEntryNotFound
	}
	return nil
}

func (s *SadhanaService) ByMonth(ctx context.Context, devoteeID string, year string, month string, page int) (*response_models.MonthlyEntriesResponse, error) {

	if page < 1 {
		return nil, utils.ErrInvalidPage
	}

	ownerID, err := uuid.Parse(devoteeID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	entries, count, err := s.sadhanaRepo.ListByMonth(ctx, ownerID, utils.YearMonth(year, month), page, MonthlyPageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalPages := int((count + MonthlyPageSize - 1) / MonthlyPageSize)

	return &response_models.MonthlyEntriesResponse{
		Entries:    entries,
		TotalPages: totalPages,
	}, nil
}

func (s *SadhanaService) ByDate(ctx context.Context, devoteeID string, entryDate string) ([]db_models.SadhanaEntry, error) {

	ownerID, err := uuid.Parse(devoteeID)
	if err != nil {
		return nil, utils.ErrValidation
	}

	entries, err := s.sadhanaRepo.ListByDate(ctx, ownerID, utils.DateOnly(entryDate))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}
