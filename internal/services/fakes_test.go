package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sadhana/internal/models/db_models"
	"sadhana/internal/repositories"
)

// In-memory repository fakes backing the service tests.

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) add(email, role string, passwordHash string) *db_models.Account {
	account := &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	f.accounts[email] = account
	return account
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if _, ok := f.accounts[account.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.accounts[email], nil
}

func (f *fakeAccountRepo) UpdateRoleByEmail(ctx context.Context, email string, role string) (int64, error) {
	account, ok := f.accounts[email]
	if !ok {
		return 0, nil
	}
	account.Role = role
	return 1, nil
}

type fakeDevoteeRepo struct {
	devotees     []db_models.Devotee
	accounts     []db_models.Account
	facilitators []repositories.FacilitatorRow
}

func (f *fakeDevoteeRepo) add(devotee db_models.Devotee) db_models.Devotee {
	if devotee.ID == uuid.Nil {
		devotee.ID = uuid.New()
	}
	f.devotees = append(f.devotees, devotee)
	return devotee
}

func sortByCreatedDesc(devotees []db_models.Devotee) {
	sort.SliceStable(devotees, func(i, j int) bool {
		return devotees[i].CreatedAt > devotees[j].CreatedAt
	})
}

func (f *fakeDevoteeRepo) Insert(ctx context.Context, devotee *db_models.Devotee) error {
	*devotee = f.add(*devotee)
	return nil
}

func (f *fakeDevoteeRepo) FindById(ctx context.Context, id string) (*db_models.Devotee, error) {
	for i := range f.devotees {
		if f.devotees[i].ID.String() == id {
			return &f.devotees[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDevoteeRepo) FindByEmail(ctx context.Context, email string) (*db_models.Devotee, error) {
	for i := range f.devotees {
		if f.devotees[i].Email == email {
			return &f.devotees[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDevoteeRepo) ListByEmail(ctx context.Context, email string) ([]db_models.Devotee, error) {
	matches := []db_models.Devotee{}
	for _, devotee := range f.devotees {
		if devotee.Email == email {
			matches = append(matches, devotee)
		}
	}
	return matches, nil
}

func (f *fakeDevoteeRepo) ListAll(ctx context.Context) ([]db_models.Devotee, error) {
	all := append([]db_models.Devotee{}, f.devotees...)
	sortByCreatedDesc(all)
	return all, nil
}

func (f *fakeDevoteeRepo) ListByFacilitator(ctx context.Context, facilitatorID uuid.UUID) ([]db_models.Devotee, error) {
	matches := []db_models.Devotee{}
	for _, devotee := range f.devotees {
		if devotee.FacilitatorID != nil && *devotee.FacilitatorID == facilitatorID {
			matches = append(matches, devotee)
		}
	}
	sortByCreatedDesc(matches)
	return matches, nil
}

func (f *fakeDevoteeRepo) Update(ctx context.Context, id string, devotee *db_models.Devotee) (int64, error) {
	for i := range f.devotees {
		if f.devotees[i].ID.String() == id {
			keep := f.devotees[i].BaseModel
			f.devotees[i] = *devotee
			f.devotees[i].BaseModel = keep
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeDevoteeRepo) Delete(ctx context.Context, id string) (int64, error) {
	for i := range f.devotees {
		if f.devotees[i].ID.String() == id {
			f.devotees = append(f.devotees[:i], f.devotees[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeDevoteeRepo) BulkInsert(ctx context.Context, devotees []db_models.Devotee, accounts []db_models.Account) error {
	for _, devotee := range devotees {
		f.add(devotee)
	}
	f.accounts = append(f.accounts, accounts...)
	return nil
}

func (f *fakeDevoteeRepo) ListFacilitators(ctx context.Context) ([]repositories.FacilitatorRow, error) {
	return f.facilitators, nil
}

type fakeSadhanaRepo struct {
	entries []db_models.SadhanaEntry
}

func (f *fakeSadhanaRepo) Insert(ctx context.Context, entry *db_models.SadhanaEntry) error {
	for _, existing := range f.entries {
		if existing.DevoteeID == entry.DevoteeID && existing.EntryDate == entry.EntryDate {
			return gorm.ErrDuplicatedKey
		}
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeSadhanaRepo) ListByDevotee(ctx context.Context, devoteeID uuid.UUID) ([]db_models.SadhanaEntry, error) {
	matches := []db_models.SadhanaEntry{}
	for _, entry := range f.entries {
		if entry.DevoteeID == devoteeID {
			matches = append(matches, entry)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].EntryDate > matches[j].EntryDate
	})
	return matches, nil
}

func (f *fakeSadhanaRepo) ListByDate(ctx context.Context, devoteeID uuid.UUID, date string) ([]db_models.SadhanaEntry, error) {
	matches := []db_models.SadhanaEntry{}
	for _, entry := range f.entries {
		if entry.DevoteeID == devoteeID && entry.EntryDate == date {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

func (f *fakeSadhanaRepo) ListByMonth(ctx context.Context, devoteeID uuid.UUID, yearMonth string, page int, pageSize int) ([]db_models.SadhanaEntry, int64, error) {
	matches := []db_models.SadhanaEntry{}
	for _, entry := range f.entries {
		if entry.DevoteeID == devoteeID && strings.HasPrefix(entry.EntryDate, yearMonth) {
			matches = append(matches, entry)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].EntryDate > matches[j].EntryDate
	})
	count := int64(len(matches))
	start := (page - 1) * pageSize
	if start >= len(matches) {
		return []db_models.SadhanaEntry{}, count, nil
	}
	end := start + pageSize
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], count, nil
}

func (f *fakeSadhanaRepo) Update(ctx context.Context, devoteeID uuid.UUID, date string, entry *db_models.SadhanaEntry) (int64, error) {
	for i := range f.entries {
		if f.entries[i].DevoteeID == devoteeID && f.entries[i].EntryDate == date {
			f.entries[i].WakeUpTime = entry.WakeUpTime
			f.entries[i].ChantingRounds = entry.ChantingRounds
			f.entries[i].ReadingTime = entry.ReadingTime
			f.entries[i].ReadingTopic = entry.ReadingTopic
			f.entries[i].HearingTime = entry.HearingTime
			f.entries[i].HearingTopic = entry.HearingTopic
			f.entries[i].ServiceName = entry.ServiceName
			f.entries[i].ServiceTime = entry.ServiceTime
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeSadhanaRepo) Delete(ctx context.Context, devoteeID uuid.UUID, date string) (int64, error) {
	for i := range f.entries {
		if f.entries[i].DevoteeID == devoteeID && f.entries[i].EntryDate == date {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
