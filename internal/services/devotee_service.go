package services

import (
	"context"
	"os"

	"github.com/google/uuid"
	"sadhana/internal/models/db_models"
	"sadhana/internal/models/request_models"
	"sadhana/internal/models/response_models"
	"sadhana/internal/repositories"
	"sadhana/pkg/utils"
)

const (
	// AllDevoteesSentinel requests the unfiltered listing.
	AllDevoteesSentinel = "ALL"
	// SelfProfileMode is the `type` discriminator for own-profile lookups.
	SelfProfileMode = "Name"
)

type DevoteeServiceInterface interface {
	ListVisible(ctx context.Context, email string, mode string) ([]db_models.Devotee, error)
	Create(ctx context.Context, request request_models.DevoteeRequest) (*db_models.Devotee, error)
	Update(ctx context.Context, id string, request request_models.DevoteeRequest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	BulkCreate(ctx context.Context, requests []request_models.DevoteeRequest) (int, error)
	ListFacilitators(ctx context.Context) ([]response_models.FacilitatorResponse, error)
	Caseload(ctx context.Context, email string) ([]response_models.CounselledDevotee, error)
	InitiatedName(ctx context.Context, id string) (string, error)
}

type DevoteeService struct {
	devoteeRepo repositories.DevoteeRepository
	accountRepo repositories.AccountRepository
}

func NewDevoteeService(devoteeRepo repositories.DevoteeRepository, accountRepo repositories.AccountRepository) DevoteeServiceInterface {
	return &DevoteeService{
		devoteeRepo: devoteeRepo,
		accountRepo: accountRepo,
	}
}

// ListVisible computes the devotee rows the caller may read. Visibility is a
// two-tier hierarchy: admin sees all, a counsellor sees their own profile plus
// the devotees assigned to them via facilitator_id, a user sees only their own
// profile. Self-profile mode is checked before the role default.
func (s *DevoteeService) ListVisible(ctx context.Context, email string, mode string) ([]db_models.Devotee, error) {

	if email == AllDevoteesSentinel {
		devotees, err := s.devoteeRepo.ListAll(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		return devotees, nil
	}

	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	selfMode := mode == SelfProfileMode

	switch {
	case account.Role == db_models.RoleUser && selfMode,
		account.Role == db_models.RoleCounsellor && selfMode:
		devotees, err := s.devoteeRepo.ListByEmail(ctx, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		return devotees, nil

	case account.Role == db_models.RoleCounsellor:
		self, err := s.devoteeRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if self == nil {
			return nil, utils.ErrDevoteeNotFound
		}
		devotees, err := s.devoteeRepo.ListByFacilitator(ctx, self.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		return devotees, nil

	case account.Role == db_models.RoleAdmin:
		devotees, err := s.devoteeRepo.ListAll(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		return devotees, nil

	default:
		return nil, utils.ErrAccessDenied
	}
}

func (s *DevoteeService) Create(ctx context.Context, request request_models.DevoteeRequest) (*db_models.Devotee, error) {

	devotee, err := toDevoteeModel(request)
	if err != nil {
		return nil, err
	}

	if err := s.devoteeRepo.Insert(ctx, devotee); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return devotee, nil
}

// Update overwrites every profile field. Photo precedence was already applied
// by the controller for uploads; an empty photo value falls back to whatever
// is stored so a form without a file does not wipe the existing photo.
func (s *DevoteeService) Update(ctx context.Context, id string, request request_models.DevoteeRequest) (bool, error) {

	if request.Photo == "" {
		existing, err := s.devoteeRepo.FindById(ctx, id)
		if err != nil {
			return false, utils.ErrDatabaseError
		}
		if existing != nil {
			request.Photo = existing.Photo
		}
	}

	devotee, err := toDevoteeModel(request)
	if err != nil {
		return false, err
	}

	rows, err := s.devoteeRepo.Update(ctx, id, devotee)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return rows > 0, nil
}

func (s *DevoteeService) Delete(ctx context.Context, id string) (bool, error) {
	rows, err := s.devoteeRepo.Delete(ctx, id)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return rows > 0, nil
}

// BulkCreate inserts the batch and a paired user-role account for every row
// that carries an email, all in one transaction. Paired accounts get the
// deployment's default password; already-registered emails are left alone.
func (s *DevoteeService) BulkCreate(ctx context.Context, requests []request_models.DevoteeRequest) (int, error) {

	devotees := make([]db_models.Devotee, 0, len(requests))
	emails := make([]string, 0, len(requests))
	for _, request := range requests {
		devotee, err := toDevoteeModel(request)
		if err != nil {
			return 0, err
		}
		devotees = append(devotees, *devotee)
		if request.Email != "" {
			emails = append(emails, request.Email)
		}
	}

	var accounts []db_models.Account
	if len(emails) > 0 {
		hashed, err := utils.HashPassword(bulkDefaultPassword())
		if err != nil {
			return 0, utils.ErrDatabaseError
		}
		for _, email := range emails {
			accounts = append(accounts, db_models.Account{
				Email:        email,
				PasswordHash: hashed,
				Role:         db_models.RoleUser,
			})
		}
	}

	if err := s.devoteeRepo.BulkInsert(ctx, devotees, accounts); err != nil {
		return 0, utils.ErrDatabaseError
	}

	return len(devotees), nil
}

func (s *DevoteeService) ListFacilitators(ctx context.Context) ([]response_models.FacilitatorResponse, error) {

	rows, err := s.devoteeRepo.ListFacilitators(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	facilitators := make([]response_models.FacilitatorResponse, 0, len(rows))
	for _, row := range rows {
		facilitators = append(facilitators, response_models.FacilitatorResponse{
			UserID:        row.UserID.String(),
			InitiatedName: row.InitiatedName,
		})
	}
	return facilitators, nil
}

func (s *DevoteeService) Caseload(ctx context.Context, email string) ([]response_models.CounselledDevotee, error) {

	self, err := s.devoteeRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if self == nil {
		return nil, utils.ErrDevoteeNotFound
	}

	devotees, err := s.devoteeRepo.ListByFacilitator(ctx, self.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	caseload := make([]response_models.CounselledDevotee, 0, len(devotees))
	for _, devotee := range devotees {
		caseload = append(caseload, response_models.CounselledDevotee{
			Devotee: response_models.DevoteeSummary{
				ID:            devotee.ID.String(),
				Email:         devotee.Email,
				InitiatedName: devotee.InitiatedName,
			},
		})
	}
	return caseload, nil
}

func (s *DevoteeService) InitiatedName(ctx context.Context, id string) (string, error) {

	devotee, err := s.devoteeRepo.FindById(ctx, id)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if devotee == nil {
		return "", utils.ErrDevoteeNotFound
	}
	return devotee.InitiatedName, nil
}

func bulkDefaultPassword() string {
	if p := os.Getenv("BULK_DEFAULT_PASSWORD"); p != "" {
		return p
	}
	return "Hari@108"
}

func toDevoteeModel(request request_models.DevoteeRequest) (*db_models.Devotee, error) {

	var facilitatorID *uuid.UUID
	if request.FacilitatorID != "" {
		parsed, err := uuid.Parse(request.FacilitatorID)
		if err != nil {
			return nil, utils.ErrValidation
		}
		facilitatorID = &parsed
	}

	return &db_models.Devotee{
		FirstName:                  request.FirstName,
		MiddleName:                 request.MiddleName,
		LastName:                   request.LastName,
		Gender:                     request.Gender,
		DOB:                        request.DOB,
		Ethnicity:                  request.Ethnicity,
		Citizenship:                request.Citizenship,
		MaritalStatus:              request.MaritalStatus,
		EducationQualificationCode: request.EducationQualificationCode,
		Address1:                   request.Address1,
		Address2:                   request.Address2,
		PinCode:                    request.PinCode,
		Email:                      request.Email,
		MobileNo:                   request.MobileNo,
		WhatsappNo:                 request.WhatsappNo,
		InitiatedName:              request.InitiatedName,
		Photo:                      request.Photo,
		SpiritualMasterID:          request.SpiritualMasterID,
		FirstInitiationDate:        request.FirstInitiationDate,
		IskconFirstContactDate:     request.IskconFirstContactDate,
		SecondInitiated:            request.SecondInitiated,
		SecondInitiationDate:       request.SecondInitiationDate,
		FullTimeDevotee:            request.FullTimeDevotee,
		TempleName:                 request.TempleName,
		Status:                     request.Status,
		FacilitatorID:              facilitatorID,
	}, nil
}
