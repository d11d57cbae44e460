package sadhana_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sadhana/internal/repositories"
	"sadhana/internal/services"
)

var Module = fx.Provide(
	provideSadhanaService, provideSadhanaRepo)

func provideSadhanaRepo(db *gorm.DB) repositories.SadhanaRepository {
	return repositories.NewSadhanaRepository(db)
}

func provideSadhanaService(
	sadhanaRepo repositories.SadhanaRepository,
	devoteeRepo repositories.DevoteeRepository,
	accountRepo repositories.AccountRepository) services.SadhanaServiceInterface {
	return services.NewSadhanaService(sadhanaRepo, devoteeRepo, accountRepo)
}
