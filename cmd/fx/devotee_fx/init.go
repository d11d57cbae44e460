package devotee_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"sadhana/internal/repositories"
	"sadhana/internal/services"
)

var Module = fx.Provide(
	provideDevoteeService, provideDevoteeRepo)

func provideDevoteeRepo(db *gorm.DB) repositories.DevoteeRepository {
	return repositories.NewDevoteeRepository(db)
}

func provideDevoteeService(devoteeRepo repositories.DevoteeRepository, accountRepo repositories.AccountRepository) services.DevoteeServiceInterface {
	return services.NewDevoteeService(devoteeRepo, accountRepo)
}
