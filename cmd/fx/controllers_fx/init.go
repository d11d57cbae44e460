package controllers_fx

import (
	"go.uber.org/fx"
	"sadhana/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewDevoteeController),
	fx.Provide(controllers.NewSadhanaController))
