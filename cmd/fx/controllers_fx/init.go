package controllers_fx

import (
	"go.uber.org/fx"
	"holidayplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewAIScheduleController),
	fx.Provide(controllers.NewAccountController))
