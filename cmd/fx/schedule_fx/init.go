package schedule_fx

import (
	"go.uber.org/fx"
	"holidayplanner/internal/config"
	"holidayplanner/internal/repositories"
	"holidayplanner/internal/services"
)

var Module = fx.Provide(
	provideScheduleRepo,
	services.NewScheduleService)

func provideScheduleRepo(cfg *config.Config) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(cfg.ScheduleFile)
}
