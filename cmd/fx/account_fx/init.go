package account_fx

import (
	"go.uber.org/fx"
	"holidayplanner/internal/config"
	"holidayplanner/internal/services"
	"holidayplanner/pkg/middleware"
)

var Module = fx.Provide(
	provideAccountService,
	provideSessionValidator)

func provideAccountService(auth config.AuthConfig) services.AccountServiceInterface {
	return services.NewAccountService(auth)
}

func provideSessionValidator(accountService services.AccountServiceInterface) middleware.SessionValidator {
	return accountService
}
