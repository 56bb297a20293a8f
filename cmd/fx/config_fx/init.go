package config_fx

import (
	"go.uber.org/fx"
	"holidayplanner/internal/config"
)

var Module = fx.Provide(
	config.Load,
	provideAIConfig,
	provideAuthConfig)

func provideAIConfig(cfg *config.Config) config.AIConfig {
	return cfg.AI
}

func provideAuthConfig(cfg *config.Config) config.AuthConfig {
	return cfg.Auth
}
