package memcache_fx

import (
	"go.uber.org/fx"
	"holidayplanner/internal/config"
	mem "holidayplanner/pkg/memcache"
)

var Module = fx.Provide(provideViewCache)

func provideViewCache(cfg *config.Config) mem.ViewCache {
	return mem.NewViewCache(0, cfg.ViewCacheTTL)
}
