package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"holidayplanner/cmd/fx/account_fx"
	"holidayplanner/cmd/fx/config_fx"
	"holidayplanner/cmd/fx/controllers_fx"
	"holidayplanner/cmd/fx/memcache_fx"
	"holidayplanner/cmd/fx/prompt_fx"
	"holidayplanner/cmd/fx/schedule_fx"
	"holidayplanner/internal/api/controllers"
	"holidayplanner/internal/config"
	"holidayplanner/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		memcache_fx.Module,
		schedule_fx.Module,
		prompt_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at %s", server.Addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config               *config.Config
	Sessions             middleware.SessionValidator
	ScheduleController   *controllers.ScheduleController
	AIScheduleController *controllers.AIScheduleController
	AccountController    *controllers.AccountController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(p.Config.CORSAllowOrigins))

	aiLimiter := middleware.NewRateLimiter(p.Config.AIRatePerMinute, 2)
	RegisterRoutes(r, p, aiLimiter)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams, aiLimiter *middleware.RateLimiter) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/login", p.AccountController.Login)
	authGroup.POST("/logout", p.AccountController.Logout)

	// Reading the itinerary is public; every edit needs a session.
	scheduleGroup := r.Group("/schedule")
	scheduleGroup.GET("", p.ScheduleController.GetSchedule)
	scheduleGroup.GET("/days", p.ScheduleController.GetDayViews)
	scheduleGroup.GET("/summary", p.ScheduleController.GetSummary)
	scheduleGroup.GET("/categories", p.ScheduleController.GetCategories)

	editGroup := scheduleGroup.Group("", middleware.JWTAuthMiddleware(p.Sessions))
	editGroup.PUT("", p.ScheduleController.ReplaceSchedule)
	editGroup.POST("/days", p.ScheduleController.AddDay)
	editGroup.DELETE("/days/:day", p.ScheduleController.DeleteDay)
	editGroup.POST("/days/:day/activities", p.ScheduleController.AddActivity)
	editGroup.PUT("/days/:day/activities/:index", p.ScheduleController.UpdateActivity)
	editGroup.DELETE("/days/:day/activities/:index", p.ScheduleController.DeleteActivity)
	editGroup.POST("/ai", aiLimiter.Limit(), p.AIScheduleController.UpdateScheduleHandler)
}
