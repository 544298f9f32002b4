package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmitChauhan63390/auth-app/internal/config"
	httpx "github.com/AmitChauhan63390/auth-app/internal/http"
	"github.com/AmitChauhan63390/auth-app/internal/http/handlers"
	"github.com/AmitChauhan63390/auth-app/internal/http/middleware"
	"github.com/AmitChauhan63390/auth-app/internal/infrastructure/auth"
	"github.com/AmitChauhan63390/auth-app/internal/infrastructure/database"
	"github.com/AmitChauhan63390/auth-app/internal/infrastructure/repositories"
	"github.com/AmitChauhan63390/auth-app/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	attemptRepo := repositories.NewLoginAttemptRepository(rdb)

	authSvc := services.NewAuthService(userRepo, attemptRepo, passwordSvc, tokenSvc, services.AuthConfig{
		TokenTTL:         cfg.TokenTTL,
		MaxLoginAttempts: cfg.MaxAttempts,
		AttemptWindow:    cfg.AttemptWindow,
	})

	authH := handlers.NewAuthHandlers(authSvc)
	jwtMW := middleware.NewAuthMW(tokenSvc)

	r := httpx.BuildRouter(authH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
