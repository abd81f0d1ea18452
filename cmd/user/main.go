package main // Entry point of the user service

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cinevision/internal/auth"
	"github.com/iliyamo/cinevision/internal/config"
	"github.com/iliyamo/cinevision/internal/database"
	"github.com/iliyamo/cinevision/internal/handler"
	"github.com/iliyamo/cinevision/internal/logger"
	"github.com/iliyamo/cinevision/internal/middleware"
	"github.com/iliyamo/cinevision/internal/repository"
	"github.com/iliyamo/cinevision/internal/router"
	"github.com/iliyamo/cinevision/internal/seed"
	"github.com/iliyamo/cinevision/internal/utils"
)

func main() {
	cfg := config.Load()
	authCfg := config.LoadAuth()
	seedCfg := config.LoadSeed()

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := database.Open(cfg)
	if err != nil {
		lg.Fatal("database connection", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureIdentitySchema(ctx, db); err != nil {
		lg.Fatal("identity schema", zap.Error(err))
	}

	users := repository.NewUserRepo(db)
	claims := repository.NewClaimRepo(db)
	hasher := utils.BcryptHasher{Cost: authCfg.BcryptCost}

	rdb := config.NewRedisClient()
	if rdb != nil {
		defer rdb.Close()
	}

	if seedCfg.Enabled {
		if seedCfg.AdminPassword == config.DefaultAdminPassword && !cfg.IsDevelopment() {
			lg.Warn("using default admin password - set SEED_ADMIN_PASSWORD outside development")
		}
		admin := seed.AdminAccount{Email: seedCfg.AdminEmail, Password: seedCfg.AdminPassword, FullName: seedCfg.AdminFullName}
		seeder := seed.NewIdentitySeeder(claims, users, hasher, admin, lg.Named("seed"))
		err := seed.Guarded(ctx, rdb, seed.IdentityLockKey, seed.LockConfig{TTL: seedCfg.LockTTL, Wait: seedCfg.LockWait}, lg, seeder.Run)
		if err != nil {
			lg.Fatal("identity seeding", zap.Error(err))
		}
		lg.Info("identity seeding completed")
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterUser(e, router.UserRoutes{
		Auth:      handler.NewAuthHandler(authCfg, auth.NewBridge(users, lg.Named("auth")), lg),
		Users:     handler.NewUserHandler(users, claims, hasher, lg),
		JWTSecret: authCfg.JWTSecret,
		Limiter:   middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	})

	addr := ":" + cfg.Port
	lg.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.String("service", "user-service"))
	if err := e.Start(addr); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
