package main // Entry point of the movie catalog service

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cinevision/internal/config"
	"github.com/iliyamo/cinevision/internal/database"
	"github.com/iliyamo/cinevision/internal/handler"
	"github.com/iliyamo/cinevision/internal/logger"
	"github.com/iliyamo/cinevision/internal/queue"
	"github.com/iliyamo/cinevision/internal/repository"
	"github.com/iliyamo/cinevision/internal/router"
	"github.com/iliyamo/cinevision/internal/seed"
	queue_publisher "github.com/iliyamo/cinevision/internal/service"
)

const serviceName = "movie-service"

func main() {
	cfg := config.Load()
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
	if err := database.EnsureCatalogSchema(ctx, db); err != nil {
		lg.Fatal("catalog schema", zap.Error(err))
	}

	stores := seed.CatalogStores{
		Categories:  repository.NewCategoryRepo(db),
		Directors:   repository.NewDirectorRepo(db),
		Movies:      repository.NewMovieRepo(db),
		Cities:      repository.NewCityRepo(db),
		Saloons:     repository.NewSaloonRepo(db),
		MovieImages: repository.NewMovieImageRepo(db),
		Actors:      repository.NewActorRepo(db),
		Comments:    repository.NewCommentRepo(db),
		Showtimes:   repository.NewShowtimeRepo(db),
	}

	if seedCfg.Enabled {
		rdb := config.NewRedisClient()
		if rdb != nil {
			defer rdb.Close()
		}
		var rep seed.Report
		err := seed.Guarded(ctx, rdb, seed.CatalogLockKey, seed.LockConfig{TTL: seedCfg.LockTTL, Wait: seedCfg.LockWait}, lg,
			func(ctx context.Context) error {
				rep = seed.NewCatalogSeeder(stores, lg.Named("seed")).Run(ctx)
				return nil
			})
		if err != nil {
			// The next boot retries.
			lg.Error("catalog seeding did not run", zap.Error(err))
		} else {
			if failed := rep.Failed(); len(failed) > 0 {
				lg.Warn("catalog seeding finished with failures", zap.Int("failed", len(failed)))
			}
			pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			_ = queue_publisher.PublishCatalogSeeded(pubCtx, config.BrokerURL(), queue.NewCatalogSeededEvent(serviceName, rep), lg)
			cancel()
		}
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler([]handler.NamedCounter{
		{Name: seed.CollectionCategories, Counter: stores.Categories},
		{Name: seed.CollectionDirectors, Counter: stores.Directors},
		{Name: seed.CollectionMovies, Counter: stores.Movies},
		{Name: seed.CollectionCities, Counter: stores.Cities},
		{Name: seed.CollectionSaloons, Counter: stores.Saloons},
		{Name: seed.CollectionMovieImages, Counter: stores.MovieImages},
		{Name: seed.CollectionActors, Counter: stores.Actors},
		{Name: seed.CollectionComments, Counter: stores.Comments},
		{Name: seed.CollectionShowtimes, Counter: stores.Showtimes},
	}, lg))

	addr := ":" + cfg.Port
	lg.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env), zap.String("service", serviceName))
	if err := e.Start(addr); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
