package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-blog-records/internal/config"
	"github.com/MKhiriev/go-blog-records/internal/logger"
	"github.com/MKhiriev/go-blog-records/internal/service"
	"github.com/MKhiriev/go-blog-records/internal/store"
	"github.com/MKhiriev/go-blog-records/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("blogrecords")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("blogrecords stopped with error")
		stop()
		os.Exit(1)
	}
}

// run opens the record store, applies migrations and reports what it holds.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, log, service.WithBuildInfo(models.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}))
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	authors, err := services.AuthorService.ListAuthors(ctx)
	if err != nil {
		return fmt.Errorf("error listing authors: %w", err)
	}

	posts, err := services.PostService.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("error listing posts: %w", err)
	}

	byCategory := make(map[models.Category]int, len(models.Categories))
	for _, category := range models.Categories {
		categoryPosts, err := services.PostService.ListPostsByCategory(ctx, category)
		if err != nil {
			return fmt.Errorf("error listing %s posts: %w", category, err)
		}
		byCategory[category] = len(categoryPosts)
	}

	log.Info().
		Str("version", services.AppInfoService.GetAppVersion(ctx)).
		Str("driver", cfg.Storage.DB.Driver).
		Int("authors", len(authors)).
		Int("posts", len(posts)).
		Any("posts_by_category", byCategory).
		Msg("record store is ready")

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
