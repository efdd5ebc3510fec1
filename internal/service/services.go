package service

import (
	"fmt"

	"github.com/MKhiriev/go-blog-records/internal/config"
	"github.com/MKhiriev/go-blog-records/internal/logger"
	"github.com/MKhiriev/go-blog-records/internal/store"
	"github.com/MKhiriev/go-blog-records/internal/utils"
	"github.com/MKhiriev/go-blog-records/models"
)

// Services groups the application services. Author and post services are
// the validated ones.
type Services struct {
	AuthorService  AuthorService
	PostService    PostService
	AppInfoService AppInfoService
}

type options struct {
	clock utils.Clock
	build models.BuildInfo
}

// Option customizes NewServices.
type Option func(*options)

// WithClock replaces the clock that stamps created_at and updated_at.
func WithClock(clock utils.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithBuildInfo sets the link-time build values reported by AppInfoService.
func WithBuildInfo(build models.BuildInfo) Option {
	return func(o *options) {
		o.build = build
	}
}

// NewServices wires the inner services to storages and wraps them with
// validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger, opts ...Option) (*Services, error) {
	o := options{clock: utils.SystemClock}
	for _, opt := range opts {
		opt(&o)
	}

	appInfoService, err := NewAppInfoService(cfg, o.build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authorService := NewAuthorService(storages.AuthorRepository, o.clock, logger)
	postService := NewPostService(storages.PostRepository, o.clock, logger)

	return &Services{
		AuthorService:  NewAuthorValidationService(storages.AuthorRepository, logger).Wrap(authorService),
		PostService:    NewPostValidationService(logger).Wrap(postService),
		AppInfoService: appInfoService,
	}, nil
}
