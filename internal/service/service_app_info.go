package service

import (
	"context"

	"github.com/MKhiriev/go-blog-records/internal/config"
	"github.com/MKhiriev/go-blog-records/internal/logger"
	"github.com/MKhiriev/go-blog-records/models"
)

type appInfoService struct {
	appVersion string
	build      models.BuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version, falling back to the linked build
// version. ErrVersionIsNotSpecified is returned when both are empty.
func NewAppInfoService(cfg config.App, build models.BuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	return s.build
}
