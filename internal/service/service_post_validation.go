package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-records/internal/logger"
	"github.com/MKhiriev/go-blog-records/internal/utils"
	"github.com/MKhiriev/go-blog-records/internal/validators"
	"github.com/MKhiriev/go-blog-records/models"
)

// PostValidationService validates posts before handing them to the wrapped
// PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator

	logger *logger.Logger
}

func NewPostValidationService(logger *logger.Logger) PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
		logger:    logger,
	}
}

// CreatePost validates title, content, summary and category in that order
// and stops at the first failure.
func (v *PostValidationService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	ctx = utils.WithTraceID(ctx, v.logger)

	if err := v.validator.Validate(ctx, &post); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*PostValidationService.CreatePost").Msg("post rejected")
		return models.Post{}, fmt.Errorf("error during post validation before saving: %w", err)
	}

	return v.inner.CreatePost(ctx, post)
}

func (v *PostValidationService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return v.inner.GetPost(ctx, id)
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

// ListPostsByCategory rejects categories outside the allow-list.
func (v *PostValidationService) ListPostsByCategory(ctx context.Context, category models.Category) ([]models.Post, error) {
	if err := validators.ValidatePostCategory(category); err != nil {
		return nil, fmt.Errorf("error during category filter validation: %w", err)
	}

	return v.inner.ListPostsByCategory(ctx, category)
}

// UpdatePost validates only the fields update assigns. ErrNoFieldsToUpdate
// is returned when it assigns nothing.
func (v *PostValidationService) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	ctx = utils.WithTraceID(ctx, v.logger)

	if update.IsEmpty() {
		return models.Post{}, ErrNoFieldsToUpdate
	}

	if err := v.validator.Validate(ctx, &update); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*PostValidationService.UpdatePost").Int64("id", update.ID).Msg("post update rejected")
		return models.Post{}, fmt.Errorf("error during post validation before updating: %w", err)
	}

	return v.inner.UpdatePost(ctx, update)
}

func (v *PostValidationService) DeletePost(ctx context.Context, id int64) error {
	return v.inner.DeletePost(ctx, id)
}

func (v *PostValidationService) Wrap(wrapper PostService) PostService {
	v.inner = wrapper
	return v
}
