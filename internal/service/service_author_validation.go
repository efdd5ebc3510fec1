package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-records/internal/logger"
	"github.com/MKhiriev/go-blog-records/internal/utils"
	"github.com/MKhiriev/go-blog-records/internal/validators"
	"github.com/MKhiriev/go-blog-records/models"
)

// AuthorValidationService validates authors before handing them to the
// wrapped AuthorService. Normalized values (the trimmed name) are what gets
// persisted.
type AuthorValidationService struct {
	inner     AuthorService
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthorValidationService builds a wrapper whose name uniqueness rule
// looks authors up through finder.
func NewAuthorValidationService(finder validators.AuthorFinder, logger *logger.Logger) AuthorServiceWrapper {
	return &AuthorValidationService{
		validator: validators.NewAuthorValidator(finder),
		logger:    logger,
	}
}

// CreateAuthor validates every field of author in order and stops at the
// first failure.
func (v *AuthorValidationService) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	ctx = utils.WithTraceID(ctx, v.logger)

	// a new author has no row to exclude from the uniqueness check
	author.ID = 0
	if err := v.validator.Validate(ctx, &author); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*AuthorValidationService.CreateAuthor").Msg("author rejected")
		return models.Author{}, fmt.Errorf("error during author validation before saving: %w", err)
	}

	return v.inner.CreateAuthor(ctx, author)
}

func (v *AuthorValidationService) GetAuthor(ctx context.Context, id int64) (models.Author, error) {
	return v.inner.GetAuthor(ctx, id)
}

func (v *AuthorValidationService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	return v.inner.ListAuthors(ctx)
}

// UpdateAuthor validates only the fields update assigns. ErrNoFieldsToUpdate
// is returned when it assigns nothing.
func (v *AuthorValidationService) UpdateAuthor(ctx context.Context, update models.AuthorUpdate) (models.Author, error) {
	ctx = utils.WithTraceID(ctx, v.logger)

	if update.IsEmpty() {
		return models.Author{}, ErrNoFieldsToUpdate
	}

	if err := v.validator.Validate(ctx, &update); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*AuthorValidationService.UpdateAuthor").Int64("id", update.ID).Msg("author update rejected")
		return models.Author{}, fmt.Errorf("error during author validation before updating: %w", err)
	}

	return v.inner.UpdateAuthor(ctx, update)
}

func (v *AuthorValidationService) DeleteAuthor(ctx context.Context, id int64) error {
	return v.inner.DeleteAuthor(ctx, id)
}

func (v *AuthorValidationService) Wrap(wrapper AuthorService) AuthorService {
	v.inner = wrapper
	return v
}
