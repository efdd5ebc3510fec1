package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-records/internal/logger"
	"github.com/MKhiriev/go-blog-records/internal/store"
	"github.com/MKhiriev/go-blog-records/internal/utils"
	"github.com/MKhiriev/go-blog-records/internal/validators"
	"github.com/MKhiriev/go-blog-records/models"
)

// authorService persists authors. It stamps timestamps from clock and does
// not validate; see AuthorValidationService.
type authorService struct {
	authorRepository store.AuthorRepository
	clock            utils.Clock

	logger *logger.Logger
}

func NewAuthorService(authorRepository store.AuthorRepository, clock utils.Clock, logger *logger.Logger) AuthorService {
	return &authorService{
		authorRepository: authorRepository,
		clock:            clock,
		logger:           logger,
	}
}

func (s *authorService) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	ctx = utils.WithTraceID(ctx, s.logger)
	log := logger.FromContext(ctx)

	author.ID = 0
	author.CreatedAt = s.clock()
	author.UpdatedAt = nil

	created, err := s.authorRepository.CreateAuthor(ctx, author)
	if err != nil {
		log.Err(err).Str("func", "*authorService.CreateAuthor").Msg("error saving author")
		return models.Author{}, mapAuthorStoreError(err)
	}

	log.Debug().Str("func", "*authorService.CreateAuthor").Int64("id", created.ID).Msg("author created")
	return created, nil
}

func (s *authorService) GetAuthor(ctx context.Context, id int64) (models.Author, error) {
	ctx = utils.WithTraceID(ctx, s.logger)
	return s.authorRepository.GetAuthor(ctx, id)
}

func (s *authorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	ctx = utils.WithTraceID(ctx, s.logger)
	return s.authorRepository.ListAuthors(ctx)
}

func (s *authorService) UpdateAuthor(ctx context.Context, update models.AuthorUpdate) (models.Author, error) {
	ctx = utils.WithTraceID(ctx, s.logger)
	log := logger.FromContext(ctx)

	author, err := s.authorRepository.GetAuthor(ctx, update.ID)
	if err != nil {
		return models.Author{}, fmt.Errorf("error loading author %d for update: %w", update.ID, err)
	}

	update.Apply(&author)
	now := s.clock()
	author.UpdatedAt = &now

	if err = s.authorRepository.UpdateAuthor(ctx, author); err != nil {
		log.Err(err).Str("func", "*authorService.UpdateAuthor").Int64("id", author.ID).Msg("error saving author")
		return models.Author{}, mapAuthorStoreError(err)
	}

	return author, nil
}

func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	ctx = utils.WithTraceID(ctx, s.logger)
	return s.authorRepository.DeleteAuthor(ctx, id)
}

// mapAuthorStoreError turns a violated UNIQUE constraint on authors.name into
// the same ValidationError the uniqueness rule produces.
func mapAuthorStoreError(err error) error {
	if errors.Is(err, store.ErrAuthorNameTaken) {
		return validators.NewValidationError(validators.FieldName, validators.ErrNameNotUnique)
	}
	return err
}
