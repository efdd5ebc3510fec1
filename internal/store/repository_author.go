package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-records/internal/logger"
	"github.com/MKhiriev/go-blog-records/models"
)

// authorRepository is the database/sql implementation of [AuthorRepository].
// It handles author creation, lookup and modification against the "authors"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, operation-level tracing of database interactions.
type authorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuthorRepository constructs an [AuthorRepository] backed by the provided
// database connection and logger.
func NewAuthorRepository(db *DB, logger *logger.Logger) AuthorRepository {
	logger.Debug().Msg("creating author repository")
	return &authorRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAuthor inserts author and returns it with the ID assigned by the
// database.
//
// Error handling:
//   - UNIQUE violation on authors.name → [ErrAuthorNameTaken].
//   - Any other driver-level error → wrapped [ErrExecutingStatement].
func (r *authorRepository) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAuthorQuery(r.db.builder, author)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.CreateAuthor").Msg("error building insert query")
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&author.ID); err != nil {
		log.Err(err).Str("func", "*authorRepository.CreateAuthor").Str("name", author.Name).Msg("error inserting author")

		if r.db.classify(err) == UniqueViolation {
			return models.Author{}, ErrAuthorNameTaken
		}
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return author, nil
}

// GetAuthor returns the author with the given ID or [ErrAuthorNotFound].
func (r *authorRepository) GetAuthor(ctx context.Context, id int64) (models.Author, error) {
	return r.getOne(ctx, "*authorRepository.GetAuthor", sq.Eq{"id": id})
}

// FindAuthorByName returns the author whose name equals name exactly or
// [ErrAuthorNotFound].
func (r *authorRepository) FindAuthorByName(ctx context.Context, name string) (models.Author, error) {
	return r.getOne(ctx, "*authorRepository.FindAuthorByName", sq.Eq{"name": name})
}

func (r *authorRepository) getOne(ctx context.Context, funcName string, where sq.Sqlizer) (models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAuthorsQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select query")
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	author, err := scanAuthor(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Author{}, ErrAuthorNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error scanning author row")
		return models.Author{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return author, nil
}

// ListAuthors returns every stored author ordered by ID.
func (r *authorRepository) ListAuthors(ctx context.Context) ([]models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAuthorsQuery(r.db.builder, nil)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("error querying authors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	authors := make([]models.Author, 0)
	for rows.Next() {
		author, scanErr := scanAuthor(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*authorRepository.ListAuthors").Msg("error scanning author row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		authors = append(authors, author)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("error iterating author rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return authors, nil
}

// UpdateAuthor overwrites the stored author with the same ID.
//
// Error handling:
//   - no matching row → [ErrAuthorNotFound].
//   - UNIQUE violation on authors.name → [ErrAuthorNameTaken].
func (r *authorRepository) UpdateAuthor(ctx context.Context, author models.Author) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAuthorQuery(r.db.builder, author)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.UpdateAuthor").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.UpdateAuthor").Int64("id", author.ID).Msg("error updating author")

		if r.db.classify(err) == UniqueViolation {
			return ErrAuthorNameTaken
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result, ErrAuthorNotFound)
}

// DeleteAuthor removes the author with the given ID or returns
// [ErrAuthorNotFound].
func (r *authorRepository) DeleteAuthor(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.db.builder, authorsTable, id)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.DeleteAuthor").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.DeleteAuthor").Int64("id", id).Msg("error deleting author")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return checkAffected(result, ErrAuthorNotFound)
}

// checkAffected returns notFound when result reports zero affected rows.
func checkAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}
