package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog-records/models"
)

const (
	authorsTable = "authors"
	postsTable   = "posts"
)

var (
	authorColumns = []string{"id", "name", "phone_number", "created_at", "updated_at"}
	postColumns   = []string{"id", "title", "content", "category", "summary", "created_at", "updated_at"}
)

func buildInsertAuthorQuery(b sq.StatementBuilderType, author models.Author) (string, []any, error) {
	return b.Insert(authorsTable).
		Columns("name", "phone_number", "created_at").
		Values(author.Name, nullString(author.PhoneNumber), author.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectAuthorsQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(authorColumns...).From(authorsTable)
	if where != nil {
		query = query.Where(where)
	}

	return query.OrderBy("id").ToSql()
}

func buildUpdateAuthorQuery(b sq.StatementBuilderType, author models.Author) (string, []any, error) {
	return b.Update(authorsTable).
		Set("name", author.Name).
		Set("phone_number", nullString(author.PhoneNumber)).
		Set("updated_at", nullTime(author.UpdatedAt)).
		Where(sq.Eq{"id": author.ID}).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, table string, id int64) (string, []any, error) {
	return b.Delete(table).Where(sq.Eq{"id": id}).ToSql()
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(postsTable).
		Columns("title", "content", "category", "summary", "created_at").
		Values(post.Title, nullString(post.Content), nullCategory(post.Category), nullString(post.Summary), post.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectPostsQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(postColumns...).From(postsTable)
	if where != nil {
		query = query.Where(where)
	}

	return query.OrderBy("id").ToSql()
}

func buildUpdatePostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Update(postsTable).
		Set("title", post.Title).
		Set("content", nullString(post.Content)).
		Set("category", nullCategory(post.Category)).
		Set("summary", nullString(post.Summary)).
		Set("updated_at", nullTime(post.UpdatedAt)).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
}

// rowScanner is implemented by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(row rowScanner) (models.Author, error) {
	var (
		author    models.Author
		phone     sql.NullString
		updatedAt sql.NullTime
	)

	if err := row.Scan(&author.ID, &author.Name, &phone, &author.CreatedAt, &updatedAt); err != nil {
		return models.Author{}, err
	}
	author.PhoneNumber = stringPtr(phone)
	author.UpdatedAt = timePtr(updatedAt)

	return author, nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		post      models.Post
		content   sql.NullString
		category  sql.NullString
		summary   sql.NullString
		updatedAt sql.NullTime
	)

	if err := row.Scan(&post.ID, &post.Title, &content, &category, &summary, &post.CreatedAt, &updatedAt); err != nil {
		return models.Post{}, err
	}
	post.Content = stringPtr(content)
	post.Category = models.Category(category.String)
	post.Summary = stringPtr(summary)
	post.UpdatedAt = timePtr(updatedAt)

	return post, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullCategory(c models.Category) sql.NullString {
	return sql.NullString{String: string(c), Valid: c != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
