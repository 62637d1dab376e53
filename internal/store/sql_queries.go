// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/models"
)

const (
	usersTable = "users"
	postsTable = "posts"
)

var (
	userColumns = []string{"id", "name", "email", "password_hash", "type", "created_at", "updated_at"}
	postColumns = []string{"id", "title", "content", "author_id", "is_hidden", "created_at", "updated_at"}
)

// buildInsertUserQuery builds an INSERT of a single user returning the
// assigned id.
func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("name", "email", "password_hash", "type", "created_at", "updated_at").
		Values(user.Name, user.Email, user.PasswordHash, string(user.Type), user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func selectUsers(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).From(usersTable)
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(selectUsers(b).Where(sq.Eq{"id": id}))
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return toSQL(selectUsers(b).Where(sq.Eq{"email": email}))
}

func buildFindUsersByNameOrEmailQuery(b sq.StatementBuilderType, name, email string) (string, []any, error) {
	return toSQL(selectUsers(b).
		Where(sq.Or{sq.Eq{"name": name}, sq.Eq{"email": email}}).
		OrderBy("id"))
}

func buildListUsersQuery(b sq.StatementBuilderType, filter models.UserFilter) (string, []any, error) {
	q := selectUsers(b)
	if filter.ExcludeType != nil {
		q = q.Where(sq.NotEq{"type": string(*filter.ExcludeType)})
	}

	return toSQL(q.OrderBy("id"))
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	query, args, err := b.Insert(postsTable).
		Columns(postColumns...).
		Values(post.ID, post.Title, post.Content, post.AuthorID, post.IsHidden, post.CreatedAt, post.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func selectPosts(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(postColumns...).From(postsTable)
}

func buildFindPostsByAuthorQuery(b sq.StatementBuilderType, authorID int64) (string, []any, error) {
	return toSQL(selectPosts(b).
		Where(sq.Eq{"author_id": authorID}).
		OrderBy("created_at DESC", "id"))
}

func buildFindPublicPostsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(selectPosts(b).
		Where(sq.Eq{"is_hidden": false}).
		OrderBy("created_at DESC", "id"))
}

// buildUpdatePostQuery builds an UPDATE writing only the non-nil fields of
// update. updated_at is always refreshed. The statement is scoped by id and,
// when present, by author_id.
func buildUpdatePostQuery(b sq.StatementBuilderType, update models.PostUpdate, now time.Time) (string, []any, error) {
	q := b.Update(postsTable)

	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Content != nil {
		q = q.Set("content", *update.Content)
	}
	if update.IsHidden != nil {
		q = q.Set("is_hidden", *update.IsHidden)
	}

	q = q.Set("updated_at", now).Where(sq.Eq{"id": update.ID})
	if update.AuthorID != nil {
		q = q.Where(sq.Eq{"author_id": *update.AuthorID})
	}

	return toSQL(q)
}

func buildDeletePostQuery(b sq.StatementBuilderType, del models.PostDelete) (string, []any, error) {
	q := b.Delete(postsTable).Where(sq.Eq{"id": del.ID})
	if del.AuthorID != nil {
		q = q.Where(sq.Eq{"author_id": *del.AuthorID})
	}

	return toSQL(q)
}

func toSQL(s sq.Sqlizer) (string, []any, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
