// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/thingfulapp/thingful-server/models"
)

// psql builds every statement with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = "id, user_name, full_name, nickname, password, date_created"

// buildInsertUserQuery produces the single constrained INSERT used for
// registration. nickname and date_created are deliberately omitted: the
// column defaults (NULL and now() in UTC) are the source of truth, and the
// RETURNING clause hands the canonical row back to the caller.
func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns("user_name", "full_name", "password").
		Values(user.UserName, user.FullName, user.Password).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

func buildSelectUserByUserNameQuery(userName string) (string, []any, error) {
	return psql.Select(userColumns).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_name": userName}).
		ToSql()
}

func buildSelectUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select(userColumns).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildSelectThingsQuery lists things enriched with the average rating of
// their reviews; things without reviews get rating zero.
func buildSelectThingsQuery() (string, []any, error) {
	return psql.Select(
		"t.id",
		"t.title",
		"t.image",
		"t.content",
		"t.date_created",
		"COALESCE(AVG(r.rating), 0)::float8 AS average_review_rating",
	).
		From(models.Thing{}.TableName() + " AS t").
		LeftJoin(models.Review{}.TableName() + " AS r ON r.thing_id = t.id").
		GroupBy("t.id").
		OrderBy("t.id").
		ToSql()
}

func buildSelectThingByIDQuery(thingID int64) (string, []any, error) {
	return psql.Select(
		"t.id",
		"t.title",
		"t.image",
		"t.content",
		"t.date_created",
		"COALESCE(AVG(r.rating), 0)::float8 AS average_review_rating",
	).
		From(models.Thing{}.TableName() + " AS t").
		LeftJoin(models.Review{}.TableName() + " AS r ON r.thing_id = t.id").
		Where(sq.Eq{"t.id": thingID}).
		GroupBy("t.id").
		ToSql()
}

// buildSelectThingReviewsQuery joins in the reviewer's user_name; no other
// account data crosses this boundary.
func buildSelectThingReviewsQuery(thingID int64) (string, []any, error) {
	return psql.Select(
		"r.id",
		"r.rating",
		"r.text",
		"r.thing_id",
		"u.user_name",
		"r.date_created",
	).
		From(models.Review{}.TableName() + " AS r").
		Join(models.User{}.TableName() + " AS u ON u.id = r.user_id").
		Where(sq.Eq{"r.thing_id": thingID}).
		OrderBy("r.id").
		ToSql()
}
