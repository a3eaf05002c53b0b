package store

import (
	"github.com/MKhiriev/ranking-mk2/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, name, role, is_active, created_at;`

	findActiveUserByEmail = `SELECT user_id, email, password_hash, name, role, is_active, created_at
    FROM users
    WHERE email = $1 AND is_active = TRUE;`

	findActiveUserByID = `SELECT user_id, email, password_hash, name, role, is_active, created_at
    FROM users
    WHERE user_id = $1 AND is_active = TRUE;`

	updatePasswordHash = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2;`
)

// rankingColumns is the canonical column list for the rankings table.
// Scan order everywhere must match this order.
var rankingColumns = []string{
	"id",
	"account_name",
	"profile_url",
	"followers",
	"image_url",
	"area",
	"store_name",
	"created_at",
	"updated_at",
}

// psql builds queries with PostgreSQL-style $N placeholders. SQLite accepts
// the same placeholder syntax, so the builders serve both drivers.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildSelectAllRankingsQuery() (string, []any, error) {
	return psql.
		Select(rankingColumns...).
		From("rankings").
		OrderBy("followers DESC", "id ASC").
		ToSql()
}

func buildSelectRankingByIDQuery(id int64) (string, []any, error) {
	return psql.
		Select(rankingColumns...).
		From("rankings").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertRankingQuery(ranking models.Ranking) (string, []any, error) {
	return psql.
		Insert("rankings").
		Columns("account_name", "profile_url", "followers", "image_url", "area", "store_name").
		Values(ranking.AccountName, ranking.ProfileURL, ranking.Followers, ranking.ImageURL, ranking.Area, ranking.StoreName).
		Suffix("RETURNING " + columnList()).
		ToSql()
}

func buildUpdateRankingQuery(ranking models.Ranking) (string, []any, error) {
	return psql.
		Update("rankings").
		Set("account_name", ranking.AccountName).
		Set("profile_url", ranking.ProfileURL).
		Set("followers", ranking.Followers).
		Set("image_url", ranking.ImageURL).
		Set("area", ranking.Area).
		Set("store_name", ranking.StoreName).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": ranking.ID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
}

func buildDeleteRankingQuery(id int64) (string, []any, error) {
	return psql.
		Delete("rankings").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func columnList() string {
	list := rankingColumns[0]
	for _, column := range rankingColumns[1:] {
		list += ", " + column
	}
	return list
}
