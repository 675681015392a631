package postgres

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolationErrorCode     = "23505"
	pgForeignKeyViolationErrorCode = "23503"
)

var sortableCommentColumns = []string{"created_at", "updated_at", "like_count", "reply_count", "flag_count"}

func addOrderBy(db *gorm.DB, orderBy string) *gorm.DB {
	if orderBy != "" {
		var column, order string
		expression := strings.Split(orderBy, ":")
		column = strings.ToLower(expression[0])
		if len(expression) == 2 {
			order = strings.ToLower(expression[1])
		}

		if slices.Contains(sortableCommentColumns, column) {
			if slices.Contains([]string{"asc", "desc"}, order) {
				return db.Order(fmt.Sprintf(`"%s" %s`, column, order))
			}
			return db.Order(column)
		}
	}

	return db
}

func pgErrorCode(err error) string {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code
	}
	return ""
}
