// Package txutil lets GORM repositories join a transaction owned by a service
// that started it on the underlying *sql.DB.
package txutil

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a session bound to ctx. When tx is non-nil every statement of
// the session is executed on tx.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	conn := db.WithContext(ctx)
	if tx != nil {
		conn.Statement.ConnPool = tx
	}
	return conn
}
