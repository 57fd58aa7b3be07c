package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/radhian/receipt-reconciliation/infra/db/dao"

	"github.com/jinzhu/gorm"
)

// ReadOnly runs fn against a read-only transaction bound to ctx. The transaction is always rolled
// back, so nothing fn does can be committed.
func ReadOnly(ctx context.Context, conn *gorm.DB, fn func(dao.DaoMethod) error) error {
	// go-mssqldb rejects the read-only flag; the unconditional rollback covers it there.
	opts := &sql.TxOptions{ReadOnly: conn.Dialect().GetName() == "postgres"}
	tx := conn.BeginTx(ctx, opts)
	if tx.Error != nil {
		return fmt.Errorf("failed to begin read session: %w", tx.Error)
	}
	defer tx.Rollback()

	return fn(dao.NewDaoMethod(tx))
}
