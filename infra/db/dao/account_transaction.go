package dao

import (
	"fmt"

	"github.com/radhian/receipt-reconciliation/infra/db/model"
)

func (d *dao) GetAccountTransactions(loanNo, transNo string) ([]model.AccountTransaction, error) {
	var rows []model.AccountTransaction
	if err := d.db.
		Where("int_loanno = ? AND vchr_TransNo = ?", loanNo, transNo).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query account transactions: %w", err)
	}
	return rows, nil
}
