package dao

import (
	"fmt"

	"github.com/radhian/receipt-reconciliation/infra/db/model"
)

func (d *dao) GetBankDetailsByLoanAppID(loanAppID int64) ([]model.BankDetail, error) {
	var details []model.BankDetail
	if err := d.db.Where("int_loanappid = ?", loanAppID).Find(&details).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bank details: %w", err)
	}
	return details, nil
}

// Ping runs a trivial statement; it also works inside a transaction.
func (d *dao) Ping() error {
	return d.db.Exec("SELECT 1").Error
}
