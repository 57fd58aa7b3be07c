package dao

import (
	"errors"
	"fmt"

	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/jinzhu/gorm"
)

var ErrEmptyFilter = errors.New("transaction filter has no conditions")

func (d *dao) FindLoanTransactions(filter TransactionFilter) ([]model.LoanTransaction, error) {
	if filter.empty() {
		return nil, ErrEmptyFilter
	}

	query := applyFilter(d.db.Model(&model.LoanTransaction{}), filter)

	var rows []model.LoanTransaction
	if err := query.Order("dt_transaction ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query loan transactions: %w", err)
	}
	return rows, nil
}

func applyFilter(query *gorm.DB, f TransactionFilter) *gorm.DB {
	query = compare(query, "int_loanno", f.LoanNoCond, f.LoanNo)
	query = compare(query, "chr_rec_no", f.ReceiptNoCond, f.ReceiptNo)
	query = compare(query, "vchr_offidC", f.OfficeIDCond, f.OfficeID)
	query = compare(query, "int_amt", f.AmountCond, f.Amount)

	start, end := dayBounds(f.Date)
	switch f.DateCond {
	case Equal:
		query = query.Where("dt_transaction >= ? AND dt_transaction < ?", start, end)
	case NotEqual:
		query = query.Where("(dt_transaction < ? OR dt_transaction >= ?)", start, end)
	}
	return query
}

func compare(query *gorm.DB, column string, cond Condition, value interface{}) *gorm.DB {
	switch cond {
	case Equal:
		return query.Where(column+" = ?", value)
	case NotEqual:
		return query.Where(column+" <> ?", value)
	}
	return query
}
