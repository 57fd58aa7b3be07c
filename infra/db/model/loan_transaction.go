package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanTransaction is a receipt posted against a loan (tbl_Loantrans).
type LoanTransaction struct {
	LoanNo          string          `gorm:"column:int_loanno;size:20;index" json:"int_loanno"`
	ReceiptNo       string          `gorm:"column:chr_rec_no;size:50;index" json:"chr_rec_no"`
	Amount          decimal.Decimal `gorm:"column:int_amt;type:decimal(18,2)" json:"int_amt"`
	TransactionDate time.Time       `gorm:"column:dt_transaction" json:"dt_transaction"`
	OfficeID        string          `gorm:"column:vchr_offidC;size:10" json:"vchr_offidC"`
}

func (LoanTransaction) TableName() string {
	return "tbl_Loantrans"
}
