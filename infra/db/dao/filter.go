package dao

import (
	"time"

	"github.com/shopspring/decimal"
)

// Condition selects how a filter field is compared. The zero value ignores the field.
type Condition int

const (
	Any Condition = iota
	Equal
	NotEqual
)

// TransactionFilter is a predicate over tbl_Loantrans. Every receipt check is a projection of it.
type TransactionFilter struct {
	LoanNo     string
	LoanNoCond Condition

	ReceiptNo     string
	ReceiptNoCond Condition

	Amount     decimal.Decimal
	AmountCond Condition

	// Date is compared as a calendar day; the time component is ignored.
	Date     time.Time
	DateCond Condition

	OfficeID     string
	OfficeIDCond Condition
}

func (f TransactionFilter) empty() bool {
	return f.LoanNoCond == Any &&
		f.ReceiptNoCond == Any &&
		f.AmountCond == Any &&
		f.DateCond == Any &&
		f.OfficeIDCond == Any
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
