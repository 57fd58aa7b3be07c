package reconciliation

import (
	"errors"
	"time"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/shopspring/decimal"
)

// fakeStore evaluates filters in memory with the same semantics as the SQL DAO.
type fakeStore struct {
	loans        []model.LoanApplication
	transactions []model.LoanTransaction
	loanErr      error
	// failOn makes FindLoanTransactions fail for filters matching the predicate.
	failOn func(dao.TransactionFilter) bool
	calls  int
}

var errTimeout = errors.New("query timeout")

func (f *fakeStore) GetLoanApplicationsByLoanNo(loanNo string) ([]model.LoanApplication, error) {
	f.calls++
	if f.loanErr != nil {
		return nil, f.loanErr
	}
	var out []model.LoanApplication
	for _, l := range f.loans {
		if l.LoanNo == loanNo {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) FindLoanTransactions(filter dao.TransactionFilter) ([]model.LoanTransaction, error) {
	f.calls++
	if f.failOn != nil && f.failOn(filter) {
		return nil, errTimeout
	}
	var out []model.LoanTransaction
	for _, t := range f.transactions {
		if matchString(filter.LoanNoCond, t.LoanNo, filter.LoanNo) &&
			matchString(filter.ReceiptNoCond, t.ReceiptNo, filter.ReceiptNo) &&
			matchString(filter.OfficeIDCond, t.OfficeID, filter.OfficeID) &&
			matchBool(filter.AmountCond, t.Amount.Equal(filter.Amount)) &&
			matchBool(filter.DateCond, sameDay(t.TransactionDate, filter.Date)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func matchString(cond dao.Condition, got, want string) bool {
	return matchBool(cond, got == want)
}

func matchBool(cond dao.Condition, equal bool) bool {
	switch cond {
	case dao.Equal:
		return equal
	case dao.NotEqual:
		return !equal
	}
	return true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// failingCheck recognises the filter a given check sends to the store.
func failingCheck(kind consts.CheckKind) func(dao.TransactionFilter) bool {
	return func(f dao.TransactionFilter) bool {
		switch kind {
		case consts.CheckExactMatch:
			return f.AmountCond == dao.Equal && f.DateCond == dao.Equal
		case consts.CheckAmountMismatch:
			return f.AmountCond == dao.NotEqual && f.DateCond == dao.Equal
		case consts.CheckDateMismatch:
			return f.AmountCond == dao.Any && f.DateCond == dao.NotEqual
		case consts.CheckDuplicateReceiptNo:
			return f.AmountCond == dao.NotEqual && f.DateCond == dao.NotEqual
		case consts.CheckDuplicateReceiptInOffice:
			return f.OfficeIDCond == dao.Equal
		}
		return false
	}
}

func txn(loanNo, receiptNo, amount, date string) model.LoanTransaction {
	d, err := time.Parse(consts.DateLayout, date)
	if err != nil {
		panic(err)
	}
	office := loanNo
	if len(office) > consts.OfficePrefixLength {
		office = office[:consts.OfficePrefixLength]
	}
	return model.LoanTransaction{
		LoanNo:          loanNo,
		ReceiptNo:       receiptNo,
		Amount:          decimal.RequireFromString(amount),
		TransactionDate: d.Add(10 * time.Hour),
		OfficeID:        office,
	}
}
