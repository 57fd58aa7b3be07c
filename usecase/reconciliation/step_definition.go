package reconciliation

import (
	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/utils"
)

type checkDefinition struct {
	priority string
	// foundStatus and outcome apply only when the lookup returns rows.
	foundStatus string
	outcome     consts.Outcome
	message     string
	lookup      func(store ReceiptStore, q entity.ReceiptQuery, step *entity.StepResult) error
}

var checkDefinitions = map[consts.CheckKind]checkDefinition{
	consts.CheckLoanExistence: {
		priority:    consts.PriorityHigh,
		foundStatus: consts.StepStatusSuccess,
		lookup:      lookupLoan,
	},
	consts.CheckExactMatch: {
		priority:    consts.PriorityHigh,
		foundStatus: consts.StepStatusSuccess,
		outcome:     consts.OutcomeReceiptFound,
		message:     consts.OutcomeReceiptFound.Message(),
		lookup:      lookupTransactions(exactMatchFilter),
	},
	consts.CheckAmountMismatch: {
		priority:    consts.PriorityMedium,
		foundStatus: consts.StepStatusWarning,
		outcome:     consts.OutcomeAmountMismatchWarning,
		message:     consts.OutcomeAmountMismatchWarning.Message(),
		lookup:      lookupTransactions(amountMismatchFilter),
	},
	consts.CheckDateMismatch: {
		priority:    consts.PriorityLow,
		foundStatus: consts.StepStatusWarning,
		outcome:     consts.OutcomeDateWarning,
		message:     consts.OutcomeDateWarning.Message(),
		lookup:      lookupTransactions(dateMismatchFilter),
	},
	consts.CheckDuplicateReceiptNo: {
		priority:    consts.PriorityHigh,
		foundStatus: consts.StepStatusWarning,
		outcome:     consts.OutcomeDuplicateReceiptNo,
		message:     consts.OutcomeDuplicateReceiptNo.Message(),
		lookup:      lookupTransactions(duplicateReceiptNoFilter),
	},
	consts.CheckDuplicateReceiptInOffice: {
		priority:    consts.PriorityMedium,
		foundStatus: consts.StepStatusWarning,
		outcome:     consts.OutcomeDuplicateReceiptInOffice,
		message:     consts.OutcomeDuplicateReceiptInOffice.Message(),
		lookup:      lookupTransactions(officeDuplicateFilter),
	},
}

func lookupLoan(store ReceiptStore, q entity.ReceiptQuery, step *entity.StepResult) error {
	loans, err := store.GetLoanApplicationsByLoanNo(q.LoanNo)
	if err != nil {
		return err
	}
	step.MatchedLoans = loans
	step.RowCount = len(loans)
	return nil
}

func lookupTransactions(build func(entity.ReceiptQuery) dao.TransactionFilter) func(ReceiptStore, entity.ReceiptQuery, *entity.StepResult) error {
	return func(store ReceiptStore, q entity.ReceiptQuery, step *entity.StepResult) error {
		rows, err := store.FindLoanTransactions(build(q))
		if err != nil {
			return err
		}
		step.MatchedRows = rows
		step.RowCount = len(rows)
		return nil
	}
}

func exactMatchFilter(q entity.ReceiptQuery) dao.TransactionFilter {
	return dao.TransactionFilter{
		LoanNo: q.LoanNo, LoanNoCond: dao.Equal,
		ReceiptNo: q.ReceiptNo, ReceiptNoCond: dao.Equal,
		Amount: q.Amount, AmountCond: dao.Equal,
		Date: q.Date, DateCond: dao.Equal,
	}
}

func amountMismatchFilter(q entity.ReceiptQuery) dao.TransactionFilter {
	return dao.TransactionFilter{
		LoanNo: q.LoanNo, LoanNoCond: dao.Equal,
		ReceiptNo: q.ReceiptNo, ReceiptNoCond: dao.Equal,
		Date: q.Date, DateCond: dao.Equal,
		Amount: q.Amount, AmountCond: dao.NotEqual,
	}
}

func dateMismatchFilter(q entity.ReceiptQuery) dao.TransactionFilter {
	return dao.TransactionFilter{
		LoanNo: q.LoanNo, LoanNoCond: dao.Equal,
		ReceiptNo: q.ReceiptNo, ReceiptNoCond: dao.Equal,
		Date: q.Date, DateCond: dao.NotEqual,
	}
}

// duplicateReceiptNoFilter matches receipts reused on the loan with neither the amount nor the
// date of the receipt being checked. Matching when either one differs would also fire on every
// amount-only or date-only mismatch and outrank those warnings.
func duplicateReceiptNoFilter(q entity.ReceiptQuery) dao.TransactionFilter {
	return dao.TransactionFilter{
		LoanNo: q.LoanNo, LoanNoCond: dao.Equal,
		ReceiptNo: q.ReceiptNo, ReceiptNoCond: dao.Equal,
		Amount: q.Amount, AmountCond: dao.NotEqual,
		Date: q.Date, DateCond: dao.NotEqual,
	}
}

func officeDuplicateFilter(q entity.ReceiptQuery) dao.TransactionFilter {
	return dao.TransactionFilter{
		OfficeID: utils.OfficePrefix(q.LoanNo), OfficeIDCond: dao.Equal,
		ReceiptNo: q.ReceiptNo, ReceiptNoCond: dao.Equal,
		LoanNo: q.LoanNo, LoanNoCond: dao.NotEqual,
	}
}
