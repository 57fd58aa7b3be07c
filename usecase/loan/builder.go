package loan

import (
	"errors"

	"github.com/radhian/receipt-reconciliation/infra/db/model"
)

var (
	ErrInvalidSearchTerm   = errors.New("invalid search term format")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// LoanStore is the read-only part of the DAO used by the lookup screens.
type LoanStore interface {
	GetLoanApplicationsByLoanNo(loanNo string) ([]model.LoanApplication, error)
	GetLoanApplicationByLoanAppID(loanAppID int64) (model.LoanApplication, error)
	GetLoanApplicationByRegNo(regNo string) (model.LoanApplication, error)
	GetAccountTransactions(loanNo, transNo string) ([]model.AccountTransaction, error)
	GetBankDetailsByLoanAppID(loanAppID int64) ([]model.BankDetail, error)
}

type LoanUsecase interface {
	SearchLoan(store LoanStore, searchTerm string) (model.LoanApplication, error)
	GetTransaction(store LoanStore, loanNo, transNo string) ([]model.AccountTransaction, error)
	GetBankDetails(store LoanStore, loanAppID int64) ([]model.BankDetail, error)
}

type loanUsecase struct{}

func NewLoanUsecase() LoanUsecase {
	return &loanUsecase{}
}
