package dao

import (
	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	GetLoanApplicationsByLoanNo(loanNo string) ([]model.LoanApplication, error)
	GetLoanApplicationByLoanAppID(loanAppID int64) (model.LoanApplication, error)
	GetLoanApplicationByRegNo(regNo string) (model.LoanApplication, error)
	FindLoanTransactions(filter TransactionFilter) ([]model.LoanTransaction, error)
	GetAccountTransactions(loanNo, transNo string) ([]model.AccountTransaction, error)
	GetBankDetailsByLoanAppID(loanAppID int64) ([]model.BankDetail, error)
	Ping() error
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
