// Package fixscript renders corrective SQL for a clerk to review and run by hand. Nothing here
// touches a database.
package fixscript

import (
	"errors"

	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/model"
)

var (
	ErrMissingInput   = errors.New("missing required input")
	ErrInvalidPaste   = errors.New("pasted data must contain bank name, branch, IFSC and account number separated by tabs")
	ErrNothingToFix   = errors.New("no rows to generate a script from")
	ErrInvalidScheme  = errors.New("scheme id must be a positive integer")
	ErrInvalidAppID   = errors.New("loan application id must be a positive integer")
	ErrUnfixableCheck = errors.New("receipt check did not complete")
	ErrInvalidAmount  = errors.New("amount must be a non-negative number")
	ErrInvalidDate    = errors.New("transaction date is missing or not a recognised date")
	ErrInvalidFees    = errors.New("pasted data must hold amount, date and transaction number for each of the three fees")
	ErrTooManyRows    = errors.New("at most one legal fee, processing fee and beneficiary contribution receipt")
)

const (
	KindReceiptFix          = "receipt_fix"
	KindSchemeChange        = "scheme_change"
	KindBankDetail          = "bank_detail"
	KindTransactionCancel   = "transaction_cancel"
	KindTransactionGenerate = "transaction_generate"
)

type FixScriptUsecase interface {
	ReceiptFix(query entity.ReceiptQuery, result entity.ReconciliationResult) (entity.FixScript, error)
	SchemeChange(req entity.SchemeChangeRequest) (entity.FixScript, error)
	BankDetail(req entity.BankDetailRequest) (entity.FixScript, error)
	TransactionCancel(loanNo, transNo string, rows []model.AccountTransaction) (entity.FixScript, error)
	TransactionGenerate(req entity.TransactionGenerateRequest) (entity.FixScript, error)
}

type fixScriptUsecase struct {
	// user is written to the audit columns of generated rows.
	user string
}

func NewFixScriptUsecase(user string) FixScriptUsecase {
	if user == "" {
		user = "1"
	}
	return &fixScriptUsecase{user: user}
}
