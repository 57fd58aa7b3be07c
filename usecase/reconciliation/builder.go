package reconciliation

import (
	"context"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/infra/db/model"
)

// ReceiptStore is the read-only view of the loan database the checks need.
type ReceiptStore interface {
	GetLoanApplicationsByLoanNo(loanNo string) ([]model.LoanApplication, error)
	FindLoanTransactions(filter dao.TransactionFilter) ([]model.LoanTransaction, error)
}

// ProgressFunc receives every step as soon as it has been evaluated.
type ProgressFunc func(step entity.StepResult)

type ReconciliationUsecase interface {
	CheckReceipt(ctx context.Context, store ReceiptStore, req entity.CheckReceiptRequest, progress ProgressFunc) entity.ReconciliationResult
	Reconcile(ctx context.Context, store ReceiptStore, query entity.ReceiptQuery, progress ProgressFunc) entity.ReconciliationResult
	RunStep(ctx context.Context, store ReceiptStore, req entity.CheckReceiptRequest, kind consts.CheckKind) (entity.StepResult, error)
}

type reconciliationUsecase struct{}

func NewReconciliationUsecase() ReconciliationUsecase {
	return &reconciliationUsecase{}
}
