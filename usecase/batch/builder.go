package batch

import (
	"context"
	"io"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/usecase/reconciliation"
)

// SessionFunc runs fn against a store that lives for the duration of the call.
type SessionFunc func(ctx context.Context, fn func(store reconciliation.ReceiptStore) error) error

type BatchUsecase interface {
	// Run reads receipts as CSV from in, checks them and writes the report as CSV to out.
	Run(ctx context.Context, in io.Reader, out io.Writer) (entity.BatchSummary, error)
}

type batchUsecase struct {
	reconciler reconciliation.ReconciliationUsecase
	session    SessionFunc
	workers    int
}

func NewBatchUsecase(reconciler reconciliation.ReconciliationUsecase, session SessionFunc, workers int) BatchUsecase {
	if workers <= 0 {
		workers = consts.DefaultBatchWorkers
	}
	return &batchUsecase{
		reconciler: reconciler,
		session:    session,
		workers:    workers,
	}
}
