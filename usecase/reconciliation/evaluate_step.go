package reconciliation

import (
	"context"
	"fmt"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/labstack/gommon/log"
)

// RunStep validates the request and evaluates a single check.
func (u *reconciliationUsecase) RunStep(ctx context.Context, store ReceiptStore, req entity.CheckReceiptRequest, kind consts.CheckKind) (entity.StepResult, error) {
	if !kind.Valid() {
		return entity.StepResult{}, fmt.Errorf("invalid step provided: %d", int(kind))
	}
	query, err := ParseReceiptQuery(req)
	if err != nil {
		return entity.StepResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return entity.StepResult{}, err
	}
	return evaluateStep(store, query, kind), nil
}

// evaluateStep runs one check. A lookup with no rows is always a success; severity is attached only
// when rows come back. Query failures are recorded on the step, never returned.
func evaluateStep(store ReceiptStore, q entity.ReceiptQuery, kind consts.CheckKind) entity.StepResult {
	def := checkDefinitions[kind]
	step := entity.StepResult{
		Kind:        kind,
		Title:       kind.Title(),
		Priority:    def.priority,
		Status:      consts.StepStatusSuccess,
		MatchedRows: []model.LoanTransaction{},
	}

	if err := def.lookup(store, q, &step); err != nil {
		log.Errorf("[ReceiptCheck] %s failed for loan %s receipt %s: %v", step.Title, q.LoanNo, q.ReceiptNo, err)
		step.Status = consts.StepStatusError
		step.Message = err.Error()
		step.OverallStatusContribution = consts.OutcomeError
		step.MatchedRows = []model.LoanTransaction{}
		step.MatchedLoans = nil
		step.RowCount = 0
		return step
	}

	if step.MatchedRows == nil {
		step.MatchedRows = []model.LoanTransaction{}
	}
	if !step.Found() {
		return step
	}

	step.Status = def.foundStatus
	step.Message = def.message
	step.OverallStatusContribution = def.outcome
	return step
}
