package reconciliation

import (
	"context"
	"errors"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/labstack/gommon/log"
)

const (
	messageMissingFields = "Missing required fields"
	messageCancelled     = "check cancelled"
)

// CheckReceipt validates the request and reconciles it. It always returns a result.
func (u *reconciliationUsecase) CheckReceipt(ctx context.Context, store ReceiptStore, req entity.CheckReceiptRequest, progress ProgressFunc) entity.ReconciliationResult {
	query, err := ParseReceiptQuery(req)
	if err != nil {
		log.Warnf("[ReceiptCheck] Invalid input: %v", err)
		return validationFailure(err, progress)
	}
	return u.Reconcile(ctx, store, query, progress)
}

// Reconcile runs the checks in their fixed order and reduces the findings to the most severe one.
// Loan existence gates the rest; every later check runs even after a finding.
func (u *reconciliationUsecase) Reconcile(ctx context.Context, store ReceiptStore, query entity.ReceiptQuery, progress ProgressFunc) entity.ReconciliationResult {
	log.Infof("[ReceiptCheck] Start loan=%s receipt=%s amount=%s date=%s",
		query.LoanNo, query.ReceiptNo, query.Amount.StringFixed(2), query.Date.Format(consts.DateLayout))

	result := entity.ReconciliationResult{
		Steps: make([]entity.StepResult, 0, len(consts.CheckOrder)),
	}
	overall := consts.OutcomeNotFound
	decisive := -1

	for _, kind := range consts.CheckOrder {
		if ctx.Err() != nil {
			log.Warnf("[ReceiptCheck] Cancelled before %s: %v", kind.Title(), ctx.Err())
			result.OverallStatus = consts.OutcomeError
			result.Message = messageCancelled
			return result
		}

		step := evaluateStep(store, query, kind)
		result.Steps = append(result.Steps, step)
		if progress != nil {
			progress(step)
		}

		if kind == consts.CheckLoanExistence {
			if step.Status == consts.StepStatusError {
				return finish(result, consts.OutcomeError, len(result.Steps)-1)
			}
			if !step.Found() {
				result.OverallStatus = consts.OutcomeLoanNotFound
				result.Message = consts.OutcomeLoanNotFound.Message()
				log.Infof("[ReceiptCheck] Loan %s not found", query.LoanNo)
				return result
			}
			continue
		}

		if next := consts.MoreSevere(overall, step.OverallStatusContribution); next != overall {
			overall = next
			decisive = len(result.Steps) - 1
		}
	}

	return finish(result, overall, decisive)
}

func finish(result entity.ReconciliationResult, overall consts.Outcome, decisive int) entity.ReconciliationResult {
	result.OverallStatus = overall
	result.Message = overall.Message()
	if decisive >= 0 {
		issue := result.Steps[decisive]
		result.HighestPriorityIssue = &issue
	}
	log.Infof("[ReceiptCheck] Done: %s after %d steps", overall, len(result.Steps))
	return result
}

func validationFailure(err error, progress ProgressFunc) entity.ReconciliationResult {
	message := err.Error()
	if errors.Is(err, ErrMissingFields) {
		message = messageMissingFields
	}
	step := entity.StepResult{
		Title:       consts.InputValidationStepTitle,
		Priority:    consts.PriorityHigh,
		Status:      consts.StepStatusError,
		MatchedRows: []model.LoanTransaction{},
		Message:     message,
	}
	if progress != nil {
		progress(step)
	}
	return entity.ReconciliationResult{
		OverallStatus: consts.OutcomeError,
		Message:       message,
		Steps:         []entity.StepResult{step},
	}
}
