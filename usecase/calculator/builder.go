package calculator

import (
	"errors"

	"github.com/radhian/receipt-reconciliation/entity"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("valid amount is required")
	ErrInvalidRate     = errors.New("interest rate must be between 0 and 100")
	ErrInvalidDuration = errors.New("loan duration must be a positive number of months")
	ErrInvalidPeriod   = errors.New("to date must be after from date")
	ErrAmbiguousMode   = errors.New("provide either a duration or a from/to date range")
)

const (
	ModeEMI          = "emi"
	ModeInterestOnly = "interest_only"
)

var gstRate = decimal.NewFromInt(18)

type CalculatorUsecase interface {
	GST(req entity.GSTRequest) (entity.GSTResult, error)
	EMI(req entity.EMIRequest) (entity.EMIResult, error)
	Deduction(req entity.DeductionRequest) (entity.DeductionResult, error)
}

type calculatorUsecase struct{}

func NewCalculatorUsecase() CalculatorUsecase {
	return &calculatorUsecase{}
}
