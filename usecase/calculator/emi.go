package calculator

import (
	"math"
	"strconv"
	"strings"

	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/utils"

	"github.com/shopspring/decimal"
)

var (
	twelveHundred = decimal.NewFromInt(1200)
	daysPerYear   = decimal.NewFromInt(365)
)

// EMI uses the reducing-balance formula when a duration is given, or simple interest over the
// day count when a from/to date range is given.
func (u *calculatorUsecase) EMI(req entity.EMIRequest) (entity.EMIResult, error) {
	principal, err := decimal.NewFromString(strings.TrimSpace(string(req.LoanAmount)))
	if err != nil || !principal.IsPositive() {
		return entity.EMIResult{}, ErrInvalidAmount
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(string(req.InterestRate)))
	if err != nil || !rate.IsPositive() || rate.GreaterThan(hundred) {
		return entity.EMIResult{}, ErrInvalidRate
	}

	from, to := strings.TrimSpace(req.FromDate), strings.TrimSpace(req.ToDate)
	duration := strings.TrimSpace(string(req.DurationMonths))

	switch {
	case from != "" && to != "":
		return simpleInterest(principal, rate, from, to)
	case duration != "" && from == "" && to == "":
		months, err := strconv.ParseInt(duration, 10, 64)
		if err != nil || months <= 0 {
			return entity.EMIResult{}, ErrInvalidDuration
		}
		return reducingBalance(principal, rate, months), nil
	}
	return entity.EMIResult{}, ErrAmbiguousMode
}

func reducingBalance(principal, annualRate decimal.Decimal, months int64) entity.EMIResult {
	r := annualRate.Div(twelveHundred)
	growth := decimal.NewFromInt(1).Add(r).Pow(decimal.NewFromInt(months))
	emi := principal.Mul(r).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
	total := emi.Mul(decimal.NewFromInt(months))

	return entity.EMIResult{
		Mode:          ModeEMI,
		MonthlyEMI:    emi.Round(2),
		TotalAmount:   total.Round(2),
		TotalInterest: total.Sub(principal).Round(2),
		TenureMonths:  months,
		TenureYears:   months / 12,
	}
}

func simpleInterest(principal, annualRate decimal.Decimal, fromStr, toStr string) (entity.EMIResult, error) {
	from, err := utils.ParseSmartDate(fromStr)
	if err != nil {
		return entity.EMIResult{}, err
	}
	to, err := utils.ParseSmartDate(toStr)
	if err != nil {
		return entity.EMIResult{}, err
	}
	if !to.After(from) {
		return entity.EMIResult{}, ErrInvalidPeriod
	}

	days := int64(math.Ceil(to.Sub(from).Hours() / 24))
	interest := principal.Mul(annualRate).Div(hundred).Mul(decimal.NewFromInt(days)).Div(daysPerYear)
	months := int64(math.Round(float64(days) / 30))

	return entity.EMIResult{
		Mode:          ModeInterestOnly,
		TotalAmount:   principal.Add(interest).Round(2),
		TotalInterest: interest.Round(2),
		TenureMonths:  months,
		TenureYears:   months / 12,
		Days:          days,
	}, nil
}
