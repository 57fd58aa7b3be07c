package calculator

import (
	"strings"

	"github.com/radhian/receipt-reconciliation/entity"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GST splits or grosses up an amount at the fixed 18% rate, rounded to 4 places.
func (u *calculatorUsecase) GST(req entity.GSTRequest) (entity.GSTResult, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(string(req.Amount)))
	if err != nil || !amount.IsPositive() {
		return entity.GSTResult{}, ErrInvalidAmount
	}
	multiplier := hundred.Add(gstRate)

	res := entity.GSTResult{RatePercent: gstRate}
	if req.Inclusive {
		base := amount.Mul(hundred).Div(multiplier)
		res.TotalAmount = amount
		res.BaseAmount = base.Round(4)
		res.GSTAmount = amount.Sub(base).Round(4)
		return res, nil
	}

	total := amount.Mul(multiplier).Div(hundred)
	res.BaseAmount = amount
	res.TotalAmount = total.Round(4)
	res.GSTAmount = total.Sub(amount).Round(4)
	return res, nil
}
