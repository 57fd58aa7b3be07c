package calculator

import (
	"strings"

	"github.com/radhian/receipt-reconciliation/entity"

	"github.com/shopspring/decimal"
)

// Deduction totals the upfront fees and lays them out in remittance-sheet column order.
// Blank or unparsable fees count as zero.
func (u *calculatorUsecase) Deduction(req entity.DeductionRequest) (entity.DeductionResult, error) {
	proFee := parseOrZero(req.ProcessingFee)
	legalFee := parseOrZero(req.LegalFee)
	bc := parseOrZero(req.BC)
	total := proFee.Add(legalFee).Add(bc)

	appID := strings.TrimSpace(string(req.LoanAppID))
	if appID == "" {
		appID = "0"
	}

	cols := []string{
		"0", // int_remitid
		appID,
		proFee.String(),
		"0", // int_ldrf
		legalFee.String(),
		"0", // int_landverfee
		"0", // int_postageamt
		"0", // vchr_postrem
		"0", // int_othersamt
		"0", // vchr_otherrem
		bc.String(),
		total.String(),
	}
	return entity.DeductionResult{Total: total, Row: strings.Join(cols, "\t")}, nil
}

func parseOrZero(s entity.LooseString) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(string(s)))
	if err != nil {
		return decimal.Zero
	}
	return d
}
