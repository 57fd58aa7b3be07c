package calculator

import (
	"testing"

	"github.com/radhian/receipt-reconciliation/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGST(t *testing.T) {
	uc := NewCalculatorUsecase()

	res, err := uc.GST(entity.GSTRequest{Amount: "1180", Inclusive: true})
	require.NoError(t, err)
	assert.True(t, dec("1000").Equal(res.BaseAmount), res.BaseAmount.String())
	assert.True(t, dec("180").Equal(res.GSTAmount), res.GSTAmount.String())

	res, err = uc.GST(entity.GSTRequest{Amount: "1000"})
	require.NoError(t, err)
	assert.True(t, dec("1180").Equal(res.TotalAmount))
	assert.True(t, dec("180").Equal(res.GSTAmount))

	res, err = uc.GST(entity.GSTRequest{Amount: "100", Inclusive: true})
	require.NoError(t, err)
	assert.Equal(t, "84.7458", res.BaseAmount.StringFixed(4))
	assert.Equal(t, "15.2542", res.GSTAmount.StringFixed(4))

	_, err = uc.GST(entity.GSTRequest{Amount: "-5"})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestEMI_ReducingBalance(t *testing.T) {
	uc := NewCalculatorUsecase()

	res, err := uc.EMI(entity.EMIRequest{LoanAmount: "100000", InterestRate: "12", DurationMonths: "12"})

	require.NoError(t, err)
	assert.Equal(t, ModeEMI, res.Mode)
	assert.Equal(t, "8884.88", res.MonthlyEMI.StringFixed(2))
	assert.Equal(t, int64(1), res.TenureYears)
	assert.True(t, res.TotalInterest.GreaterThan(dec("6600")) && res.TotalInterest.LessThan(dec("6700")))
}

func TestEMI_SimpleInterestByDates(t *testing.T) {
	uc := NewCalculatorUsecase()

	res, err := uc.EMI(entity.EMIRequest{LoanAmount: "36500", InterestRate: "10", FromDate: "2025-01-01", ToDate: "2025-01-31"})

	require.NoError(t, err)
	assert.Equal(t, ModeInterestOnly, res.Mode)
	assert.Equal(t, int64(30), res.Days)
	assert.Equal(t, "300.00", res.TotalInterest.StringFixed(2))
	assert.Equal(t, int64(1), res.TenureMonths)
}

func TestEMI_Validation(t *testing.T) {
	uc := NewCalculatorUsecase()

	_, err := uc.EMI(entity.EMIRequest{LoanAmount: "0", InterestRate: "12", DurationMonths: "12"})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = uc.EMI(entity.EMIRequest{LoanAmount: "1000", InterestRate: "101", DurationMonths: "12"})
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = uc.EMI(entity.EMIRequest{LoanAmount: "1000", InterestRate: "12"})
	assert.ErrorIs(t, err, ErrAmbiguousMode)

	_, err = uc.EMI(entity.EMIRequest{LoanAmount: "1000", InterestRate: "12", FromDate: "2025-02-01", ToDate: "2025-01-01"})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = uc.EMI(entity.EMIRequest{LoanAmount: "1000", InterestRate: "12", DurationMonths: "-3"})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestDeduction(t *testing.T) {
	uc := NewCalculatorUsecase()

	res, err := uc.Deduction(entity.DeductionRequest{LoanAppID: "123456", ProcessingFee: "1180", LegalFee: "500.50", BC: ""})

	require.NoError(t, err)
	assert.True(t, dec("1680.5").Equal(res.Total))
	assert.Equal(t, "0\t123456\t1180\t0\t500.5\t0\t0\t0\t0\t0\t0\t1680.5", res.Row)
}
