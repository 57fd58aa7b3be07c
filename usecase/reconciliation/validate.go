package reconciliation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidAmount = errors.New("receipt amount must be a non-negative value with at most 2 decimals")
	ErrInvalidDate   = errors.New("date must be in YYYY-MM-DD format")
)

// ParseReceiptQuery checks that all four fields are present and well formed.
func ParseReceiptQuery(req entity.CheckReceiptRequest) (entity.ReceiptQuery, error) {
	loanNo := strings.TrimSpace(string(req.LoanNo))
	receiptNo := strings.TrimSpace(string(req.ReceiptNo))
	amountStr := strings.TrimSpace(string(req.Amount))
	dateStr := strings.TrimSpace(string(req.Date))

	var missing []string
	for name, v := range map[string]string{
		"loanno": loanNo, "receiptNo": receiptNo, "receiptAmount": amountStr, "date": dateStr,
	} {
		if v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return entity.ReceiptQuery{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil || amount.IsNegative() || !amount.Equal(amount.Round(2)) {
		return entity.ReceiptQuery{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amountStr)
	}

	date, err := time.ParseInLocation(consts.DateLayout, dateStr, time.UTC)
	if err != nil {
		return entity.ReceiptQuery{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}

	return entity.ReceiptQuery{
		LoanNo:    loanNo,
		ReceiptNo: receiptNo,
		Amount:    amount.Round(2),
		Date:      date,
	}, nil
}
