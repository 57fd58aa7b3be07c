package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/shopspring/decimal"
)

// LooseString accepts a JSON string, number or null. Form fields arrive either way.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(data))
	}
	*s = LooseString(num.String())
	return nil
}

// CheckReceiptRequest is the body of the receipt check endpoints.
type CheckReceiptRequest struct {
	LoanNo    LooseString `json:"loanno"`
	ReceiptNo LooseString `json:"receiptNo"`
	Amount    LooseString `json:"receiptAmount"`
	Date      LooseString `json:"date"`
	Step      string      `json:"step,omitempty"`
}

// ReceiptQuery is a validated receipt to reconcile.
type ReceiptQuery struct {
	LoanNo    string
	ReceiptNo string
	Amount    decimal.Decimal
	Date      time.Time
}

// StepResult is the outcome of one check.
type StepResult struct {
	Kind                      consts.CheckKind        `json:"-"`
	Title                     string                  `json:"title"`
	Priority                  string                  `json:"priority"`
	Status                    string                  `json:"status"`
	RowCount                  int                     `json:"rowCount"`
	MatchedRows               []model.LoanTransaction `json:"matchedRows"`
	MatchedLoans              []model.LoanApplication `json:"matchedLoans,omitempty"`
	Message                   string                  `json:"message,omitempty"`
	OverallStatusContribution consts.Outcome          `json:"overallStatusContribution,omitempty"`
}

// Found reports whether the check matched any row.
func (s StepResult) Found() bool {
	return s.RowCount > 0
}

// ReconciliationResult is the aggregate of a full receipt check.
type ReconciliationResult struct {
	OverallStatus        consts.Outcome `json:"overallStatus"`
	Message              string         `json:"message"`
	Steps                []StepResult   `json:"steps"`
	HighestPriorityIssue *StepResult    `json:"highestPriorityIssue,omitempty"`
}

// StepEvent is one line of the streaming check endpoint.
type StepEvent struct {
	Type   string                `json:"type"`
	Step   *StepResult           `json:"step,omitempty"`
	Result *ReconciliationResult `json:"result,omitempty"`
}
