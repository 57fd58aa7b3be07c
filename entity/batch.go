package entity

import "github.com/radhian/receipt-reconciliation/consts"

// BatchReceiptRow is one line of a batch check input file.
type BatchReceiptRow struct {
	LoanNo    string `csv:"loan_no"`
	ReceiptNo string `csv:"receipt_no"`
	Amount    string `csv:"amount"`
	Date      string `csv:"date"`
}

// BatchReportRow is one line of the batch check report.
type BatchReportRow struct {
	Line          int    `csv:"line"`
	LoanNo        string `csv:"loan_no"`
	ReceiptNo     string `csv:"receipt_no"`
	Amount        string `csv:"amount"`
	Date          string `csv:"date"`
	OverallStatus string `csv:"overall_status"`
	DecisiveCheck string `csv:"decisive_check"`
	Message       string `csv:"message"`
}

// BatchSummary counts the outcomes of a batch run.
type BatchSummary struct {
	Total    int                    `json:"total"`
	Checked  int                    `json:"checked"`
	Skipped  int                    `json:"skipped"`
	Outcomes map[consts.Outcome]int `json:"outcomes"`
}
