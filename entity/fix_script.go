package entity

// FixScript is a reviewed-by-a-human SQL script. The service never executes it.
type FixScript struct {
	Kind  string   `json:"kind"`
	SQL   string   `json:"sql"`
	Notes []string `json:"notes,omitempty"`
}

type ReceiptFixResponse struct {
	Check  ReconciliationResult `json:"check"`
	Script FixScript            `json:"script"`
}

type SchemeChangeRequest struct {
	RegNo    string      `json:"loanNo"`
	SchemeID LooseString `json:"schemeId"`
}

type BankDetailRequest struct {
	LoanAppID  LooseString `json:"loanAppId"`
	PastedData string      `json:"pastedData"`
}

type TransactionCancelRequest struct {
	LoanNo  string `json:"loanNo"`
	TransNo string `json:"transNo"`
}

// FeeReceipt is one fee collected at disbursement. Date falls back to the request date.
type FeeReceipt struct {
	TransNo string      `json:"transNo"`
	Amount  LooseString `json:"amount"`
	Date    string      `json:"date,omitempty"`
}

// TransactionGenerateRequest describes the legal fee, processing fee and beneficiary contribution
// receipts of a loan, in that order. PastedData, when set, replaces Receipts with the last pasted
// spreadsheet line laid out as amount, date, transaction number for each fee.
type TransactionGenerateRequest struct {
	LoanNo     string       `json:"loanNo"`
	Name       string       `json:"name"`
	OfficeID   string       `json:"officeId,omitempty"`
	Date       string       `json:"date,omitempty"`
	Receipts   []FeeReceipt `json:"receipts,omitempty"`
	PastedData string       `json:"pastedData,omitempty"`
}
