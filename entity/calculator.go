package entity

import "github.com/shopspring/decimal"

type GSTRequest struct {
	Amount LooseString `json:"amount"`
	// Inclusive means Amount already contains GST.
	Inclusive bool `json:"inclusive"`
}

type GSTResult struct {
	BaseAmount  decimal.Decimal `json:"baseAmount"`
	GSTAmount   decimal.Decimal `json:"gstAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	RatePercent decimal.Decimal `json:"ratePercent"`
}

type EMIRequest struct {
	LoanAmount     LooseString `json:"loanAmount"`
	InterestRate   LooseString `json:"interestRate"`
	DurationMonths LooseString `json:"durationMonths,omitempty"`
	FromDate       string      `json:"fromDate,omitempty"`
	ToDate         string      `json:"toDate,omitempty"`
}

type EMIResult struct {
	Mode          string          `json:"mode"`
	MonthlyEMI    decimal.Decimal `json:"monthlyEMI"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
	TenureMonths  int64           `json:"tenureMonths"`
	TenureYears   int64           `json:"tenureYears"`
	Days          int64           `json:"days,omitempty"`
}

type DeductionRequest struct {
	LoanAppID     LooseString `json:"loanAppId"`
	ProcessingFee LooseString `json:"proFee"`
	LegalFee      LooseString `json:"legalFee"`
	BC            LooseString `json:"bc"`
}

type DeductionResult struct {
	Total decimal.Decimal `json:"total"`
	// Row is the tab separated line pasted into the remittance sheet.
	Row string `json:"row"`
}
