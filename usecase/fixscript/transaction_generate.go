package fixscript

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/model"
	"github.com/radhian/receipt-reconciliation/utils"

	"github.com/shopspring/decimal"
)

type feeTemplate struct {
	code    int64
	account string
	remarks string
	gstRate decimal.Decimal
	inclGST bool
}

// Disbursement fees, in the order they are collected and pasted.
var feeTemplates = []feeTemplate{
	{code: 1039, account: "LEGAL FEE", remarks: "LEGAL FEE"},
	{code: 1041, account: "PROCESSING FEE", gstRate: decimal.NewFromInt(18), inclGST: true},
	{code: 24103, account: "Beneficiary Contribution"},
}

var districtOffices = map[string]string{
	"TVM": "0101", "KMR": "0102", "KLM": "0201", "PTM": "0301", "ALP": "0401",
	"KTM": "0501", "IDK": "0601", "EKM": "0701", "TSR": "0801", "CKA": "0802",
	"PKD": "0901", "MPM": "1001", "VDR": "1002", "KKD": "1101", "WYD": "1201",
	"KNR": "1301", "KSR": "1401",
}

var numericLoanNo = regexp.MustCompile(`^\d{8,}`)

// unknownDate is what the ledger holds when a receipt was keyed without a date.
var unknownDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// officeForLoan derives the office from a district-prefixed loan number such as TVM/123/2020, or
// from the first four digits of a numeric one.
func officeForLoan(loanNo string) string {
	loanNo = strings.TrimSpace(loanNo)
	if district, _, found := strings.Cut(loanNo, "/"); found {
		return districtOffices[strings.ToUpper(strings.TrimSpace(district))]
	}
	if numericLoanNo.MatchString(loanNo) {
		return loanNo[:4]
	}
	return ""
}

// TransactionGenerate inserts the fee receipts collected at disbursement into tbl_Acctrans.
// Receipts with neither a transaction number nor an amount are skipped.
func (u *fixScriptUsecase) TransactionGenerate(req entity.TransactionGenerateRequest) (entity.FixScript, error) {
	loanNo := strings.TrimSpace(req.LoanNo)
	if loanNo == "" {
		return entity.FixScript{}, fmt.Errorf("%w: loanNo", ErrMissingInput)
	}
	receipts := req.Receipts
	if strings.TrimSpace(req.PastedData) != "" {
		var err error
		if receipts, err = pastedFeeReceipts(req.PastedData); err != nil {
			return entity.FixScript{}, err
		}
	}
	if len(receipts) > len(feeTemplates) {
		return entity.FixScript{}, ErrTooManyRows
	}

	var notes []string
	office := strings.TrimSpace(req.OfficeID)
	if office == "" {
		if office = officeForLoan(loanNo); office == "" {
			notes = append(notes, "office id could not be derived from the loan number")
		}
	}

	var inserts []string
	for i, rc := range receipts {
		tmpl := feeTemplates[i]
		transNo := strings.TrimSpace(rc.TransNo)
		amountStr := strings.ReplaceAll(strings.TrimSpace(string(rc.Amount)), ",", "")
		if transNo == "" && amountStr == "" {
			continue
		}
		if transNo == "" {
			return entity.FixScript{}, fmt.Errorf("%w: transNo for %s", ErrMissingInput, tmpl.account)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil || amount.IsNegative() {
			return entity.FixScript{}, fmt.Errorf("%w: %s %q", ErrInvalidAmount, tmpl.account, amountStr)
		}
		date, err := feeDate(rc.Date, req.Date)
		if err != nil {
			return entity.FixScript{}, fmt.Errorf("%w: %s", ErrInvalidDate, tmpl.account)
		}
		if date.Equal(unknownDate) {
			notes = append(notes, fmt.Sprintf("%s has no date; 1900-01-01 used", tmpl.account))
		}

		row := model.AccountTransaction{
			TransNo:     transNo,
			TransType:   "Receipt",
			Code:        tmpl.code,
			AccountName: tmpl.account,
			Type:        "Cash",
			Received:    amount,
			Paid:        decimal.Zero,
			TransDate:   date,
			LoanNo:      loanNo,
			Name:        strings.TrimSpace(req.Name),
			Remarks:     tmpl.remarks,
			OfficeID:    office,
			UserName:    u.user,
			EntryTime:   unknownDate,
			OfficeIDC:   office,
			GSTPercent:  tmpl.gstRate,
			GSTAmount:   includedGST(amount, tmpl),
		}
		inserts = append(inserts, fmt.Sprintf("INSERT INTO tbl_Acctrans (%s) VALUES (%s);",
			strings.Join(accountTransactionColumns, ", "), strings.Join(accountTransactionValues(row), ", ")))
	}
	if len(inserts) == 0 {
		return entity.FixScript{}, ErrNothingToFix
	}

	verify := fmt.Sprintf("SELECT * FROM tbl_Acctrans WHERE int_loanno = %s AND int_Code IN (1039, 1041, 24103);", quote(loanNo))
	return entity.FixScript{
		Kind: KindTransactionGenerate,
		SQL: joinStatements(
			"-- Insert the fee receipts\n"+strings.Join(inserts, "\n"),
			"-- Verify the fee receipts\n"+verify),
		Notes: notes,
	}, nil
}

// includedGST is the tax already contained in a GST-inclusive amount.
func includedGST(amount decimal.Decimal, tmpl feeTemplate) decimal.Decimal {
	if !tmpl.inclGST || tmpl.gstRate.IsZero() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	base := amount.Mul(hundred).Div(hundred.Add(tmpl.gstRate))
	return amount.Sub(base).Round(2)
}

func feeDate(own, fallback string) (time.Time, error) {
	s := strings.TrimSpace(own)
	if s == "" {
		s = strings.TrimSpace(fallback)
	}
	if s == "" {
		return unknownDate, nil
	}
	return utils.ParseSmartDate(s)
}

// pastedFeeReceipts reads the last pasted line as amount, date, transaction number per fee.
func pastedFeeReceipts(pasted string) ([]entity.FeeReceipt, error) {
	values := strings.Split(lastPastedLine(pasted), "\t")
	if len(values) < 3*len(feeTemplates) {
		return nil, ErrInvalidFees
	}
	receipts := make([]entity.FeeReceipt, len(feeTemplates))
	for i := range receipts {
		receipts[i] = entity.FeeReceipt{
			Amount:  entity.LooseString(strings.TrimSpace(values[3*i])),
			Date:    strings.TrimSpace(values[3*i+1]),
			TransNo: strings.TrimSpace(values[3*i+2]),
		}
	}
	return receipts, nil
}
