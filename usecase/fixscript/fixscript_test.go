package fixscript

import (
	"testing"
	"time"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiptQuery() entity.ReceiptQuery {
	return entity.ReceiptQuery{
		LoanNo:    "140102037",
		ReceiptNo: "R100",
		Amount:    decimal.RequireFromString("500"),
		Date:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestReceiptFix_NotFoundInserts(t *testing.T) {
	uc := NewFixScriptUsecase("")

	script, err := uc.ReceiptFix(receiptQuery(), entity.ReconciliationResult{OverallStatus: consts.OutcomeNotFound})

	require.NoError(t, err)
	assert.Equal(t, KindReceiptFix, script.Kind)
	assert.Contains(t, script.SQL,
		"INSERT INTO tbl_Loantrans (int_loanno, chr_rec_no, int_amt, dt_transaction, vchr_offidC) VALUES ('140102037', 'R100', 500.00, '2025-01-10 00:00:00.000', '1401');")
}

func TestReceiptFix_AmountMismatchUpdatesMatchedRow(t *testing.T) {
	uc := NewFixScriptUsecase("")
	stored := model.LoanTransaction{
		LoanNo:          "140102037",
		ReceiptNo:       "R100",
		Amount:          decimal.RequireFromString("450"),
		TransactionDate: time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC),
	}
	result := entity.ReconciliationResult{
		OverallStatus:        consts.OutcomeAmountMismatchWarning,
		HighestPriorityIssue: &entity.StepResult{MatchedRows: []model.LoanTransaction{stored}},
	}

	script, err := uc.ReceiptFix(receiptQuery(), result)

	require.NoError(t, err)
	assert.Contains(t, script.SQL, "UPDATE tbl_Loantrans SET int_amt = 500.00 WHERE int_loanno = '140102037' AND chr_rec_no = 'R100' AND int_amt = 450.00 AND dt_transaction = '2025-01-10 09:30:00.000';")
	assert.NotEmpty(t, script.Notes)
}

func TestReceiptFix_DateWarningWithoutRows(t *testing.T) {
	uc := NewFixScriptUsecase("")

	_, err := uc.ReceiptFix(receiptQuery(), entity.ReconciliationResult{OverallStatus: consts.OutcomeDateWarning})

	assert.ErrorIs(t, err, ErrNothingToFix)
}

func TestReceiptFix_ReviewOnlyOutcomes(t *testing.T) {
	uc := NewFixScriptUsecase("")

	script, err := uc.ReceiptFix(receiptQuery(), entity.ReconciliationResult{OverallStatus: consts.OutcomeDuplicateReceiptInOffice, Message: "dup"})
	require.NoError(t, err)
	assert.NotContains(t, script.SQL, "INSERT")
	assert.NotContains(t, script.SQL, "UPDATE")
	assert.Contains(t, script.SQL, "vchr_offidC = '1401'")

	script, err = uc.ReceiptFix(receiptQuery(), entity.ReconciliationResult{OverallStatus: consts.OutcomeReceiptFound})
	require.NoError(t, err)
	assert.Contains(t, script.SQL, "nothing to do")

	_, err = uc.ReceiptFix(receiptQuery(), entity.ReconciliationResult{OverallStatus: consts.OutcomeLoanNotFound})
	assert.ErrorIs(t, err, ErrUnfixableCheck)
}

func TestSchemeChange(t *testing.T) {
	uc := NewFixScriptUsecase("")

	script, err := uc.SchemeChange(entity.SchemeChangeRequest{RegNo: "KL/O'NEIL/1", SchemeID: "12"})
	require.NoError(t, err)
	assert.Contains(t, script.SQL, "UPDATE tbl_loanapp SET int_schemeid = 12 WHERE vchr_appreceivregno = 'KL/O''NEIL/1';")

	_, err = uc.SchemeChange(entity.SchemeChangeRequest{RegNo: "KL/1", SchemeID: "12; DROP TABLE x"})
	assert.ErrorIs(t, err, ErrInvalidScheme)

	_, err = uc.SchemeChange(entity.SchemeChangeRequest{SchemeID: "12"})
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestBankDetail(t *testing.T) {
	uc := NewFixScriptUsecase("7")

	script, err := uc.BankDetail(entity.BankDetailRequest{
		LoanAppID:  "123456",
		PastedData: "Bank\tBranch\tIFSC\tAccount\nState Bank\t Pattom \tsbin0070123\t0012345678\n\n",
	})
	require.NoError(t, err)
	assert.Contains(t, script.SQL, "VALUES (123456, 'State Bank', 'Pattom', 'SBIN0070123', '0012345678', '7', 0);")

	_, err = uc.BankDetail(entity.BankDetailRequest{LoanAppID: "123456", PastedData: "only\ttwo"})
	assert.ErrorIs(t, err, ErrInvalidPaste)

	_, err = uc.BankDetail(entity.BankDetailRequest{LoanAppID: "abc", PastedData: "a\tb\tc\td"})
	assert.ErrorIs(t, err, ErrInvalidAppID)
}

func TestTransactionCancel(t *testing.T) {
	uc := NewFixScriptUsecase("")
	rows := []model.AccountTransaction{{
		TransNo:     "T1",
		TransType:   "Receipt",
		Code:        1041,
		AccountName: "PROCESSING FEE",
		Received:    decimal.RequireFromString("118"),
		TransDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		LoanNo:      "140102037",
		GSTPercent:  decimal.NewFromInt(18),
	}}

	script, err := uc.TransactionCancel("140102037", "T1", rows)

	require.NoError(t, err)
	assert.Contains(t, script.SQL, "'T1', 'Receipt', 1041, 'CANCELLED', '', 0.00, 0.00, '2025-01-10 00:00:00.000', '140102037'")
	assert.Contains(t, script.SQL, "SELECT * FROM tbl_Acctrans WHERE int_loanno = '140102037' AND vchr_TransNo = 'T1';")
	assert.Equal(t, "PROCESSING FEE", rows[0].AccountName, "input rows are not modified")

	_, err = uc.TransactionCancel("140102037", "T1", nil)
	assert.ErrorIs(t, err, ErrNothingToFix)
}

func TestTransactionGenerate_Receipts(t *testing.T) {
	uc := NewFixScriptUsecase("")

	script, err := uc.TransactionGenerate(entity.TransactionGenerateRequest{
		LoanNo: "TVM/123/2020",
		Name:   "Anil",
		Date:   "15/01/2025",
		Receipts: []entity.FeeReceipt{
			{TransNo: "L1", Amount: "1000"},
			{TransNo: "P1", Amount: "1,180", Date: "2025-01-16"},
			{},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, KindTransactionGenerate, script.Kind)
	assert.Contains(t, script.SQL, "VALUES ('L1', 'Receipt', 1039, 'LEGAL FEE', 'Cash', 1000.00, 0.00, '2025-01-15 00:00:00.000', 'TVM/123/2020', 'Anil', 'LEGAL FEE', '0101', '1', '1900-01-01 00:00:00.000', '0101', '', 0, 0.00);")
	assert.Contains(t, script.SQL, "VALUES ('P1', 'Receipt', 1041, 'PROCESSING FEE', 'Cash', 1180.00, 0.00, '2025-01-16 00:00:00.000', 'TVM/123/2020', 'Anil', '', '0101', '1', '1900-01-01 00:00:00.000', '0101', '', 18, 180.00);")
	assert.NotContains(t, script.SQL, "24103, 'Beneficiary Contribution'")
	assert.Empty(t, script.Notes)
}

func TestTransactionGenerate_PastedLine(t *testing.T) {
	uc := NewFixScriptUsecase("")

	script, err := uc.TransactionGenerate(entity.TransactionGenerateRequest{
		LoanNo:     "14010203",
		PastedData: "header\n500\t10/01/2025\tL9\t590\t10/01/2025\tP9\t2500\t11/01/2025\tB9\n",
	})

	require.NoError(t, err)
	assert.Contains(t, script.SQL, "('L9', 'Receipt', 1039, 'LEGAL FEE', 'Cash', 500.00, 0.00, '2025-01-10 00:00:00.000', '14010203', '', 'LEGAL FEE', '1401'")
	assert.Contains(t, script.SQL, "'PROCESSING FEE', 'Cash', 590.00, 0.00, '2025-01-10 00:00:00.000', '14010203', '', '', '1401', '1', '1900-01-01 00:00:00.000', '1401', '', 18, 90.00);")
	assert.Contains(t, script.SQL, "('B9', 'Receipt', 24103, 'Beneficiary Contribution', 'Cash', 2500.00, 0.00, '2025-01-11 00:00:00.000'")
}

func TestTransactionGenerate_Rejections(t *testing.T) {
	uc := NewFixScriptUsecase("")
	tests := []struct {
		name string
		req  entity.TransactionGenerateRequest
		want error
	}{
		{"missing loan", entity.TransactionGenerateRequest{Receipts: []entity.FeeReceipt{{TransNo: "L1", Amount: "1"}}}, ErrMissingInput},
		{"short paste", entity.TransactionGenerateRequest{LoanNo: "TVM/1", PastedData: "1\t2\t3"}, ErrInvalidFees},
		{"negative amount", entity.TransactionGenerateRequest{LoanNo: "TVM/1", Receipts: []entity.FeeReceipt{{TransNo: "L1", Amount: "-1"}}}, ErrInvalidAmount},
		{"bad date", entity.TransactionGenerateRequest{LoanNo: "TVM/1", Receipts: []entity.FeeReceipt{{TransNo: "L1", Amount: "1", Date: "soon"}}}, ErrInvalidDate},
		{"amount without number", entity.TransactionGenerateRequest{LoanNo: "TVM/1", Receipts: []entity.FeeReceipt{{Amount: "1"}}}, ErrMissingInput},
		{"all empty", entity.TransactionGenerateRequest{LoanNo: "TVM/1", Receipts: []entity.FeeReceipt{{}, {}}}, ErrNothingToFix},
		{"four receipts", entity.TransactionGenerateRequest{LoanNo: "TVM/1", Receipts: make([]entity.FeeReceipt, 4)}, ErrTooManyRows},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.TransactionGenerate(tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTransactionGenerate_UnknownOfficeAndDate(t *testing.T) {
	uc := NewFixScriptUsecase("")

	script, err := uc.TransactionGenerate(entity.TransactionGenerateRequest{
		LoanNo:   "XYZ/1/2020",
		Receipts: []entity.FeeReceipt{{TransNo: "L1", Amount: "0"}},
	})

	require.NoError(t, err)
	assert.Contains(t, script.SQL, "0.00, 0.00, '1900-01-01 00:00:00.000', 'XYZ/1/2020'")
	assert.Len(t, script.Notes, 2)
}

func TestOfficeForLoan(t *testing.T) {
	assert.Equal(t, "0802", officeForLoan("cka/55/2019"))
	assert.Equal(t, "1401", officeForLoan("140102037"))
	assert.Equal(t, "", officeForLoan("1234567"))
	assert.Equal(t, "", officeForLoan("ZZZ/1"))
}
