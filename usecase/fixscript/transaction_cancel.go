package fixscript

import (
	"fmt"
	"strings"

	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/shopspring/decimal"
)

const cancelledAccountName = "CANCELLED"

var accountTransactionColumns = []string{
	"vchr_TransNo", "chr_Trans_Type", "int_Code", "chr_Acc_Name", "chr_Type", "int_Rec", "int_Pay",
	"dt_TDate", "int_loanno", "chr_Name", "vchr_remarks", "vchr_offid", "vchr_uname", "dte_time",
	"vchr_offidC", "Remarks", "GST_percent", "GST_Amount",
}

// TransactionCancel re-inserts the fetched ledger rows as cancelled entries with no receipt amount.
func (u *fixScriptUsecase) TransactionCancel(loanNo, transNo string, rows []model.AccountTransaction) (entity.FixScript, error) {
	if len(rows) == 0 {
		return entity.FixScript{}, ErrNothingToFix
	}

	inserts := make([]string, 0, len(rows))
	for _, row := range rows {
		row.AccountName = cancelledAccountName
		row.Received = decimal.Zero
		inserts = append(inserts, fmt.Sprintf("INSERT INTO tbl_Acctrans (%s) VALUES (%s);",
			strings.Join(accountTransactionColumns, ", "), strings.Join(accountTransactionValues(row), ", ")))
	}

	verify := fmt.Sprintf("SELECT * FROM tbl_Acctrans WHERE int_loanno = %s AND vchr_TransNo = %s;", quote(loanNo), quote(transNo))
	return entity.FixScript{
		Kind: KindTransactionCancel,
		SQL: joinStatements(
			"-- Verify the original transaction\n"+verify,
			"-- Insert the new cancelled transaction\n"+strings.Join(inserts, "\n")),
	}, nil
}

func accountTransactionValues(r model.AccountTransaction) []string {
	return []string{
		quote(r.TransNo), quote(r.TransType), integer(r.Code), quote(r.AccountName), quote(r.Type),
		money(r.Received), money(r.Paid), timestamp(r.TransDate), quote(r.LoanNo), quote(r.Name),
		quote(r.Remarks), quote(r.OfficeID), quote(r.UserName), timestamp(r.EntryTime),
		quote(r.OfficeIDC), quote(r.ExtraRemarks), r.GSTPercent.String(), money(r.GSTAmount),
	}
}
