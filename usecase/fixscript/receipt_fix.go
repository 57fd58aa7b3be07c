package fixscript

import (
	"fmt"
	"strings"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/utils"
)

// ReceiptFix turns the outcome of a receipt check into the statement a clerk would run next.
// Only not_found, amount and date mismatches map to a corrective statement; other outcomes get
// verification queries and a note.
func (u *fixScriptUsecase) ReceiptFix(q entity.ReceiptQuery, result entity.ReconciliationResult) (entity.FixScript, error) {
	script := entity.FixScript{Kind: KindReceiptFix}
	verify := fmt.Sprintf("SELECT * FROM tbl_Loantrans WHERE int_loanno = %s AND chr_rec_no = %s;",
		quote(q.LoanNo), quote(q.ReceiptNo))

	switch result.OverallStatus {
	case consts.OutcomeNotFound:
		insert := fmt.Sprintf(
			"INSERT INTO tbl_Loantrans (int_loanno, chr_rec_no, int_amt, dt_transaction, vchr_offidC) VALUES (%s, %s, %s, %s, %s);",
			quote(q.LoanNo), quote(q.ReceiptNo), money(q.Amount), timestamp(q.Date), quote(utils.OfficePrefix(q.LoanNo)))
		script.SQL = joinStatements(
			"-- Verify the receipt is still missing\n"+verify,
			"-- Insert the missing receipt\n"+insert,
			"-- Verify the receipt after insert\n"+verify)

	case consts.OutcomeAmountMismatchWarning, consts.OutcomeDateWarning:
		issue := result.HighestPriorityIssue
		if issue == nil || len(issue.MatchedRows) == 0 {
			return script, fmt.Errorf("%w: %s has no matched rows", ErrNothingToFix, result.OverallStatus)
		}
		updates := make([]string, 0, len(issue.MatchedRows))
		for _, row := range issue.MatchedRows {
			where := fmt.Sprintf("int_loanno = %s AND chr_rec_no = %s AND int_amt = %s AND dt_transaction = %s",
				quote(row.LoanNo), quote(row.ReceiptNo), money(row.Amount), timestamp(row.TransactionDate))
			if result.OverallStatus == consts.OutcomeAmountMismatchWarning {
				updates = append(updates, fmt.Sprintf("UPDATE tbl_Loantrans SET int_amt = %s WHERE %s;", money(q.Amount), where))
			} else {
				updates = append(updates, fmt.Sprintf("UPDATE tbl_Loantrans SET dt_transaction = %s WHERE %s;", timestamp(q.Date), where))
			}
		}
		script.SQL = joinStatements(
			"-- Verify the recorded receipt before update\n"+verify,
			"-- Correct the recorded receipt\n"+strings.Join(updates, "\n"),
			"-- Verify the receipt after update\n"+verify)
		script.Notes = append(script.Notes, "Confirm the receipt book entry before correcting the recorded value.")

	case consts.OutcomeReceiptFound:
		script.SQL = "-- Receipt already recorded; nothing to do\n" + verify

	case consts.OutcomeDuplicateReceiptNo, consts.OutcomeDuplicateReceiptInOffice:
		script.SQL = "-- Receipt number already used; review the rows below before any change\n" +
			fmt.Sprintf("SELECT * FROM tbl_Loantrans WHERE vchr_offidC = %s AND chr_rec_no = %s;",
				quote(utils.OfficePrefix(q.LoanNo)), quote(q.ReceiptNo))
		script.Notes = append(script.Notes, result.Message)

	default:
		return script, fmt.Errorf("%w: %s", ErrUnfixableCheck, result.OverallStatus)
	}
	return script, nil
}
