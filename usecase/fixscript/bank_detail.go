package fixscript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/radhian/receipt-reconciliation/entity"
)

// BankDetail builds the insert for the last non-empty line of a spreadsheet paste laid out as
// bank name, branch, IFSC, account number.
func (u *fixScriptUsecase) BankDetail(req entity.BankDetailRequest) (entity.FixScript, error) {
	appIDStr := strings.TrimSpace(string(req.LoanAppID))
	if appIDStr == "" || strings.TrimSpace(req.PastedData) == "" {
		return entity.FixScript{}, fmt.Errorf("%w: loanAppId and pastedData", ErrMissingInput)
	}
	appID, err := strconv.ParseInt(appIDStr, 10, 64)
	if err != nil || appID <= 0 {
		return entity.FixScript{}, fmt.Errorf("%w: %q", ErrInvalidAppID, appIDStr)
	}

	values := strings.Split(lastPastedLine(req.PastedData), "\t")
	if len(values) < 4 {
		return entity.FixScript{}, ErrInvalidPaste
	}
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}

	insert := fmt.Sprintf(
		"INSERT INTO tbl_BankDetails (int_loanappid, vchr_Bank, vchr_Branch, vchr_IFSC, int_BankAccNo, vchr_user, int_modify) VALUES (%s, %s, %s, %s, %s, %s, 0);",
		integer(appID), quote(values[0]), quote(values[1]), quote(strings.ToUpper(values[2])), quote(values[3]), quote(u.user))
	verify := fmt.Sprintf("SELECT * FROM tbl_BankDetails WHERE int_loanappid = %s;", integer(appID))

	script := entity.FixScript{
		Kind: KindBankDetail,
		SQL:  joinStatements("-- Insert the bank details\n"+insert, "-- Verify the bank details\n"+verify),
	}
	if len(values) > 4 {
		script.Notes = append(script.Notes, fmt.Sprintf("ignored %d extra column(s)", len(values)-4))
	}
	return script, nil
}
