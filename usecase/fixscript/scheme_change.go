package fixscript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/radhian/receipt-reconciliation/entity"
)

func (u *fixScriptUsecase) SchemeChange(req entity.SchemeChangeRequest) (entity.FixScript, error) {
	regNo := strings.TrimSpace(req.RegNo)
	schemeStr := strings.TrimSpace(string(req.SchemeID))
	if regNo == "" || schemeStr == "" {
		return entity.FixScript{}, fmt.Errorf("%w: loanNo and schemeId", ErrMissingInput)
	}
	schemeID, err := strconv.ParseInt(schemeStr, 10, 64)
	if err != nil || schemeID <= 0 {
		return entity.FixScript{}, fmt.Errorf("%w: %q", ErrInvalidScheme, schemeStr)
	}

	verify := fmt.Sprintf("SELECT vchr_appreceivregno, int_schemeid FROM tbl_loanapp WHERE vchr_appreceivregno = %s;", quote(regNo))
	update := fmt.Sprintf("UPDATE tbl_loanapp SET int_schemeid = %s WHERE vchr_appreceivregno = %s;", integer(schemeID), quote(regNo))

	return entity.FixScript{
		Kind: KindSchemeChange,
		SQL: joinStatements(
			"-- Verify the current scheme before update\n"+verify,
			"-- Update the scheme\n"+update,
			"-- Verify the scheme after update\n"+verify),
	}, nil
}
