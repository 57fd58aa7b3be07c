package loan

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/infra/db/model"

	"github.com/labstack/gommon/log"
)

var (
	loanNoPattern    = regexp.MustCompile(`^\d{9}$`)
	loanAppIDPattern = regexp.MustCompile(`^\d{6}$`)
	letterPattern    = regexp.MustCompile(`[a-zA-Z]`)
)

// SearchLoan resolves a search term by its shape: nine digits is a loan number, six digits a loan
// application id, anything with a letter an application register number.
func (u *loanUsecase) SearchLoan(store LoanStore, searchTerm string) (model.LoanApplication, error) {
	term := strings.TrimSpace(searchTerm)

	switch {
	case loanNoPattern.MatchString(term):
		loans, err := store.GetLoanApplicationsByLoanNo(term)
		if err != nil {
			return model.LoanApplication{}, err
		}
		if len(loans) == 0 {
			return model.LoanApplication{}, fmt.Errorf("%w: %s", ErrLoanNotFound, term)
		}
		return loans[0], nil

	case loanAppIDPattern.MatchString(term):
		id, err := strconv.ParseInt(term, 10, 64)
		if err != nil {
			return model.LoanApplication{}, fmt.Errorf("%w: %s", ErrInvalidSearchTerm, term)
		}
		return translateNotFound(store.GetLoanApplicationByLoanAppID(id))

	case letterPattern.MatchString(term):
		return translateNotFound(store.GetLoanApplicationByRegNo(term))
	}

	log.Warnf("[LoanLookup] Rejected search term %q", term)
	return model.LoanApplication{}, fmt.Errorf("%w: %q", ErrInvalidSearchTerm, term)
}

func (u *loanUsecase) GetTransaction(store LoanStore, loanNo, transNo string) ([]model.AccountTransaction, error) {
	rows, err := store.GetAccountTransactions(strings.TrimSpace(loanNo), strings.TrimSpace(transNo))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: loan %s trans %s", ErrTransactionNotFound, loanNo, transNo)
	}
	return rows, nil
}

// GetBankDetails returns the registered accounts; an empty slice means none exist yet.
func (u *loanUsecase) GetBankDetails(store LoanStore, loanAppID int64) ([]model.BankDetail, error) {
	details, err := store.GetBankDetailsByLoanAppID(loanAppID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		details = []model.BankDetail{}
	}
	return details, nil
}

func translateNotFound(loan model.LoanApplication, err error) (model.LoanApplication, error) {
	if errors.Is(err, dao.ErrNotFound) {
		return model.LoanApplication{}, fmt.Errorf("%w: %v", ErrLoanNotFound, err)
	}
	return loan, err
}
