package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/infra/db/model"
	"github.com/radhian/receipt-reconciliation/usecase/loan"

	"github.com/gorilla/mux"
)

type LoanHandler struct {
	Usecase loan.LoanUsecase
	errorWriter
}

func NewLoanHandler(uc loan.LoanUsecase, debug bool) *LoanHandler {
	return &LoanHandler{Usecase: uc, errorWriter: errorWriter{debug: debug}}
}

type bankDetailsResponse struct {
	Exists  bool               `json:"exists"`
	Details []model.BankDetail `json:"details"`
}

func (h *LoanHandler) LoanDetails(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("searchTerm")
	if term == "" {
		writeFail(w, http.StatusBadRequest, "searchTerm is required")
		return
	}

	var app model.LoanApplication
	err := withSession(r, func(d dao.DaoMethod) error {
		var lookupErr error
		app, lookupErr = h.Usecase.SearchLoan(d, term)
		return lookupErr
	})
	switch {
	case errors.Is(err, loan.ErrInvalidSearchTerm):
		writeFail(w, http.StatusBadRequest, "Invalid search term format")
	case errors.Is(err, loan.ErrLoanNotFound):
		writeFail(w, http.StatusNotFound, "Loan not found")
	case err != nil:
		h.internal(w, "Failed to fetch loan details", err)
	default:
		writeSuccess(w, app)
	}
}

func (h *LoanHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var rows []model.AccountTransaction
	err := withSession(r, func(d dao.DaoMethod) error {
		var lookupErr error
		rows, lookupErr = h.Usecase.GetTransaction(d, vars["loanNo"], vars["transNo"])
		return lookupErr
	})
	switch {
	case errors.Is(err, loan.ErrTransactionNotFound):
		writeFail(w, http.StatusNotFound, "Transaction not found")
	case err != nil:
		h.internal(w, "Failed to fetch transaction", err)
	default:
		writeSuccess(w, rows)
	}
}

func (h *LoanHandler) BankDetails(w http.ResponseWriter, r *http.Request) {
	loanAppID, err := strconv.ParseInt(mux.Vars(r)["loanAppId"], 10, 64)
	if err != nil || loanAppID <= 0 {
		writeFail(w, http.StatusBadRequest, "loanAppId must be a valid integer")
		return
	}

	var details []model.BankDetail
	err = withSession(r, func(d dao.DaoMethod) error {
		var lookupErr error
		details, lookupErr = h.Usecase.GetBankDetails(d, loanAppID)
		return lookupErr
	})
	if err != nil {
		h.internal(w, "Failed to fetch bank details", err)
		return
	}
	writeSuccess(w, bankDetailsResponse{Exists: len(details) > 0, Details: details})
}
