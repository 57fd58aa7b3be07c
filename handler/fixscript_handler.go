package handler

import (
	"errors"
	"net/http"

	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/infra/db/model"
	"github.com/radhian/receipt-reconciliation/usecase/fixscript"
	"github.com/radhian/receipt-reconciliation/usecase/loan"
)

type FixScriptHandler struct {
	Usecase fixscript.FixScriptUsecase
	Loan    loan.LoanUsecase
	errorWriter
}

func NewFixScriptHandler(uc fixscript.FixScriptUsecase, loanUc loan.LoanUsecase, debug bool) *FixScriptHandler {
	return &FixScriptHandler{Usecase: uc, Loan: loanUc, errorWriter: errorWriter{debug: debug}}
}

func (h *FixScriptHandler) respond(w http.ResponseWriter, script entity.FixScript, err error) {
	if err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeSuccess(w, script)
}

func (h *FixScriptHandler) SchemeChange(w http.ResponseWriter, r *http.Request) {
	var req entity.SchemeChangeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	script, err := h.Usecase.SchemeChange(req)
	h.respond(w, script, err)
}

func (h *FixScriptHandler) BankDetail(w http.ResponseWriter, r *http.Request) {
	var req entity.BankDetailRequest
	if !decodeBody(w, r, &req) {
		return
	}
	script, err := h.Usecase.BankDetail(req)
	h.respond(w, script, err)
}

func (h *FixScriptHandler) TransactionGenerate(w http.ResponseWriter, r *http.Request) {
	var req entity.TransactionGenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	script, err := h.Usecase.TransactionGenerate(req)
	h.respond(w, script, err)
}

// TransactionCancel reads the ledger rows of a transaction and drafts their reversal.
func (h *FixScriptHandler) TransactionCancel(w http.ResponseWriter, r *http.Request) {
	var req entity.TransactionCancelRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.LoanNo == "" || req.TransNo == "" {
		writeFail(w, http.StatusBadRequest, "loanNo and transNo are required")
		return
	}

	var rows []model.AccountTransaction
	err := withSession(r, func(d dao.DaoMethod) error {
		var lookupErr error
		rows, lookupErr = h.Loan.GetTransaction(d, req.LoanNo, req.TransNo)
		return lookupErr
	})
	switch {
	case errors.Is(err, loan.ErrTransactionNotFound):
		writeFail(w, http.StatusNotFound, "Transaction not found")
		return
	case err != nil:
		h.internal(w, "Failed to fetch transaction", err)
		return
	}

	script, err := h.Usecase.TransactionCancel(req.LoanNo, req.TransNo, rows)
	h.respond(w, script, err)
}
