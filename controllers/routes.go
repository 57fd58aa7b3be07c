package controllers

import (
	"github.com/radhian/receipt-reconciliation/handler"
	"github.com/radhian/receipt-reconciliation/usecase/calculator"
	"github.com/radhian/receipt-reconciliation/usecase/fixscript"
	"github.com/radhian/receipt-reconciliation/usecase/loan"
	reconciliationUsecase "github.com/radhian/receipt-reconciliation/usecase/reconciliation"

	"github.com/gorilla/mux"
)

type handlers struct {
	reconciliation *handler.ReconciliationHandler
	loan           *handler.LoanHandler
	fixScript      *handler.FixScriptHandler
	calculator     *handler.CalculatorHandler
	system         *handler.SystemHandler
}

func (a *App) newHandlers() handlers {
	debug := !a.Config.IsProduction()
	loanUc := loan.NewLoanUsecase()
	fixScriptUc := fixscript.NewFixScriptUsecase("")

	return handlers{
		reconciliation: handler.NewReconciliationHandler(reconciliationUsecase.NewReconciliationUsecase(), fixScriptUc, a.Locker, debug),
		loan:           handler.NewLoanHandler(loanUc, debug),
		fixScript:      handler.NewFixScriptHandler(fixScriptUc, loanUc, debug),
		calculator:     handler.NewCalculatorHandler(calculator.NewCalculatorUsecase()),
		system:         handler.NewSystemHandler(a.Registry, debug),
	}
}

func registerRoutes(router *mux.Router, h handlers) {
	RegisterReconciliationRoutes(router, h.reconciliation)
	RegisterLoanRoutes(router, h.loan)
	RegisterFixScriptRoutes(router, h.fixScript)
	RegisterCalculatorRoutes(router, h.calculator)
	RegisterSystemRoutes(router, h.system)
}

func RegisterReconciliationRoutes(router *mux.Router, h *handler.ReconciliationHandler) {
	router.HandleFunc("/check-receipt", h.CheckReceipt).Methods("POST")
	router.HandleFunc("/check-receipt/stream", h.CheckReceiptStream).Methods("POST")
	router.HandleFunc("/check-receipt/fix-script", h.ReceiptFixScript).Methods("POST")
	router.HandleFunc("/check-receipt-step", h.CheckReceiptStep).Methods("POST")
}

func RegisterLoanRoutes(router *mux.Router, h *handler.LoanHandler) {
	router.HandleFunc("/loan-details", h.LoanDetails).Methods("GET")
	router.HandleFunc("/transaction/{loanNo}/{transNo}", h.Transaction).Methods("GET")
	router.HandleFunc("/bank-details/{loanAppId}", h.BankDetails).Methods("GET")
}

func RegisterFixScriptRoutes(router *mux.Router, h *handler.FixScriptHandler) {
	router.HandleFunc("/fix-script/scheme-change", h.SchemeChange).Methods("POST")
	router.HandleFunc("/fix-script/bank-details", h.BankDetail).Methods("POST")
	router.HandleFunc("/fix-script/transaction-cancel", h.TransactionCancel).Methods("POST")
	router.HandleFunc("/fix-script/transaction-generate", h.TransactionGenerate).Methods("POST")
}

func RegisterCalculatorRoutes(router *mux.Router, h *handler.CalculatorHandler) {
	router.HandleFunc("/calculator/gst", h.GST).Methods("POST")
	router.HandleFunc("/calculator/emi", h.EMI).Methods("POST")
	router.HandleFunc("/calculator/deduction", h.Deduction).Methods("POST")
}

func RegisterSystemRoutes(router *mux.Router, h *handler.SystemHandler) {
	router.HandleFunc("/test", h.Test).Methods("GET")
	router.HandleFunc("/current-db", h.CurrentDB).Methods("GET")
	router.HandleFunc("/databases", h.Databases).Methods("GET")
}
