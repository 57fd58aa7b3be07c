package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/infra/locker"
	"github.com/radhian/receipt-reconciliation/middlewares"
	"github.com/radhian/receipt-reconciliation/usecase/fixscript"
	usecase "github.com/radhian/receipt-reconciliation/usecase/reconciliation"

	"github.com/labstack/gommon/log"
)

type ReconciliationHandler struct {
	Usecase   usecase.ReconciliationUsecase
	FixScript fixscript.FixScriptUsecase
	Locker    *locker.Locker
	errorWriter
}

func NewReconciliationHandler(uc usecase.ReconciliationUsecase, fs fixscript.FixScriptUsecase, l *locker.Locker, debug bool) *ReconciliationHandler {
	if l == nil {
		l = locker.New()
	}
	return &ReconciliationHandler{Usecase: uc, FixScript: fs, Locker: l, errorWriter: errorWriter{debug: debug}}
}

func validationMessage(err error) string {
	if errors.Is(err, usecase.ErrMissingFields) {
		return "Missing required fields"
	}
	return err.Error()
}

// parseQuery decodes and validates a check request, answering 400 itself on failure.
func parseQuery(w http.ResponseWriter, r *http.Request) (entity.CheckReceiptRequest, entity.ReceiptQuery, bool) {
	var req entity.CheckReceiptRequest
	if !decodeBody(w, r, &req) {
		return req, entity.ReceiptQuery{}, false
	}
	query, err := usecase.ParseReceiptQuery(req)
	if err != nil {
		writeFail(w, http.StatusBadRequest, validationMessage(err))
		return req, entity.ReceiptQuery{}, false
	}
	return req, query, true
}

// acquire guards against the same receipt being checked twice at once on one database. Full runs
// share one key; a single step adds its title so it only collides with itself.
func (h *ReconciliationHandler) acquire(w http.ResponseWriter, r *http.Request, q entity.ReceiptQuery, step ...string) (func(), bool) {
	_, dbName := middlewares.DatabaseFromContext(r.Context())
	parts := []string{dbName, q.LoanNo, q.ReceiptNo, q.Amount.StringFixed(2), q.Date.Format(consts.DateLayout)}
	key := strings.Join(append(parts, step...), "|")
	if !h.Locker.TryLock(key) {
		writeFail(w, http.StatusConflict, "An identical check is already running")
		return nil, false
	}
	return func() { h.Locker.Unlock(key) }, true
}

func (h *ReconciliationHandler) CheckReceipt(w http.ResponseWriter, r *http.Request) {
	_, query, ok := parseQuery(w, r)
	if !ok {
		return
	}
	release, ok := h.acquire(w, r, query)
	if !ok {
		return
	}
	defer release()

	var result entity.ReconciliationResult
	err := withSession(r, func(d dao.DaoMethod) error {
		result = h.Usecase.Reconcile(r.Context(), d, query, nil)
		return nil
	})
	if err != nil {
		h.internal(w, "Failed to check receipt", err)
		return
	}
	writeSuccess(w, result)
}

// CheckReceiptStream writes one NDJSON event per evaluated step followed by the final result.
func (h *ReconciliationHandler) CheckReceiptStream(w http.ResponseWriter, r *http.Request) {
	_, query, ok := parseQuery(w, r)
	if !ok {
		return
	}
	release, ok := h.acquire(w, r, query)
	if !ok {
		return
	}
	defer release()

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.WriteHeader(http.StatusOK)
	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)
	emit := func(ev entity.StepEvent) {
		if err := enc.Encode(ev); err != nil {
			log.Warnf("[ReceiptCheck] Stream write failed: %v", err)
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}

	var result entity.ReconciliationResult
	err := withSession(r, func(d dao.DaoMethod) error {
		result = h.Usecase.Reconcile(r.Context(), d, query, func(step entity.StepResult) {
			emit(entity.StepEvent{Type: "step", Step: &step})
		})
		return nil
	})
	if err != nil {
		log.Errorf("[ReceiptCheck] Stream session failed: %v", err)
		result = entity.ReconciliationResult{
			OverallStatus: consts.OutcomeError,
			Message:       consts.OutcomeError.Message(),
			Steps:         []entity.StepResult{},
		}
	}
	emit(entity.StepEvent{Type: "result", Result: &result})
}

func (h *ReconciliationHandler) CheckReceiptStep(w http.ResponseWriter, r *http.Request) {
	var req entity.CheckReceiptRequest
	if !decodeBody(w, r, &req) {
		return
	}
	kind, err := consts.ParseCheckKind(strings.TrimSpace(req.Step))
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid step provided")
		return
	}
	query, err := usecase.ParseReceiptQuery(req)
	if err != nil {
		writeFail(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	release, ok := h.acquire(w, r, query, kind.Title())
	if !ok {
		return
	}
	defer release()

	var step entity.StepResult
	err = withSession(r, func(d dao.DaoMethod) error {
		var runErr error
		step, runErr = h.Usecase.RunStep(r.Context(), d, req, kind)
		return runErr
	})
	if err != nil {
		h.internal(w, "Failed to run check", err)
		return
	}
	writeSuccess(w, step)
}

// ReceiptFixScript checks the receipt and drafts the SQL that would resolve the finding.
func (h *ReconciliationHandler) ReceiptFixScript(w http.ResponseWriter, r *http.Request) {
	_, query, ok := parseQuery(w, r)
	if !ok {
		return
	}
	release, ok := h.acquire(w, r, query)
	if !ok {
		return
	}
	defer release()

	var result entity.ReconciliationResult
	err := withSession(r, func(d dao.DaoMethod) error {
		result = h.Usecase.Reconcile(r.Context(), d, query, nil)
		return nil
	})
	if err != nil {
		h.internal(w, "Failed to check receipt", err)
		return
	}

	script, err := h.FixScript.ReceiptFix(query, result)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, APIResponse{
			Status:  "error",
			Message: err.Error(),
			Data:    entity.ReceiptFixResponse{Check: result},
		})
		return
	}
	writeSuccess(w, entity.ReceiptFixResponse{Check: result, Script: script})
}
