package handler

import (
	"net/http"

	"github.com/radhian/receipt-reconciliation/entity"
	"github.com/radhian/receipt-reconciliation/usecase/calculator"
)

type CalculatorHandler struct {
	Usecase calculator.CalculatorUsecase
}

func NewCalculatorHandler(uc calculator.CalculatorUsecase) *CalculatorHandler {
	return &CalculatorHandler{Usecase: uc}
}

func respondCalc(w http.ResponseWriter, data interface{}, err error) {
	if err != nil {
		writeFail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeSuccess(w, data)
}

func (h *CalculatorHandler) GST(w http.ResponseWriter, r *http.Request) {
	var req entity.GSTRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.Usecase.GST(req)
	respondCalc(w, res, err)
}

func (h *CalculatorHandler) EMI(w http.ResponseWriter, r *http.Request) {
	var req entity.EMIRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.Usecase.EMI(req)
	respondCalc(w, res, err)
}

func (h *CalculatorHandler) Deduction(w http.ResponseWriter, r *http.Request) {
	var req entity.DeductionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.Usecase.Deduction(req)
	respondCalc(w, res, err)
}
