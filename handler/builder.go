package handler

import (
	"encoding/json"
	"net/http"

	"github.com/radhian/receipt-reconciliation/infra/db"
	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/middlewares"

	"github.com/labstack/gommon/log"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// errorWriter hides internal error text unless debug is set.
type errorWriter struct {
	debug bool
}

func writeJSON(w http.ResponseWriter, code int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("[HTTP] Failed to encode response: %v", err)
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Status: "success", Data: data})
}

func writeFail(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, APIResponse{Status: "error", Message: message})
}

func (e errorWriter) internal(w http.ResponseWriter, message string, err error) {
	log.Errorf("[HTTP] %s: %v", message, err)
	if e.debug {
		message = message + ": " + err.Error()
	}
	writeFail(w, http.StatusInternalServerError, message)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// withSession runs fn in a read-only session on the database picked for this request.
func withSession(r *http.Request, fn func(dao.DaoMethod) error) error {
	conn, name := middlewares.DatabaseFromContext(r.Context())
	if conn == nil {
		return db.ErrUnknownDatabase
	}
	log.Debugf("[HTTP] %s %s on %s", r.Method, r.URL.Path, name)
	return db.ReadOnly(r.Context(), conn, fn)
}
