package handler

import (
	"net/http"

	"github.com/radhian/receipt-reconciliation/infra/db"
	"github.com/radhian/receipt-reconciliation/infra/db/dao"
	"github.com/radhian/receipt-reconciliation/middlewares"
)

type SystemHandler struct {
	Registry *db.Registry
	errorWriter
}

func NewSystemHandler(registry *db.Registry, debug bool) *SystemHandler {
	return &SystemHandler{Registry: registry, errorWriter: errorWriter{debug: debug}}
}

type databaseInfo struct {
	Database string `json:"database"`
}

type databaseList struct {
	Default   string   `json:"default"`
	Databases []string `json:"databases"`
}

// Test pings the selected database.
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request) {
	_, name := middlewares.DatabaseFromContext(r.Context())
	err := withSession(r, func(d dao.DaoMethod) error {
		return d.Ping()
	})
	if err != nil {
		h.internal(w, "Database connection failed", err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Status: "success", Message: "Database connection successful", Data: databaseInfo{Database: name}})
}

func (h *SystemHandler) CurrentDB(w http.ResponseWriter, r *http.Request) {
	_, name := middlewares.DatabaseFromContext(r.Context())
	writeSuccess(w, databaseInfo{Database: name})
}

func (h *SystemHandler) Databases(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, databaseList{Default: h.Registry.DefaultName(), Databases: h.Registry.Names()})
}
