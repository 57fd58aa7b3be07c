package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/radhian/receipt-reconciliation/config"
	"github.com/radhian/receipt-reconciliation/consts"
	"github.com/radhian/receipt-reconciliation/infra/db"
	"github.com/radhian/receipt-reconciliation/infra/locker"
	"github.com/radhian/receipt-reconciliation/middlewares"

	"github.com/gorilla/mux"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config   config.Config
	Registry *db.Registry
	Router   *mux.Router
	Locker   *locker.Locker
}

// Initialize opens every allowed database and builds the router.
func (a *App) Initialize(cfg config.Config) error {
	if len(cfg.AllowedDatabases) == 0 {
		return errors.New("no database configured: set DB_DATABASE or ALLOWED_DATABASES")
	}

	defaultName := cfg.DB.Database
	if defaultName == "" {
		defaultName = cfg.AllowedDatabases[0]
	}
	registry := db.NewRegistry(defaultName)
	for _, name := range cfg.AllowedDatabases {
		conn, err := db.Open(cfg.DB, name)
		if err != nil {
			registry.Close()
			return err
		}
		registry.Register(name, conn)
	}
	if _, _, err := registry.Get(""); err != nil {
		registry.Close()
		return fmt.Errorf("default database %q is not in ALLOWED_DATABASES: %w", defaultName, err)
	}

	a.InitializeWithRegistry(cfg, registry)
	return nil
}

// InitializeWithRegistry builds the router on already opened databases.
func (a *App) InitializeWithRegistry(cfg config.Config, registry *db.Registry) {
	a.Config = cfg
	a.Registry = registry
	a.Locker = locker.New()
	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.RequestID)
	a.Router.Use(middlewares.AccessLog)
	a.Router.Use(middlewares.SetContentTypeMiddleware)
	a.Router.Use(middlewares.APIKeyAuth(a.Config.APIKey, "/api/test"))
	a.Router.Use(middlewares.DatabaseSelector(a.Registry))

	api := a.Router.PathPrefix("/api").Subrouter()
	registerRoutes(api, a.newHandlers())
}

// RunServer serves until ctx is cancelled, then drains in-flight requests.
func (a *App) RunServer(ctx context.Context) error {
	port := a.Config.Port
	if port == "" {
		port = consts.DefaultPort
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      a.Router,
		ReadTimeout:  consts.DefaultReadTimeoutS * time.Second,
		WriteTimeout: consts.DefaultWriteTimeoutS * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("[Server] Starting on port %v (databases: %v)", port, a.Registry.Names())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		a.Registry.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("[Server] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	a.Registry.Close()
	return err
}
