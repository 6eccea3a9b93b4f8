package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/goto/roster/core/employee"
	"github.com/goto/roster/pkg/statsd"
)

const shutdownTimeout = 10 * time.Second

type Config struct {
	Host string `mapstructure:"host" default:""`
	Port int    `mapstructure:"port" default:"8080"`
}

func (cfg Config) addr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

type Dependencies struct {
	Logger          log.Logger
	EmployeeService *employee.Service
	StatsdReporter  *statsd.Reporter
}

// Serve runs the HTTP server until ctx is canceled, then drains in-flight
// requests.
func Serve(ctx context.Context, cfg Config, deps *Dependencies) error {
	router := mux.NewRouter()
	if deps.StatsdReporter != nil {
		router.Use(monitoringMiddleware(deps.StatsdReporter))
	}
	registerRoutes(router, deps)

	srv := &http.Server{
		Addr:    cfg.addr(),
		Handler: router,
	}

	serveErr := make(chan error, 1)
	go func() {
		deps.Logger.Info("server starting", "addr", cfg.addr())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		deps.Logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func registerRoutes(router *mux.Router, deps *Dependencies) {
	employeeHandler := NewEmployeeHandler(deps.Logger, deps.EmployeeService)

	router.PathPrefix("/ping").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "pong")
	})

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Methods(http.MethodGet).Path("/employees").HandlerFunc(employeeHandler.List)
	v1.Methods(http.MethodPost).Path("/employees").HandlerFunc(employeeHandler.Create)
	v1.Methods(http.MethodGet).Path("/employees/{id}").HandlerFunc(employeeHandler.GetByID)
	v1.Methods(http.MethodDelete).Path("/employees/{id}").HandlerFunc(employeeHandler.Delete)
}
