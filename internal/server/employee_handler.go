package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/goto/roster/core/employee"
	"github.com/goto/roster/core/paginate"
)

// EmployeeService is the surface of the employee domain the handlers need.
type EmployeeService interface {
	List(ctx context.Context, q paginate.Query) (paginate.Paginated, error)
	GetByID(ctx context.Context, id string) (employee.Employee, error)
	Create(ctx context.Context, e employee.Employee) (employee.Employee, error)
	Delete(ctx context.Context, id string) error
}

// EmployeeHandler exposes a REST interface to the employee directory.
type EmployeeHandler struct {
	logger  log.Logger
	service EmployeeService
}

func NewEmployeeHandler(logger log.Logger, service EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		logger:  logger,
		service: service,
	}
}

// List serves the paginated employee collection. Query parameters follow the
// filter DSL; invalid or disallowed parameters degrade silently.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := paginate.NewQueryFromRequest(r)
	res, err := h.service.List(r.Context(), q)
	if err != nil {
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	emp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.As(err, new(employee.InvalidError)) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(employee.NotFoundError)) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var emp employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		writeJSONError(w, http.StatusBadRequest, bodyParserErrorMsg(err))
		return
	}
	if err := emp.Validate(); err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), emp)
	if err != nil {
		if errors.As(err, new(employee.DuplicateError)) {
			writeJSONError(w, http.StatusConflict, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.As(err, new(employee.InvalidError)) {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.As(err, new(employee.NotFoundError)) {
			writeJSONError(w, http.StatusNotFound, err.Error())
			return
		}
		internalServerError(w, h.logger, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
