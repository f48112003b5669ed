package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"rhdesk/internal/domain/employee"
	"rhdesk/internal/transport/http/api"
	"rhdesk/internal/transport/http/middleware"
	"rhdesk/internal/transport/http/shared"
)

type Handler struct {
	Service          *employee.Service
	DefaultLeaveDays int
}

func NewHandler(service *employee.Service, defaultLeaveDays int) *Handler {
	return &Handler{Service: service, DefaultLeaveDays: defaultLeaveDays}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequireHR).Post("/", h.handleCreate)
		r.With(middleware.RequireHR).Get("/", h.handleList)
		r.With(middleware.RequireHR).Get("/code/{code}", h.handleGetByCode)
		r.Put("/me/contact", h.handleUpdateContact)
		r.Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequireHR).Put("/{employeeID}", h.handleUpdate)
		r.Put("/{employeeID}/password", h.handleSetPassword)
		r.With(middleware.RequireHR).Delete("/{employeeID}", h.handleDelete)
	})
}

type employeePayload struct {
	Code               string `json:"code"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Position           string `json:"position"`
	Department         string `json:"department"`
	BaseSalary         string `json:"baseSalary"`
	RemainingLeaveDays *int   `json:"remainingLeaveDays"`
	HireDate           string `json:"hireDate"`
	BirthDate          string `json:"birthDate"`
	Password           string `json:"password"`
}

func (p employeePayload) toEmployee(v *shared.Validator, defaultLeaveDays int) employee.Employee {
	v.Required("code", p.Code, "code is required")
	v.Required("firstName", p.FirstName, "first name is required")
	v.Required("lastName", p.LastName, "last name is required")
	v.Required("email", p.Email, "email is required")

	salary := decimal.Zero
	if p.BaseSalary != "" {
		parsed, err := decimal.NewFromString(p.BaseSalary)
		if err != nil {
			v.Add("baseSalary", "must be a decimal number")
		} else {
			salary = parsed
		}
	}

	days := defaultLeaveDays
	if p.RemainingLeaveDays != nil {
		days = *p.RemainingLeaveDays
		if days < 0 {
			v.Add("remainingLeaveDays", "must not be negative")
		}
	}

	var hireDate, birthDate *time.Time
	if p.HireDate != "" {
		if parsed, ok := v.Date("hireDate", p.HireDate); ok {
			hireDate = &parsed
		}
	}
	if p.BirthDate != "" {
		if parsed, ok := v.Date("birthDate", p.BirthDate); ok {
			birthDate = &parsed
		}
	}

	return employee.Employee{
		Code:               p.Code,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Email:              p.Email,
		Phone:              p.Phone,
		Position:           p.Position,
		Department:         p.Department,
		BaseSalary:         salary,
		RemainingLeaveDays: days,
		HireDate:           hireDate,
		BirthDate:          birthDate,
	}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	e := payload.toEmployee(v, h.DefaultLeaveDays)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, err := h.Service.Create(r.Context(), identity, employee.CreateInput{Employee: e, Password: payload.Password})
	if err != nil {
		writeEmployeeError(w, r, err, "failed to create employee")
		return
	}
	api.Created(w, map[string]string{"id": id}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	limit, offset := shared.Pagination(r)
	employees, total, err := h.Service.List(r.Context(), identity, limit, offset)
	if err != nil {
		writeEmployeeError(w, r, err, "failed to list employees")
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	e, err := h.Service.Get(r.Context(), identity, chi.URLParam(r, "employeeID"))
	if err != nil {
		writeEmployeeError(w, r, err, "failed to load employee")
		return
	}
	api.Success(w, e, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetByCode(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	e, err := h.Service.GetByCode(r.Context(), identity, chi.URLParam(r, "code"))
	if err != nil {
		writeEmployeeError(w, r, err, "failed to load employee")
		return
	}
	api.Success(w, e, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	e := payload.toEmployee(v, h.DefaultLeaveDays)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}
	e.ID = chi.URLParam(r, "employeeID")

	if err := h.Service.Update(r.Context(), identity, e); err != nil {
		writeEmployeeError(w, r, err, "failed to update employee")
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if identity.EmployeeID == "" {
		api.Fail(w, http.StatusForbidden, "forbidden", "no employee record for this account", middleware.GetRequestID(r.Context()))
		return
	}

	var contact employee.ContactUpdate
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("email", contact.Email, "email is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	if err := h.Service.UpdateContact(r.Context(), identity, identity.EmployeeID, contact); err != nil {
		writeEmployeeError(w, r, err, "failed to update contact details")
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

type setPasswordRequest struct {
	Password string `json:"password"`
}

func (h *Handler) handleSetPassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload setPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if len(payload.Password) < 8 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "password must be at least 8 characters", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.SetPassword(r.Context(), identity, chi.URLParam(r, "employeeID"), payload.Password); err != nil {
		writeEmployeeError(w, r, err, "failed to set password")
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.Delete(r.Context(), identity, chi.URLParam(r, "employeeID")); err != nil {
		writeEmployeeError(w, r, err, "failed to delete employee")
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func writeEmployeeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, employee.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
	case errors.Is(err, employee.ErrDuplicateCode):
		api.Fail(w, http.StatusConflict, "duplicate_code", "employee code already in use", reqID)
	case errors.Is(err, employee.ErrDuplicateEmail):
		api.Fail(w, http.StatusConflict, "duplicate_email", "employee email already in use", reqID)
	case errors.Is(err, employee.ErrNegativeSalary):
		api.Fail(w, http.StatusBadRequest, "negative_salary", "base salary must not be negative", reqID)
	case errors.Is(err, employee.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "employee_failed", fallback, reqID)
	}
}
