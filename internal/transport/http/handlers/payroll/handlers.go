package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"rhdesk/internal/domain/payroll"
	"rhdesk/internal/transport/http/api"
	"rhdesk/internal/transport/http/middleware"
	"rhdesk/internal/transport/http/shared"
)

type Handler struct {
	Service    *payroll.Service
	PayslipDir string
}

func NewHandler(service *payroll.Service, payslipDir string) *Handler {
	return &Handler{Service: service, PayslipDir: payslipDir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payslips", func(r chi.Router) {
		r.With(middleware.RequireHR).Post("/", h.handleGenerate)
		r.Get("/", h.handleList)
		r.Get("/{payslipID}", h.handleGet)
		r.With(middleware.RequireHR).Put("/{payslipID}", h.handleEdit)
		r.With(middleware.RequireHR).Delete("/{payslipID}", h.handleDelete)
		r.Get("/{payslipID}/pdf", h.handleDownloadPDF)
	})
}

type generateRequest struct {
	EmployeeID string `json:"employeeId"`
	Period     string `json:"period"`
	Bonus      string `json:"bonus"`
	Deduction  string `json:"deduction"`
}

func parseAmount(v *shared.Validator, field, raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		v.Add(field, "must be a decimal number")
		return decimal.Zero
	}
	return parsed
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload generateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Required("period", payload.Period, "period is required")
	bonus := parseAmount(v, "bonus", payload.Bonus)
	deduction := parseAmount(v, "deduction", payload.Deduction)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	slip, err := h.Service.Generate(r.Context(), identity, payload.EmployeeID, payload.Period, bonus, deduction)
	if err != nil {
		writePayrollError(w, r, err, "failed to generate payslip")
		return
	}
	api.Created(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	filter := payroll.PayslipFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Period:     r.URL.Query().Get("period"),
	}
	limit, offset := shared.Pagination(r)
	slips, total, err := h.Service.List(r.Context(), identity, filter, limit, offset)
	if err != nil {
		writePayrollError(w, r, err, "failed to list payslips")
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(total))
	api.Success(w, slips, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	slip, err := h.Service.Get(r.Context(), identity, chi.URLParam(r, "payslipID"))
	if err != nil {
		writePayrollError(w, r, err, "failed to load payslip")
		return
	}
	api.Success(w, slip, middleware.GetRequestID(r.Context()))
}

type editRequest struct {
	Bonus     string `json:"bonus"`
	Deduction string `json:"deduction"`
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload editRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	bonus := parseAmount(v, "bonus", payload.Bonus)
	deduction := parseAmount(v, "deduction", payload.Deduction)
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	slip, err := h.Service.Edit(r.Context(), identity, chi.URLParam(r, "payslipID"), bonus, deduction)
	if err != nil {
		writePayrollError(w, r, err, "failed to edit payslip")
		return
	}
	api.Success(w, slip, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.Delete(r.Context(), identity, chi.URLParam(r, "payslipID")); err != nil {
		writePayrollError(w, r, err, "failed to delete payslip")
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	path, err := h.Service.RenderPDF(r.Context(), identity, chi.URLParam(r, "payslipID"), h.PayslipDir)
	if err != nil {
		writePayrollError(w, r, err, "failed to render payslip pdf")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
	http.ServeFile(w, r, path)
}

func writePayrollError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, payroll.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "payslip not found", reqID)
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
	case errors.Is(err, payroll.ErrOverDeduction):
		api.Fail(w, http.StatusBadRequest, "over_deduction", "deductions exceed gross salary plus bonus", reqID)
	case errors.Is(err, payroll.ErrNegativeAmount):
		api.Fail(w, http.StatusBadRequest, "negative_amount", "bonus and deduction must not be negative", reqID)
	case errors.Is(err, payroll.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", reqID)
	default:
		api.Fail(w, http.StatusInternalServerError, "payroll_failed", fallback, reqID)
	}
}
