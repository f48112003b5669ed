package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rhdesk/internal/domain/reports"
	"rhdesk/internal/transport/http/api"
	"rhdesk/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireHR)
		r.Get("/dashboard", h.handleDashboard)
		r.Get("/leave", h.handleLeave)
		r.Get("/payroll", h.handlePayroll)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.Dashboard(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load dashboard", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleLeave(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.LeaveReport(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load leave report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePayroll(w http.ResponseWriter, r *http.Request) {
	out, err := h.Service.PayrollReport(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to load payroll report", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, out, middleware.GetRequestID(r.Context()))
}
