package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/report"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Weekly(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	AllUsers(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// queryInt reads an optional integer query parameter, zero when absent.
func queryInt(query url.Values, key string) (int, bool) {
	raw := query.Get(key)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Weekly implements ReportHandler.
func (h *ReportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	week, ok := queryInt(query, "week")
	if !ok {
		response.BadRequest(w, "week must be a number", nil)
		return
	}
	year, ok := queryInt(query, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	result, err := h.reportService.Weekly(r.Context(), actor, query.Get("user_id"), week, year)
	if err != nil {
		slog.Error("Weekly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	month, ok := queryInt(query, "month")
	if !ok {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	year, ok := queryInt(query, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	result, err := h.reportService.Monthly(r.Context(), actor, query.Get("user_id"), month, year)
	if err != nil {
		slog.Error("Monthly report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AllUsers implements ReportHandler.
func (h *ReportHandlerImpl) AllUsers(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	reportType := query.Get("type")
	if reportType == "" {
		reportType = report.TypeWeekly
	}

	week, ok := queryInt(query, "week")
	if !ok {
		response.BadRequest(w, "week must be a number", nil)
		return
	}
	month, ok := queryInt(query, "month")
	if !ok {
		response.BadRequest(w, "month must be a number", nil)
		return
	}
	year, ok := queryInt(query, "year")
	if !ok {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	result, err := h.reportService.AllUsers(r.Context(), actor, reportType, week, month, year)
	if err != nil {
		slog.Error("All users report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
