package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-expense-vault/internal/app"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/service"
	"github.com/MKhiriev/go-expense-vault/internal/utils"
	"github.com/MKhiriev/go-expense-vault/models"
)

const reportRangeParam = "range"

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.status.Status(), http.StatusOK)
}

func (h *Handler) getRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.ledger.Records()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []models.ExpenseRecord{}
	}
	h.writeJSON(w, r, records, http.StatusOK)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	reportRange, err := models.ParseReportRange(r.URL.Query().Get(reportRangeParam))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidReportRange, err))
		return
	}

	report, err := h.reports.Build(r.Context(), reportRange, h.now())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, report, http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", "*Handler.writeError").Int("status", status).Msg("request rejected")
	}

	var message string
	switch status {
	case http.StatusBadRequest:
		message = fmt.Sprintf("%s: %v", app.MsgInvalidDataProvided, err)
	case http.StatusInternalServerError:
		message = app.MsgInternalServerError
	default:
		message = service.Notify(err)
	}
	h.writeJSON(w, r, errorResponse{Error: message}, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("failed to write response")
	}
}
