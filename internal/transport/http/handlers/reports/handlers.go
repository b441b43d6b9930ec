package reportshandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"empdir/internal/domain/auth"
	"empdir/internal/domain/reports"
	"empdir/internal/transport/http/api"
	"empdir/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
	Policy  *auth.Policy
}

func NewHandler(service *reports.Service, policy *auth.Policy) *Handler {
	return &Handler{Service: service, Policy: policy}
}

func (h *Handler) RegisterRoutes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.With(authenticate).Get("/reports/directory.pdf", h.handleDirectoryPDF)
}

func (h *Handler) handleDirectoryPDF(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthenticated", "authenticate using a valid token", middleware.GetRequestID(r.Context()))
		return
	}
	if err := h.Policy.Authorize(r.Context(), identity.EmployeeID, "", auth.OpExport); err != nil {
		switch {
		case errors.Is(err, auth.ErrIdentityNotFound):
			api.Fail(w, http.StatusNotFound, "identity_not_found", "not found", middleware.GetRequestID(r.Context()))
		case errors.Is(err, auth.ErrSuperadminRequired) || errors.Is(err, auth.ErrForbidden):
			api.Fail(w, http.StatusForbidden, "forbidden", "superadmin authorization required", middleware.GetRequestID(r.Context()))
		default:
			slog.Error("authorization check failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
			api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error occurred", middleware.GetRequestID(r.Context()))
		}
		return
	}

	pdfBytes, err := h.Service.DirectoryPDF(r.Context())
	if err != nil {
		slog.Error("directory pdf failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error occurred", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="directory.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
