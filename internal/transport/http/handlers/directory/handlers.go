package directoryhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"empdir/internal/domain/auth"
	"empdir/internal/domain/directory"
	"empdir/internal/transport/http/api"
	"empdir/internal/transport/http/middleware"
	"empdir/internal/transport/http/shared"
)

type Handler struct {
	Service         *directory.Service
	Policy          *auth.Policy
	AllowSelfSignup bool
}

func NewHandler(service *directory.Service, policy *auth.Policy, allowSelfSignup bool) *Handler {
	return &Handler{Service: service, Policy: policy, AllowSelfSignup: allowSelfSignup}
}

// RegisterRoutes wires the directory operations. Create is anonymous
// only when self-signup is enabled; otherwise it sits behind the
// authentication gate and the superadmin rule, like every other
// privileged operation.
func (h *Handler) RegisterRoutes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	if h.AllowSelfSignup {
		r.Post("/create", h.handleCreate)
	} else {
		r.With(authenticate).Post("/create", h.handleCreate)
	}

	r.Group(func(pr chi.Router) {
		pr.Use(authenticate)
		pr.Get("/allemployees", h.handleList)
		pr.Get("/employee/{id}", h.handleGet)
		pr.Put("/updateemployee/{id}", h.handleUpdate)
		pr.Delete("/deletemployee/{id}", h.handleDelete)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.AllowSelfSignup {
		identity, ok := middleware.GetIdentity(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthenticated", "authenticate using a valid token", middleware.GetRequestID(r.Context()))
			return
		}
		if h.failOnPolicy(w, r, h.Policy.Authorize(r.Context(), identity.EmployeeID, "", auth.OpCreate)) {
			return
		}
	}

	var payload directory.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.MinLen("name", payload.Name, 3, "enter a valid name")
	v.Email("email", payload.Email, "enter a valid email")
	v.MinLen("password", payload.Password, 5, "password must be at least 5 characters")
	v.Required("role", payload.Role, "role is required")
	v.Required("phone", payload.Phone, "phone is required")
	v.Required("photo", payload.Photo, "photo is required")
	v.Required("address", payload.Address, "address is required")
	v.Required("fatherName", payload.FatherName, "father name is required")
	v.Required("emergencyNumber", payload.EmergencyNumber, "emergency number is required")
	v.Required("emergencyContactName", payload.EmergencyContactName, "emergency contact name is required")
	v.Required("relationWithEmergencyContact", payload.EmergencyRelation, "relation with emergency contact is required")
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return
	}

	id, token, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		if errors.Is(err, directory.ErrEmailTaken) {
			api.Fail(w, http.StatusConflict, "email_taken", "employee with this email already exists", middleware.GetRequestID(r.Context()))
			return
		}
		slog.Error("employee create failed", "err", err, "employeeId", id, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error occurred", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, map[string]string{"id": id, "token": token}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthenticated", "authenticate using a valid token", middleware.GetRequestID(r.Context()))
		return
	}
	if h.failOnPolicy(w, r, h.Policy.Authorize(r.Context(), identity.EmployeeID, "", auth.OpList)) {
		return
	}

	employees, err := h.Service.List(r.Context())
	if err != nil {
		slog.Error("employee list failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error occurred", middleware.GetRequestID(r.Context()))
		return
	}
	if employees == nil {
		employees = []directory.Employee{}
	}

	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthenticated", "authenticate using a valid token", middleware.GetRequestID(r.Context()))
		return
	}
	employeeID := chi.URLParam(r, "id")
	if h.failOnPolicy(w, r, h.Policy.Authorize(r.Context(), identity.EmployeeID, employeeID, auth.OpRead)) {
		return
	}

	emp, err := h.Service.Get(r.Context(), employeeID)
	if err != nil {
		h.failOnStore(w, r, err)
		return
	}

	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthenticated", "authenticate using a valid token", middleware.GetRequestID(r.Context()))
		return
	}
	employeeID := chi.URLParam(r, "id")
	if h.failOnPolicy(w, r, h.Policy.Authorize(r.Context(), identity.EmployeeID, employeeID, auth.OpUpdate)) {
		return
	}

	var payload directory.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.Service.Update(r.Context(), employeeID, payload)
	if err != nil {
		if errors.Is(err, directory.ErrEmailTaken) {
			api.Fail(w, http.StatusConflict, "email_taken", "employee with this email already exists", middleware.GetRequestID(r.Context()))
			return
		}
		h.failOnStore(w, r, err)
		return
	}

	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthenticated", "authenticate using a valid token", middleware.GetRequestID(r.Context()))
		return
	}
	employeeID := chi.URLParam(r, "id")
	if h.failOnPolicy(w, r, h.Policy.Authorize(r.Context(), identity.EmployeeID, employeeID, auth.OpDelete)) {
		return
	}

	emp, err := h.Service.Delete(r.Context(), employeeID)
	if err != nil {
		h.failOnStore(w, r, err)
		return
	}

	api.Success(w, map[string]any{
		"message":  "employee has been deleted",
		"employee": emp,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failOnPolicy(w http.ResponseWriter, r *http.Request, err error) bool {
	if err == nil {
		return false
	}
	reqID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, auth.ErrIdentityNotFound):
		api.Fail(w, http.StatusNotFound, "identity_not_found", "not found", reqID)
	case errors.Is(err, auth.ErrSuperadminRequired):
		api.Fail(w, http.StatusForbidden, "forbidden", "superadmin authorization required", reqID)
	case errors.Is(err, auth.ErrForbidden):
		api.Fail(w, http.StatusForbidden, "forbidden", "not permitted", reqID)
	default:
		slog.Error("authorization check failed", "err", err, "requestId", reqID)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error occurred", reqID)
	}
	return true
}

func (h *Handler) failOnStore(w http.ResponseWriter, r *http.Request, err error) {
	reqID := middleware.GetRequestID(r.Context())
	if errors.Is(err, directory.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "not found", reqID)
		return
	}
	slog.Error("directory operation failed", "err", err, "requestId", reqID)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error occurred", reqID)
}
