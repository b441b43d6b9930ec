package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"empdir/internal/domain/directory"
	"empdir/internal/requestctx"
	"empdir/internal/transport/http/api"
	"empdir/internal/transport/http/shared"
)

type Handler struct {
	Service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{Service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	v := shared.NewValidator()
	v.Email("email", payload.Email, "enter a valid email")
	v.Required("password", payload.Password, "password cannot be blank")
	if v.Reject(w, requestctx.GetRequestID(r.Context())) {
		return
	}

	token, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, directory.ErrInvalidCredentials) {
			api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "please try to login with correct credentials", requestctx.GetRequestID(r.Context()))
			return
		}
		slog.Error("login failed", "err", err, "requestId", requestctx.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal server error occurred", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]string{"token": token}, requestctx.GetRequestID(r.Context()))
}
