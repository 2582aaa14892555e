package main

import (
	"log/slog"
	"movievault/proj/internal/config"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Http struct {
	log *slog.Logger
	cfg *config.Config
}

func (h *Http) setupLogPerReq(r *http.Request) *slog.Logger {
	return h.log.With(
		"request_id",
		middleware.GetReqID(r.Context()),
		"method",
		r.Method,
		"path",
		r.URL.Path,
	)
}

// JSON writes the payload as-is. The API contract is bit-exact (raw
// arrays, raw formatted movies), so there is no response envelope.
func (h *Http) JSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	render.Status(r, status)
	render.JSON(w, r, data)
}

// Errors writes the list-shaped error body: {"errors": ["...", ...]}.
func (h *Http) Errors(w http.ResponseWriter, r *http.Request, status int, msgs ...string) {
	h.JSON(w, r, status, map[string][]string{"errors": msgs})
}

// ValidationFailed writes the field-map error body produced by the
// validation engine: {"errors": {field: [messages...]}}.
func (h *Http) ValidationFailed(w http.ResponseWriter, r *http.Request, fields map[string][]string) {
	h.JSON(w, r, http.StatusBadRequest, map[string]any{"errors": fields})
}

func (h *Http) BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.Errors(w, r, http.StatusBadRequest, msg)
}

func (h *Http) Unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	h.Errors(w, r, http.StatusUnauthorized, msg)
}

func (h *Http) Forbidden(w http.ResponseWriter, r *http.Request, msg string) {
	h.Errors(w, r, http.StatusForbidden, msg)
}

func (h *Http) NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.Errors(w, r, http.StatusNotFound, msg)
}

func (h *Http) UnprocessableEntity(w http.ResponseWriter, r *http.Request, errors map[string]string) {
	h.JSON(w, r, http.StatusUnprocessableEntity, map[string]any{"errors": errors})
}

func (h *Http) ServerError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := http.StatusInternalServerError
	defaultErrMsg := "Sorry! Can't process your request. Please try again later."
	log := h.setupLogPerReq(r)
	if err != nil {
		log.Error(err.Error())
	}
	if msg == "" {
		msg = defaultErrMsg
	}
	if h.cfg.Debug && err != nil {
		w.WriteHeader(status)
		w.Write([]byte(err.Error() + "\n" + string(debug.Stack())))
		return
	}
	h.Errors(w, r, status, msg)
}
