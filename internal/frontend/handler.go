// Package frontend serves the username form and renders lookup results.
package frontend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/odyssey-erp/usercheck/internal/lookup"
	"github.com/odyssey-erp/usercheck/internal/platform/httpx"
	"github.com/odyssey-erp/usercheck/internal/view"
)

const (
	pageTemplate   = "pages/index.html"
	pageTitle      = "User check"
	userField      = "user"
	defaultTimeout = 5 * time.Second
)

// Handler wires the form endpoints.
type Handler struct {
	logger    *slog.Logger
	lookup    lookup.Lookup
	templates *view.Engine
	timeout   time.Duration
}

// NewHandler constructs a Handler. A non-positive timeout falls back to 5s.
func NewHandler(logger *slog.Logger, l lookup.Lookup, templates *view.Engine, timeout time.Duration) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Handler{
		logger:    logger,
		lookup:    l,
		templates: templates,
		timeout:   timeout,
	}
}

// MountRoutes registers the form routes on r.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.showForm)
	r.Post("/", h.handleLookup)
}

func (h *Handler) showForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, DefaultState())
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	username := r.PostFormValue(userField)
	if username == "" {
		h.render(w, r, http.StatusOK, DefaultState())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res, err := h.lookup.Lookup(ctx, username)
	if err != nil {
		status := httpx.StatusFor(err)
		h.logger.Error("lookup user",
			slog.String("user", username),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Int("status", status),
			slog.Any("error", err),
		)
		state := DefaultState()
		state.Error = failureMessage(err)
		h.render(w, r, status, state)
		return
	}

	h.render(w, r, http.StatusOK, FormState{
		Check:  true,
		Name:   username,
		Fields: res,
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, state FormState) {
	data := view.TemplateData{
		Title:       pageTitle,
		CurrentPath: r.URL.Path,
		Data:        state,
	}
	if err := h.templates.Render(w, status, pageTemplate, data); err != nil {
		h.logger.Error("render form", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "The user directory took too long to answer. Please try again."
	case errors.Is(err, lookup.ErrUnavailable):
		return "The user directory is unavailable right now. Please try again later."
	default:
		return "The user could not be looked up."
	}
}
