// Package web exposes the form actions as HTTP form posts. Successful
// submissions answer with a 303 redirect; failures answer with the form
// state as JSON.
package web

import (
	"log/slog"
	"net/http"

	"github.com/mmynk/acme-dashboard/internal/actions"
	"github.com/mmynk/acme-dashboard/internal/auth"
	ierr "github.com/mmynk/acme-dashboard/internal/errors"
	"github.com/mmynk/acme-dashboard/internal/middleware"
)

// LoginPath is where unauthenticated dashboard requests are sent.
const LoginPath = "/login"

// Handler serves the form posts.
type Handler struct {
	actions       *actions.Actions
	tokens        *auth.JWTManager
	secureCookies bool
	logger        *slog.Logger
}

func NewHandler(a *actions.Actions, tokens *auth.JWTManager, secureCookies bool, logger *slog.Logger) *Handler {
	return &Handler{
		actions:       a,
		tokens:        tokens,
		secureCookies: secureCookies,
		logger:        logger,
	}
}

// Register mounts the routes on mux. Invoice routes require a session.
func (h *Handler) Register(mux *http.ServeMux) {
	protected := middleware.RequireSession(h.tokens, LoginPath)

	mux.HandleFunc("POST /login", h.login)
	mux.HandleFunc("POST /logout", h.logout)
	mux.Handle("POST /dashboard/invoices", protected(http.HandlerFunc(h.createInvoice)))
	mux.Handle("POST /dashboard/invoices/{id}/edit", protected(http.HandlerFunc(h.updateInvoice)))
	mux.Handle("POST /dashboard/invoices/{id}/delete", protected(http.HandlerFunc(h.deleteInvoice)))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid form")
		return
	}

	res, err := h.actions.Authenticate(r.Context(), r.PostForm)
	if err != nil {
		h.logger.Error("Sign-in error", "error", err)
		writeMessage(w, http.StatusInternalServerError, actions.MsgSomethingWent)
		return
	}
	if res.Session == nil {
		writeMessage(w, http.StatusUnauthorized, res.Message)
		return
	}

	middleware.SetSessionCookie(w, res.Session, h.secureCookies)
	http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w, h.secureCookies)
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid form")
		return
	}
	h.respond(w, r, h.actions.CreateInvoice(r.Context(), r.PostForm))
}

func (h *Handler) updateInvoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid form")
		return
	}
	h.respond(w, r, h.actions.UpdateInvoice(r.Context(), r.PathValue("id"), r.PostForm))
}

func (h *Handler) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	state, err := h.actions.DeleteInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		h.logger.Error("Failed to delete invoice", "invoice_id", r.PathValue("id"), "error", err)
		writeMessage(w, ierr.HTTPStatusFromErr(err), ierr.Hint(err, actions.MsgSomethingWent))
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, out actions.Outcome) {
	switch {
	case out.Redirected():
		http.Redirect(w, r, out.RedirectTo, http.StatusSeeOther)
	case len(out.Errors) > 0:
		writeJSON(w, http.StatusUnprocessableEntity, out.State)
	default:
		writeJSON(w, http.StatusInternalServerError, out.State)
	}
}
