package web

import (
	"errors"
	"net/http"

	"github.com/dangsuk1211/Website-banthucung/internal/auth"
	"github.com/dangsuk1211/Website-banthucung/internal/session"
	"github.com/dangsuk1211/Website-banthucung/internal/view"
)

type AccountHandler struct {
	auth     Authenticator
	orders   OrderHistory
	sessions session.Store
	render   view.Renderer
}

func NewAccountHandler(auth Authenticator, orders OrderHistory, sessions session.Store, render view.Renderer) *AccountHandler {
	return &AccountHandler{
		auth:     auth,
		orders:   orders,
		sessions: sessions,
		render:   render,
	}
}

// Show renders the account page with the order history, newest first.
// Routed behind RequireLogin.
func (h *AccountHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	orders, err := h.orders.ListByUser(r.Context(), sess.Identity.ID)
	if err != nil {
		fail(w, err)
		return
	}

	data := map[string]any{
		"User":            sess.Identity,
		"Orders":          orders,
		"IsAuthenticated": true,
	}
	if err := h.render.Render(w, "account", data); err != nil {
		fail(w, err)
	}
}

// UpdateProfile applies the posted account changes and refreshes the session
// identity. Password errors come back as a plain user-visible message;
// neither the stored user nor the session change on failure.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	form := auth.ProfileForm{
		Fullname:        r.PostFormValue("fullname"),
		Email:           r.PostFormValue("email"),
		Phone:           r.PostFormValue("phone"),
		CurrentPassword: r.PostFormValue("currentPassword"),
		NewPassword:     r.PostFormValue("newPassword"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}

	identity, err := h.auth.UpdateProfile(r.Context(), sess.Identity.ID, form)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordIncomplete),
			errors.Is(err, auth.ErrWrongPassword),
			errors.Is(err, auth.ErrPasswordMismatch):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			fail(w, err)
		}
		return
	}

	sess.Identity = identity
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		fail(w, err)
		return
	}

	redirect(w, r, "/tai-khoan.html")
}
