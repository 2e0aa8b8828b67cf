package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dangsuk1211/Website-banthucung/internal/checkout"
	"github.com/dangsuk1211/Website-banthucung/internal/session"
	"github.com/dangsuk1211/Website-banthucung/internal/view"
)

const checkoutPath = "/dat-hang.html"

type CheckoutHandler struct {
	placer OrderPlacer
	render view.Renderer
}

func NewCheckoutHandler(placer OrderPlacer, render view.Renderer) *CheckoutHandler {
	return &CheckoutHandler{placer: placer, render: render}
}

// Show renders the checkout summary. Routed behind RequireLogin; an empty
// cart silently goes home, checkout means nothing without items.
func (h *CheckoutHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if sess.Cart.IsEmpty() {
		redirect(w, r, "/")
		return
	}

	data := map[string]any{
		"Data":            sess.Cart.ItemList(),
		"Total":           sess.Cart.Total(),
		"User":            sess.Identity,
		"IsAuthenticated": true,
		"Errors":          nil,
	}
	if err := h.render.Render(w, "checkout", data); err != nil {
		fail(w, err)
	}
}

// Submit runs the checkout workflow and redirects to the confirmation page.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := checkout.OrderForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Message: r.PostFormValue("message"),
		Ship:    r.PostFormValue("ship"),
		Payment: r.PostFormValue("payment"),
	}

	_, err := h.placer.PlaceOrder(r.Context(), sess, form)
	switch {
	case err == nil:
		redirect(w, r, "/thanh-toan-thanh-cong.html")
	case errors.Is(err, checkout.ErrEmptyCart):
		redirect(w, r, "/")
	case errors.Is(err, checkout.ErrLoginRequired):
		redirect(w, r, loginPath+"?returnUrl="+url.QueryEscape(checkoutPath))
	default:
		fail(w, err)
	}
}

// Success renders the thank-you page.
func (h *CheckoutHandler) Success(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	data := map[string]any{
		"User":            sess.Identity,
		"IsAuthenticated": sess.LoggedIn(),
	}
	if err := h.render.Render(w, "checkout-success", data); err != nil {
		fail(w, err)
	}
}
