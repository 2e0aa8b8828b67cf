package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dangsuk1211/Website-banthucung/internal/repository"
	"github.com/dangsuk1211/Website-banthucung/internal/session"
	"github.com/dangsuk1211/Website-banthucung/internal/view"
)

type CartHandler struct {
	catalog  Catalog
	sessions session.Store
	render   view.Renderer
}

func NewCartHandler(catalog Catalog, sessions session.Store, render view.Renderer) *CartHandler {
	return &CartHandler{
		catalog:  catalog,
		sessions: sessions,
		render:   render,
	}
}

type cartMutationResponse struct {
	IsSucceed bool `json:"isSucceed"`
}

// Show renders the cart page.
func (h *CartHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	products, err := h.catalog.Products(r.Context())
	if err != nil {
		fail(w, err)
		return
	}

	data := map[string]any{
		"Data":            sess.Cart.ItemList(),
		"Total":           sess.Cart.Total(),
		"Products":        products,
		"IsAuthenticated": sess.LoggedIn(),
	}
	if err := h.render.Render(w, "cart", data); err != nil {
		fail(w, err)
	}
}

// Add resolves the product, then puts one unit into the session cart. An
// unknown product changes nothing; either way the visitor lands on the cart
// page.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	productID := chi.URLParam(r, "id")

	product, err := h.catalog.Product(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			redirect(w, r, "/gio-hang.html")
			return
		}
		fail(w, err)
		return
	}

	sess.Cart.AddItem(product.ID, *product)
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		fail(w, err)
		return
	}

	redirect(w, r, "/gio-hang.html")
}

// Update sets a line to an absolute quantity; zero or less removes it.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	productID := r.FormValue("id")
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if productID == "" || err != nil {
		respondJSON(w, http.StatusBadRequest, cartMutationResponse{IsSucceed: false})
		return
	}

	sess.Cart.UpdateQuantity(productID, quantity)
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		respondJSON(w, http.StatusInternalServerError, cartMutationResponse{IsSucceed: false})
		return
	}

	respondJSON(w, http.StatusOK, cartMutationResponse{IsSucceed: true})
}

// Delete removes a line.
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	productID := r.FormValue("id")
	if productID == "" {
		respondJSON(w, http.StatusBadRequest, cartMutationResponse{IsSucceed: false})
		return
	}

	sess.Cart.Delete(productID)
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		respondJSON(w, http.StatusInternalServerError, cartMutationResponse{IsSucceed: false})
		return
	}

	respondJSON(w, http.StatusOK, cartMutationResponse{IsSucceed: true})
}
