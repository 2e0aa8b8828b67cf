package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dangsuk1211/Website-banthucung/internal/repository"
	"github.com/dangsuk1211/Website-banthucung/internal/session"
	"github.com/dangsuk1211/Website-banthucung/internal/view"
)

// SiteHandler serves the browsing pages: home, search, category and product
// detail, plus the static info pages.
type SiteHandler struct {
	catalog Catalog
	render  view.Renderer
}

func NewSiteHandler(catalog Catalog, render view.Renderer) *SiteHandler {
	return &SiteHandler{catalog: catalog, render: render}
}

func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	products, err := h.catalog.Products(r.Context())
	if err != nil {
		fail(w, err)
		return
	}

	h.page(w, r, "index", map[string]any{
		"Categories": categories,
		"Products":   products,
	})
}

func (h *SiteHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))

	products, err := h.catalog.Search(r.Context(), keyword)
	if err != nil {
		fail(w, err)
		return
	}
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		fail(w, err)
		return
	}

	h.page(w, r, "search", map[string]any{
		"Categories": categories,
		"Products":   products,
		"Keyword":    keyword,
	})
}

func (h *SiteHandler) Category(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	products, err := h.catalog.ByCategory(r.Context(), categoryID)
	if err != nil {
		fail(w, err)
		return
	}

	h.page(w, r, "category", map[string]any{
		"Categories": categories,
		"Products":   products,
	})
}

// ProductDetail shows one product with up to ten related ones from the same
// category. A missing product goes home, not to an error page.
func (h *SiteHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	product, err := h.catalog.Product(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			redirect(w, r, "/")
			return
		}
		fail(w, err)
		return
	}

	related, err := h.catalog.Related(r.Context(), product.CategoryID, product.ID)
	if err != nil {
		fail(w, err)
		return
	}

	h.page(w, r, "product", map[string]any{
		"Data":     product,
		"Products": related,
	})
}

// Menu answers the AJAX category menu.
func (h *SiteHandler) Menu(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// Static returns a handler for a bare template page.
func (h *SiteHandler) Static(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.page(w, r, name, map[string]any{})
	}
}

func (h *SiteHandler) page(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	sess := session.FromContext(r.Context())
	data["IsAuthenticated"] = sess != nil && sess.LoggedIn()

	if err := h.render.Render(w, name, data); err != nil {
		fail(w, err)
	}
}
