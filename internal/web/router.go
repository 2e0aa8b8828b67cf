package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dangsuk1211/Website-banthucung/internal/session"
	"github.com/dangsuk1211/Website-banthucung/internal/view"
)

// Deps bundles everything the router needs.
type Deps struct {
	Catalog  Catalog
	Auth     Authenticator
	Placer   OrderPlacer
	Orders   OrderHistory
	Sessions session.Store
	Render   view.Renderer
}

// NewRouter wires every route of the storefront. Checkout and the account
// pages sit behind RequireLogin; everything else is open to anonymous
// visitors carrying only a cart.
func NewRouter(d Deps) http.Handler {
	site := NewSiteHandler(d.Catalog, d.Render)
	cart := NewCartHandler(d.Catalog, d.Sessions, d.Render)
	co := NewCheckoutHandler(d.Placer, d.Render)
	authh := NewAuthHandler(d.Auth, d.Sessions, d.Render)
	account := NewAccountHandler(d.Auth, d.Orders, d.Sessions, d.Render)
	sessions := NewSessionMiddleware(d.Sessions)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(sessions.Handler)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	r.Get("/", site.Home)
	r.Get("/tim-kiem.html", site.Search)
	r.Get("/danh-muc/{name}.{id}.html", site.Category)
	r.Get("/san-pham/{name}.{productId}.{categoryId}.html", site.ProductDetail)
	r.Post("/menu", site.Menu)

	r.Get("/huong-dan.html", site.Static("guide"))
	r.Get("/lien-he.html", site.Static("contact"))
	r.Get("/Payment.html", site.Static("payment"))

	r.Get("/gio-hang.html", cart.Show)
	r.Get("/cart/add/{id}", cart.Add)
	r.Post("/cart/update", cart.Update)
	r.Post("/cart/delete", cart.Delete)

	r.Get(loginPath, authh.ShowLogin)
	r.Post(loginPath, authh.Login)
	r.Get("/dang-xuat.html", authh.Logout)
	r.Get("/dang-ky.html", authh.ShowRegister)
	r.Get("/dangki.html", authh.ShowRegister)
	r.Post("/dang-ky.html", authh.Register)

	r.Group(func(r chi.Router) {
		r.Use(RequireLogin)
		r.Get(checkoutPath, co.Show)
		r.Post(checkoutPath, co.Submit)
		r.Get("/tai-khoan.html", account.Show)
		r.Post("/cap-nhat-thong-tin.html", account.UpdateProfile)
	})
	r.Get("/thanh-toan-thanh-cong.html", co.Success)

	return r
}
