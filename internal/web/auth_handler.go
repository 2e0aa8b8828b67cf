package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dangsuk1211/Website-banthucung/internal/auth"
	"github.com/dangsuk1211/Website-banthucung/internal/repository"
	"github.com/dangsuk1211/Website-banthucung/internal/session"
	"github.com/dangsuk1211/Website-banthucung/internal/view"
)

type AuthHandler struct {
	auth     Authenticator
	sessions session.Store
	render   view.Renderer
}

func NewAuthHandler(auth Authenticator, sessions session.Store, render view.Renderer) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		render:   render,
	}
}

// ShowLogin renders the login form. The returnUrl, when present, is carried
// into the form's POST target so the round trip survives the submit.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	callbackURL := loginPath
	if ret := r.URL.Query().Get("returnUrl"); ret != "" {
		callbackURL = loginPath + "?returnUrl=" + url.QueryEscape(ret)
	}

	data := map[string]any{
		"CallbackUrl": callbackURL,
		"Error":       nil,
	}
	if err := h.render.Render(w, "login", data); err != nil {
		fail(w, err)
	}
}

// Login verifies the credentials, stores the identity in the session and
// sends the visitor back where they came from. The anonymous cart stays.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	identity, err := h.auth.Verify(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			data := map[string]any{
				"CallbackUrl": r.URL.RequestURI(),
				"Error":       "Incorrect email or password.",
			}
			w.WriteHeader(http.StatusUnauthorized)
			if err := h.render.Render(w, "login", data); err != nil {
				fail(w, err)
			}
			return
		}
		fail(w, err)
		return
	}

	sess.Identity = identity
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		fail(w, err)
		return
	}

	redirect(w, r, safeReturnURL(r.URL.Query().Get("returnUrl")))
}

// Logout clears the identity only. The cart intentionally survives a login
// state change.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	sess.Identity = nil
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		fail(w, err)
		return
	}

	redirect(w, r, loginPath)
}

func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	data := map[string]any{
		"IsAuthenticated": sess.LoggedIn(),
		"Errors":          nil,
	}
	if err := h.render.Render(w, "register", data); err != nil {
		fail(w, err)
	}
}

type registerResponse struct {
	IsSucceed bool              `json:"isSucceed"`
	Errors    []auth.FieldError `json:"errors"`
	Message   string            `json:"message"`
}

// Register validates the form and creates the account, answering the AJAX
// shape the register page expects.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	form := auth.RegisterForm{
		Fullname:   r.PostFormValue("fullname"),
		Email:      r.PostFormValue("email"),
		Password:   r.PostFormValue("password"),
		Repassword: r.PostFormValue("repassword"),
	}

	if errs := form.Validate(); len(errs) > 0 {
		respondJSON(w, http.StatusOK, registerResponse{Errors: errs, Message: "Failed"})
		return
	}

	if err := h.auth.Register(r.Context(), form); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			respondJSON(w, http.StatusOK, registerResponse{
				Errors:  []auth.FieldError{{Field: "email", Message: "Email is already registered."}},
				Message: "Failed",
			})
			return
		}
		respondJSON(w, http.StatusInternalServerError, registerResponse{Message: "Failed"})
		return
	}

	respondJSON(w, http.StatusOK, registerResponse{IsSucceed: true, Message: "Success"})
}
