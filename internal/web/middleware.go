package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dangsuk1211/Website-banthucung/internal/session"
)

const (
	sessionCookie = "sid"
	loginPath     = "/dang-nhap.html"
)

// SessionMiddleware resolves the visitor's session from the sid cookie and
// puts it on the request context. A visitor without a (live) session gets a
// fresh anonymous one; it reaches Redis only once something is saved into it.
type SessionMiddleware struct {
	store session.Store
}

func NewSessionMiddleware(store session.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *session.Session

		if cookie, err := r.Cookie(sessionCookie); err == nil {
			loaded, err := m.store.Get(r.Context(), cookie.Value)
			switch {
			case err == nil:
				sess = loaded
			case !errors.Is(err, session.ErrNotFound):
				// A store outage must not rotate the sid: that would
				// orphan the visitor's cart and login for good.
				fail(w, err)
				return
			}
		}

		if sess == nil {
			sess = session.New()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}

// RequireLogin is the auth gate: an anonymous request is bounced to the login
// page with the original URL in returnUrl so login can send the visitor back.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if sess == nil || !sess.LoggedIn() {
			redirect(w, r, loginPath+"?returnUrl="+url.QueryEscape(r.URL.RequestURI()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// safeReturnURL keeps post-login redirects on this site. Anything that is not
// a plain local path falls back to the root; login never errors over it.
func safeReturnURL(raw string) string {
	if raw == "" {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" || raw[0] != '/' {
		return "/"
	}
	return raw
}
