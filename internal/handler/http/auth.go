package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/service"
)

const (
	// sessionCookieName is the cookie carrying the signed admin session.
	sessionCookieName = "admin-session"

	loginPath        = "/admin"
	adminRankingPath = "/admin/ranking"
)

// msgInvalidCredentials is the single message shown for every login
// failure. Unknown email, deactivated account, and wrong password must be
// indistinguishable to the visitor.
const msgInvalidCredentials = "メールアドレスまたはパスワードが正しくありません"

// loginPageData feeds the login template.
type loginPageData struct {
	Email        string
	ErrorMessage string
}

// loginPage renders the admin login form. A visitor whose cookie still
// resolves is sent straight to the console.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if _, err := h.services.AuthService.ResolveSession(r.Context(), cookie.Value); err == nil {
			http.Redirect(w, r, adminRankingPath, http.StatusSeeOther)
			return
		}
	}

	h.renderPage(w, r, "login.gohtml", http.StatusOK, loginPageData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid login form submission")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	foundUser, err := h.services.AuthService.Authenticate(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("email", email).Msg("login rejected")
			h.renderPage(w, r, "login.gohtml", http.StatusUnauthorized, loginPageData{
				Email:        email,
				ErrorMessage: msgInvalidCredentials,
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.IssueSession(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("user successfully logged in")

	http.SetCookie(w, h.sessionCookie(token.String(), int(h.cfg.SessionDuration.Seconds())))
	http.Redirect(w, r, adminRankingPath, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	http.Redirect(w, r, loginPath, http.StatusSeeOther)
}

// sessionCookie builds the admin session cookie. A negative maxAge expires
// it immediately.
func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   h.cfg.SecureCookies,
	}
}
