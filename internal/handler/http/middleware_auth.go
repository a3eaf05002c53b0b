package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/utils"
)

// sessionGuard protects the admin console behind the session cookie.
//
// It reads the "admin-session" cookie, resolves it via
// [service.AuthService.ResolveSession] (which verifies the signature, the
// issuer claim, and that the referenced account is still active), and on
// success stores the fresh session projection in the request context under
// [utils.SessionCtxKey] before delegating to the next handler.
//
// Every failure mode fails closed to the same place: a missing cookie, a
// bad signature, an expired payload, and a deactivated account all produce
// a 303 redirect to the login page, never an error page. The specific cause
// appears only in the server log.
func (h *Handler) sessionGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Debug().Str("uri", r.RequestURI).Msg("no session cookie, redirecting to login")
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ResolveSession(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Str("uri", r.RequestURI).Msg("session resolution failed, redirecting to login")
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}

		// Store the resolved session in the context so that downstream
		// handlers can render the admin identity without re-parsing the cookie.
		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
