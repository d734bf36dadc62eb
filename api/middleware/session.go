package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fadhlyaj09/Golf-Customizer-3D-sub000/pkg/logger"
)

const (
	sessionCookieName = "gb_session"
	sessionHeaderName = "X-Session-Id"
)

// StorefrontSession resolves the anonymous browser session that carts and
// customizer drafts are keyed by. The header wins over the cookie so SPA
// clients can pin a session explicitly; first-time visitors get a fresh ID
// echoed back in both the cookie and the response header.
func StorefrontSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(sessionHeaderName))
			if sessionID == "" {
				if cookie, err := r.Cookie(sessionCookieName); err == nil {
					sessionID = strings.TrimSpace(cookie.Value)
				}
			}
			if sessionID == "" || uuid.Validate(sessionID) != nil {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   30 * 24 * 60 * 60,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			w.Header().Set(sessionHeaderName, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
