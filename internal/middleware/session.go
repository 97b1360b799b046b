package middleware

import (
	"net/http"

	"github.com/mmynk/acme-dashboard/internal/auth"
)

// RequireSession redirects requests without a valid session to loginPath.
// Authenticated requests carry the user in their context.
func RequireSession(jwtManager *auth.JWTManager, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := TokenFromHeader(r.Header)
			if err == nil {
				var claims *auth.Claims
				if claims, err = jwtManager.Validate(token); err == nil {
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
					return
				}
			}
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
		})
	}
}

// SetSessionCookie writes the session cookie for token.
func SetSessionCookie(w http.ResponseWriter, session *auth.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
