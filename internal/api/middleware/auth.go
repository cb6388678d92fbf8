package middleware

import (
	"net/http"
)

// SessionVerifier проверяет подпись и срок действия сессии администратора
type SessionVerifier interface {
	Verify(token string) error
}

// Logger логгер middleware
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth пропускает запрос только с действующей cookie сессии
// Иначе перенаправляет (303) на страницу входа
func AdminAuth(verifier SessionVerifier, cookieName, loginPath string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				logger.Warn("AdminAuth: %s %s - missing session", r.Method, r.URL.Path)
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			if err := verifier.Verify(cookie.Value); err != nil {
				logger.Warn("AdminAuth: %s %s - rejected session: %v", r.Method, r.URL.Path, err)
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
