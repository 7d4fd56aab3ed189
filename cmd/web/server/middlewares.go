package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("request handler panicked", "path", r.URL.Path, "err", err)
				internalServerError(w, r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// BasicAuth guards the static routes with credentials from the htpasswd
// file. Passwords are compared against their bcrypt hashes.
func BasicAuth(realm string, creds map[string]string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok {
				unauthorized(realm, w, r)
				return
			}

			hash := creds[user]
			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)); err != nil {
				unauthorized(realm, w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(realm string, w http.ResponseWriter, r *http.Request) {
	w.Header().Add("WWW-Authenticate", fmt.Sprintf(`Basic realm="%s"`, realm))
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := w.Write([]byte(UnauthorizedErrorHTMLPage)); err != nil {
		slog.Error("failed to write the unauthorized page", "err", err)
	}
}

func internalServerError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	if _, err := w.Write([]byte(InternalServerErrorHTMLPage)); err != nil {
		slog.Error("failed to write the error page", "err", err)
	}
}
