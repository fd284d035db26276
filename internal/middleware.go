package internal

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/dcastano/studyroom/internal/auth"
	"github.com/dcastano/studyroom/internal/store"
)

// CurrentUser resolves the requesting user from the session cookies and, if
// the session is valid, stores the user id in the request context. Requests
// without a session pass through anonymously.
func CurrentUser(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check the JWT first. If it is valid, append the user id to the
			// context and serve the next handler.
			jwtCookie, err := r.Cookie("jwt")
			if err == nil {
				userID, err := auth.ValidateJWT(jwtCookie.Value, os.Getenv("JWT_SECRET"))
				if err == nil {
					r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
					next.ServeHTTP(w, r)
					return
				}
			}

			// If the JWT is missing or stale, mint a new one from the
			// refresh token. If that fails too, the request stays anonymous.
			userID, err := auth.RefreshSession(w, r, st)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			r = r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth redirects anonymous requests to the login page. It must run
// after CurrentUser.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := auth.GetUserFromContext(r.Context()); err != nil {
			log.Printf("middleware: unauthenticated request to %s", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
