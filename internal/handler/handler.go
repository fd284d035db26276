// Package handler holds one HTTP handler per route.
package handler

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dcastano/studyroom/internal/auth"
	"github.com/dcastano/studyroom/internal/model"
	"github.com/dcastano/studyroom/internal/store"
)

// sanitizer strips markup from user-supplied free text before it is stored.
var sanitizer = bluemonday.StrictPolicy()

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		log.Printf("failed to render component: %v", err)
	}
}

// currentUser loads the requesting user's row, or nil for anonymous
// requests.
func currentUser(r *http.Request, st *store.Store) *model.User {
	userID, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		return nil
	}

	user, err := st.GetUserByID(r.Context(), userID)
	if err != nil {
		log.Printf("failed to load user %s: %v", userID, err)
		return nil
	}
	return &user
}

// serverError is the generic fault page. Missing-entity lookups surface
// here too rather than as a dedicated 404 page.
func serverError(w http.ResponseWriter, err error) {
	log.Printf("handler: %v", err)
	http.Error(w, "Server error.", http.StatusInternalServerError)
}

// forbidden is the plain-text ownership denial.
func forbidden(w http.ResponseWriter) {
	http.Error(w, "You are not allowed here!", http.StatusForbidden)
}
