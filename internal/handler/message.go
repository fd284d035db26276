package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dcastano/studyroom/components/layout"
	"github.com/dcastano/studyroom/internal/auth"
	"github.com/dcastano/studyroom/internal/store"
)

// DeleteMessagePage renders the delete confirmation. Only the author may
// see it.
func DeleteMessagePage(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			serverError(w, err)
			return
		}

		msg, err := st.GetMessage(ctx, id)
		if err != nil {
			serverError(w, err)
			return
		}

		userID, _ := auth.GetUserFromContext(ctx)
		if userID != msg.UserID {
			forbidden(w)
			return
		}

		user := currentUser(r, st)
		render(w, r, layout.Base("Delete Message", user, "",
			layout.DeleteConfirm(msg.Body, "/delete-message/"+msg.ID.String())))
	}
}

// SubmitDeleteMessage deletes a message. Only the author may do so.
func SubmitDeleteMessage(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			serverError(w, err)
			return
		}

		msg, err := st.GetMessage(ctx, id)
		if err != nil {
			serverError(w, err)
			return
		}

		userID, _ := auth.GetUserFromContext(ctx)
		if userID != msg.UserID {
			forbidden(w)
			return
		}

		if err := st.DeleteMessage(ctx, msg.ID); err != nil {
			serverError(w, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
