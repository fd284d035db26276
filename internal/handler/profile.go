package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dcastano/studyroom/components/layout"
	viewUser "github.com/dcastano/studyroom/components/user"
	"github.com/dcastano/studyroom/internal/flash"
	"github.com/dcastano/studyroom/internal/store"
)

// Profile renders a user's page with their hosted rooms and messages.
func Profile(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			serverError(w, err)
			return
		}

		profiled, err := st.GetUserByID(ctx, id)
		if err != nil {
			serverError(w, err)
			return
		}

		rooms, err := st.ListRoomsByHost(ctx, profiled.ID)
		if err != nil {
			serverError(w, err)
			return
		}

		msgs, err := st.ListMessagesByAuthor(ctx, profiled.ID)
		if err != nil {
			serverError(w, err)
			return
		}

		topics, err := st.ListTopics(ctx, 0)
		if err != nil {
			serverError(w, err)
			return
		}

		viewer := currentUser(r, st)
		isSelf := viewer != nil && viewer.ID == profiled.ID
		render(w, r, layout.Base(profiled.Username, viewer, flash.Pop(w, r),
			viewUser.Profile(profiled, rooms, msgs, topics, isSelf)))
	}
}
