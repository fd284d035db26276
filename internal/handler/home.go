package handler

import (
	"net/http"

	viewHome "github.com/dcastano/studyroom/components/home"
	"github.com/dcastano/studyroom/components/layout"
	"github.com/dcastano/studyroom/internal/flash"
	"github.com/dcastano/studyroom/internal/store"
)

// topicSidebarLimit caps the topic sidebar on the home view.
const topicSidebarLimit = 5

// Home renders the room listing. The optional q parameter filters rooms by
// a case-insensitive substring match on name, description or topic name,
// and the activity column by topic name.
func Home(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		query := r.URL.Query().Get("q")

		rooms, err := st.SearchRooms(ctx, query)
		if err != nil {
			serverError(w, err)
			return
		}

		topics, err := st.ListTopics(ctx, topicSidebarLimit)
		if err != nil {
			serverError(w, err)
			return
		}

		activity, err := st.SearchMessagesByTopic(ctx, query)
		if err != nil {
			serverError(w, err)
			return
		}

		user := currentUser(r, st)
		render(w, r, layout.Base("Home", user, flash.Pop(w, r),
			viewHome.Home(query, rooms, topics, len(rooms), activity)))
	}
}
