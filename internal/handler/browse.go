package handler

import (
	"net/http"

	viewBrowse "github.com/dcastano/studyroom/components/browse"
	"github.com/dcastano/studyroom/components/layout"
	"github.com/dcastano/studyroom/internal/flash"
	"github.com/dcastano/studyroom/internal/store"
)

// Topics renders the full topic list, filtered by the optional q parameter.
func Topics(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		topics, err := st.SearchTopics(r.Context(), query)
		if err != nil {
			serverError(w, err)
			return
		}

		user := currentUser(r, st)
		render(w, r, layout.Base("Topics", user, flash.Pop(w, r),
			viewBrowse.Topics(topics, query)))
	}
}

// Activity renders the system-wide message feed.
func Activity(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msgs, err := st.ListAllMessages(r.Context())
		if err != nil {
			serverError(w, err)
			return
		}

		user := currentUser(r, st)
		render(w, r, layout.Base("Activity", user, flash.Pop(w, r),
			viewBrowse.Activity(msgs)))
	}
}
