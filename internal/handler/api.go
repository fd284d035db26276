package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dcastano/studyroom/internal/store"
)

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode json response: %v", err)
	}
}

// APIRoutes is the JSON sub-router mounted at /api.
func APIRoutes(st *store.Store) http.Handler {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, []string{
			"GET /api",
			"GET /api/rooms",
			"GET /api/rooms/{id}",
		})
	})

	r.Get("/rooms", func(w http.ResponseWriter, r *http.Request) {
		rooms, err := st.SearchRooms(r.Context(), "")
		if err != nil {
			respondJSON(w, http.StatusInternalServerError,
				map[string]string{"error": "database error"})
			return
		}
		respondJSON(w, http.StatusOK, rooms)
	})

	r.Get("/rooms/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondJSON(w, http.StatusBadRequest,
				map[string]string{"error": "invalid room id"})
			return
		}

		room, err := st.GetRoom(r.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondJSON(w, http.StatusNotFound,
					map[string]string{"error": "room not found"})
				return
			}
			respondJSON(w, http.StatusInternalServerError,
				map[string]string{"error": "database error"})
			return
		}
		respondJSON(w, http.StatusOK, room)
	})

	return r
}
