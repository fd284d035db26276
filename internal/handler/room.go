package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dcastano/studyroom/components/layout"
	viewRoom "github.com/dcastano/studyroom/components/room"
	"github.com/dcastano/studyroom/internal/auth"
	"github.com/dcastano/studyroom/internal/flash"
	"github.com/dcastano/studyroom/internal/form"
	"github.com/dcastano/studyroom/internal/model"
	"github.com/dcastano/studyroom/internal/store"
)

func roomID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// RoomDetail renders a room with its conversation and participants.
func RoomDetail(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := roomID(r)
		if err != nil {
			serverError(w, err)
			return
		}

		room, err := st.GetRoom(ctx, id)
		if err != nil {
			serverError(w, err)
			return
		}

		msgs, err := st.ListRoomMessages(ctx, room.ID)
		if err != nil {
			serverError(w, err)
			return
		}

		user := currentUser(r, st)
		render(w, r, layout.Base(room.Name, user, flash.Pop(w, r),
			viewRoom.Detail(room, msgs, user)))
	}
}

// PostMessage creates a message in a room, adds the author to the room's
// participant set and returns to the room view.
func PostMessage(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := auth.GetUserFromContext(ctx)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		id, err := roomID(r)
		if err != nil {
			serverError(w, err)
			return
		}

		room, err := st.GetRoom(ctx, id)
		if err != nil {
			serverError(w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data.", http.StatusBadRequest)
			log.Printf("failed to parse form values: %v", err)
			return
		}

		f := form.MessageFromRequest(r)
		if err := f.Validate(); err != nil {
			flash.Set(w, "Message cannot be empty")
			http.Redirect(w, r, "/room/"+room.ID.String(), http.StatusSeeOther)
			return
		}

		msg := model.Message{
			ID:        uuid.New(),
			RoomID:    room.ID,
			UserID:    userID,
			Body:      sanitizer.Sanitize(f.Body),
			CreatedAt: time.Now().UTC(),
		}
		if err := st.PostMessage(ctx, &msg); err != nil {
			serverError(w, err)
			return
		}

		http.Redirect(w, r, "/room/"+room.ID.String(), http.StatusSeeOther)
	}
}

// CreateRoomPage renders the empty room form.
func CreateRoomPage(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := st.ListTopics(r.Context(), 0)
		if err != nil {
			serverError(w, err)
			return
		}

		user := currentUser(r, st)
		render(w, r, layout.Base("Create Room", user, flash.Pop(w, r),
			viewRoom.Form("Create Room", "/room-create", form.Room{}, nil, topics)))
	}
}

// SubmitCreateRoom creates a room hosted by the requesting user, resolving
// the topic by get-or-create on its exact name.
func SubmitCreateRoom(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := auth.GetUserFromContext(ctx)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data.", http.StatusBadRequest)
			log.Printf("failed to parse form values: %v", err)
			return
		}

		f := form.RoomFromRequest(r)
		if err := f.Validate(); err != nil {
			topics, terr := st.ListTopics(ctx, 0)
			if terr != nil {
				serverError(w, terr)
				return
			}
			user := currentUser(r, st)
			render(w, r, layout.Base("Create Room", user, "",
				viewRoom.Form("Create Room", "/room-create", f, form.FieldErrors(err), topics)))
			return
		}

		topic, err := st.GetOrCreateTopic(ctx, f.Topic)
		if err != nil {
			serverError(w, err)
			return
		}

		now := time.Now().UTC()
		room := model.Room{
			ID:          uuid.New(),
			HostID:      userID,
			TopicID:     topic.ID,
			Name:        f.Name,
			Description: f.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := st.CreateRoom(ctx, &room); err != nil {
			serverError(w, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// UpdateRoomPage renders the room form prefilled. Only the host may see it.
func UpdateRoomPage(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := roomID(r)
		if err != nil {
			serverError(w, err)
			return
		}

		room, err := st.GetRoom(ctx, id)
		if err != nil {
			serverError(w, err)
			return
		}

		userID, _ := auth.GetUserFromContext(ctx)
		if userID != room.HostID {
			forbidden(w)
			return
		}

		topics, err := st.ListTopics(ctx, 0)
		if err != nil {
			serverError(w, err)
			return
		}

		f := form.Room{
			Name:        room.Name,
			Topic:       room.Topic.Name,
			Description: room.Description,
		}
		user := currentUser(r, st)
		render(w, r, layout.Base("Update Room", user, flash.Pop(w, r),
			viewRoom.Form("Update Room", "/update-room/"+room.ID.String(), f, nil, topics)))
	}
}

// SubmitUpdateRoom mutates a room's editable fields. The host never
// changes.
func SubmitUpdateRoom(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := roomID(r)
		if err != nil {
			serverError(w, err)
			return
		}

		room, err := st.GetRoom(ctx, id)
		if err != nil {
			serverError(w, err)
			return
		}

		userID, _ := auth.GetUserFromContext(ctx)
		if userID != room.HostID {
			forbidden(w)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data.", http.StatusBadRequest)
			log.Printf("failed to parse form values: %v", err)
			return
		}

		f := form.RoomFromRequest(r)
		if err := f.Validate(); err != nil {
			topics, terr := st.ListTopics(ctx, 0)
			if terr != nil {
				serverError(w, terr)
				return
			}
			user := currentUser(r, st)
			render(w, r, layout.Base("Update Room", user, "",
				viewRoom.Form("Update Room", "/update-room/"+room.ID.String(), f,
					form.FieldErrors(err), topics)))
			return
		}

		topic, err := st.GetOrCreateTopic(ctx, f.Topic)
		if err != nil {
			serverError(w, err)
			return
		}

		room.Name = f.Name
		room.Description = f.Description
		room.TopicID = topic.ID
		room.UpdatedAt = time.Now().UTC()
		if err := st.UpdateRoom(ctx, &room); err != nil {
			serverError(w, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// DeleteRoomPage renders the delete confirmation. Only the host may see it.
func DeleteRoomPage(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := roomID(r)
		if err != nil {
			serverError(w, err)
			return
		}

		room, err := st.GetRoom(ctx, id)
		if err != nil {
			serverError(w, err)
			return
		}

		userID, _ := auth.GetUserFromContext(ctx)
		if userID != room.HostID {
			forbidden(w)
			return
		}

		user := currentUser(r, st)
		render(w, r, layout.Base("Delete Room", user, "",
			layout.DeleteConfirm(room.Name, "/delete-room/"+room.ID.String())))
	}
}

// SubmitDeleteRoom deletes a room and everything in it.
func SubmitDeleteRoom(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := roomID(r)
		if err != nil {
			serverError(w, err)
			return
		}

		room, err := st.GetRoom(ctx, id)
		if err != nil {
			serverError(w, err)
			return
		}

		userID, _ := auth.GetUserFromContext(ctx)
		if userID != room.HostID {
			forbidden(w)
			return
		}

		if err := st.DeleteRoom(ctx, room.ID); err != nil {
			serverError(w, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
