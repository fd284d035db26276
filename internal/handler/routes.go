package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dcastano/studyroom/internal"
	"github.com/dcastano/studyroom/internal/store"
)

// Routes builds the full router: every page route, the auth-only group and
// the JSON API sub-router.
func Routes(st *store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(internal.CurrentUser(st))

	fs := http.FileServer(http.Dir("static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	r.Get("/", Home(st))
	r.Get("/login", LoginPage(st))
	r.Post("/login", SubmitLogin(st))
	r.Get("/logout", Logout(st))
	r.Get("/register", RegisterPage(st))
	r.Post("/register", SubmitRegister(st))
	r.Get("/room/{id}", RoomDetail(st))
	r.Get("/profile/{id}", Profile(st))
	r.Get("/topics", Topics(st))
	r.Get("/activity", Activity(st))

	r.Mount("/api", APIRoutes(st))

	r.Group(func(r chi.Router) {
		r.Use(internal.RequireAuth)

		r.Post("/room/{id}", PostMessage(st))
		r.Get("/room-create", CreateRoomPage(st))
		r.Post("/room-create", SubmitCreateRoom(st))
		r.Get("/update-room/{id}", UpdateRoomPage(st))
		r.Post("/update-room/{id}", SubmitUpdateRoom(st))
		r.Get("/delete-room/{id}", DeleteRoomPage(st))
		r.Post("/delete-room/{id}", SubmitDeleteRoom(st))
		r.Get("/delete-message/{id}", DeleteMessagePage(st))
		r.Post("/delete-message/{id}", SubmitDeleteMessage(st))
		r.Get("/update-user", EditUserPage(st))
		r.Post("/update-user", SubmitEditUser(st))
	})

	return r
}
