package handler

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	viewAuth "github.com/dcastano/studyroom/components/auth"
	"github.com/dcastano/studyroom/components/layout"
	viewUser "github.com/dcastano/studyroom/components/user"
	"github.com/dcastano/studyroom/internal/auth"
	"github.com/dcastano/studyroom/internal/flash"
	"github.com/dcastano/studyroom/internal/form"
	"github.com/dcastano/studyroom/internal/model"
	"github.com/dcastano/studyroom/internal/store"

	"github.com/google/uuid"
)

// LoginPage renders the login form. Authenticated visitors are sent home
// without re-prompting.
func LoginPage(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := auth.GetUserFromContext(r.Context()); err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		msg := flash.Pop(w, r)
		render(w, r, layout.Base("Login", nil, msg,
			viewAuth.Login(form.Login{}, nil, nil)))
	}
}

// SubmitLogin handles user login.
func SubmitLogin(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, err := auth.GetUserFromContext(ctx); err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data.", http.StatusBadRequest)
			log.Printf("failed to parse form values: %v", err)
			return
		}

		f := form.LoginFromRequest(r)
		if err := f.Validate(); err != nil {
			render(w, r, layout.Base("Login", nil, "",
				viewAuth.Login(f, form.FieldErrors(err), nil)))
			return
		}

		var msgs []string

		// The lookup result only feeds the notice; verification below runs
		// either way.
		user, err := st.GetUserByLogin(ctx, f.Identifier)
		if err != nil {
			msgs = append(msgs, "User does not exist")
			log.Printf("failed to retrieve user: %v", err)
		}

		var hashed string
		if pw, err := st.GetPassword(ctx, user.ID); err == nil {
			hashed = pw.HashedPassword
		}

		ok, err := auth.CheckPasswordHash(f.Password, hashed)
		if err != nil || !ok {
			msgs = append(msgs, "Username OR password does not exist")
			render(w, r, layout.Base("Login", nil, "",
				viewAuth.Login(f, nil, msgs)))
			return
		}

		if err := auth.StartSession(w, r, st, user.ID); err != nil {
			serverError(w, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)

		slog.InfoContext(ctx, "user logged in",
			slog.String("username", user.Username))
	}
}

// Logout tears the session down unconditionally and redirects home.
func Logout(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := auth.EndSession(w, r, st); err != nil {
			log.Printf("failed to process token revocation: %v", err)
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// RegisterPage renders the registration form.
func RegisterPage(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := auth.GetUserFromContext(r.Context()); err == nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		msg := flash.Pop(w, r)
		render(w, r, layout.Base("Register", nil, msg,
			viewAuth.Register(form.Register{}, nil, nil)))
	}
}

// SubmitRegister handles account creation and logs the new user in.
func SubmitRegister(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data.", http.StatusBadRequest)
			log.Printf("failed to parse form values: %v", err)
			return
		}

		f := form.RegisterFromRequest(r)
		if err := f.Validate(); err != nil {
			render(w, r, layout.Base("Register", nil, "",
				viewAuth.Register(f, form.FieldErrors(err),
					[]string{"An error occurred during registration"})))
			return
		}

		hashedPw, err := auth.HashPassword(f.Password)
		if err != nil {
			serverError(w, err)
			return
		}

		now := time.Now().UTC()
		user := model.User{
			ID:        uuid.New(),
			Username:  f.Username,
			Email:     f.Email,
			Name:      f.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := st.CreateUser(ctx, &user, hashedPw); err != nil {
			// Almost always a username or email collision.
			log.Printf("failed to create user entry in database: %v", err)
			render(w, r, layout.Base("Register", nil, "",
				viewAuth.Register(f, nil,
					[]string{"An error occurred during registration"})))
			return
		}

		if err := auth.StartSession(w, r, st, user.ID); err != nil {
			serverError(w, err)
			return
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)

		slog.InfoContext(ctx, "user signed up",
			slog.String("username", user.Username))
	}
}

// EditUserPage renders the profile edit form prefilled with the requesting
// user's current values.
func EditUserPage(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r, st)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		f := form.UserEdit{
			Name:     user.Name,
			Username: user.Username,
			Email:    user.Email,
			Bio:      user.Bio,
		}
		render(w, r, layout.Base("Edit Profile", user, flash.Pop(w, r),
			viewUser.EditForm(f, nil)))
	}
}

// SubmitEditUser persists profile edits and returns to the profile view.
func SubmitEditUser(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := currentUser(r, st)
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data.", http.StatusBadRequest)
			log.Printf("failed to parse form values: %v", err)
			return
		}

		f := form.UserEditFromRequest(r)
		if err := f.Validate(); err != nil {
			render(w, r, layout.Base("Edit Profile", user, "",
				viewUser.EditForm(f, form.FieldErrors(err))))
			return
		}

		user.Name = f.Name
		user.Username = f.Username
		user.Email = f.Email
		user.Bio = sanitizer.Sanitize(f.Bio)
		user.UpdatedAt = time.Now().UTC()
		if err := st.UpdateUser(r.Context(), user); err != nil {
			log.Printf("failed to update user entry in database: %v", err)
			render(w, r, layout.Base("Edit Profile", user, "",
				viewUser.EditForm(f, map[string]string{
					"Username": "username or email already taken",
				})))
			return
		}

		http.Redirect(w, r, "/profile/"+user.ID.String(), http.StatusSeeOther)
	}
}
