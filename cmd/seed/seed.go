// Command seed populates a development database with a handful of users,
// topics, rooms and messages so the UI has something to show.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/dcastano/studyroom/internal/auth"
	"github.com/dcastano/studyroom/internal/config"
	"github.com/dcastano/studyroom/internal/database"
	"github.com/dcastano/studyroom/internal/model"
	"github.com/dcastano/studyroom/internal/store"
)

const seedPassword = "password1234"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := database.Migrate(db, cfg.DBDriver, cfg.MigrationsDir); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()
	st := store.New(db)

	users := make(map[string]model.User)
	for _, username := range []string{"alice", "bob", "carol"} {
		hashed, err := auth.HashPassword(seedPassword)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		now := time.Now().UTC()
		user := model.User{
			ID:        uuid.New(),
			Username:  username,
			Email:     username + "@example.com",
			Name:      username,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := st.CreateUser(ctx, &user, hashed); err != nil {
			log.Fatalf("failed to create user %q: %v", username, err)
		}
		users[username] = user
	}

	rooms := []struct {
		host, topic, name, description string
	}{
		{"alice", "Math", "Algebra Help", "Linear equations, matrices and friends."},
		{"alice", "Math", "Calculus Club", "Derivatives and integrals, weekly sessions."},
		{"bob", "History", "The Roman Republic", "From the kings to Caesar."},
		{"carol", "Programming", "Learning Go", "Beginners welcome."},
	}

	for _, row := range rooms {
		host := users[row.host]

		topic, err := st.GetOrCreateTopic(ctx, row.topic)
		if err != nil {
			log.Fatalf("failed to resolve topic %q: %v", row.topic, err)
		}

		now := time.Now().UTC()
		room := model.Room{
			ID:          uuid.New(),
			Name:        row.name,
			Description: row.description,
			HostID:      host.ID,
			TopicID:     topic.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := st.CreateRoom(ctx, &room); err != nil {
			log.Fatalf("failed to create room %q: %v", row.name, err)
		}

		for _, username := range []string{"alice", "bob"} {
			msg := model.Message{
				ID:        uuid.New(),
				Body:      "Welcome to " + row.name + "!",
				UserID:    users[username].ID,
				RoomID:    room.ID,
				CreatedAt: time.Now().UTC(),
			}
			if err := st.PostMessage(ctx, &msg); err != nil {
				log.Fatalf("failed to post message in %q: %v", row.name, err)
			}
		}
	}

	log.Printf("seeded %d users and %d rooms, password %q", len(users), len(rooms), seedPassword)
}
