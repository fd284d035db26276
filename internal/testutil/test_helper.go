// Package testutil spins up a migrated in-memory database for tests.
package testutil

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dcastano/studyroom/internal/model"
	"github.com/dcastano/studyroom/internal/store"
)

func ProjectRoot() string {
	_, file, _, _ := runtime.Caller(0)
	root := filepath.Join(filepath.Dir(file), "../../")
	return root
}

// DbInit opens an in-memory sqlite database and applies all goose
// migrations. The connection is torn down with the test.
func DbInit(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open the sqlite database: %+v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not unwrap sql.DB: %+v", err)
	}

	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("goose.SetDialect() error = %+v", err)
	}

	migDir := filepath.Join(ProjectRoot(), "sql", "schema")
	if err := goose.Up(sqlDB, migDir); err != nil {
		t.Fatalf("goose.Up() error = %+v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// SeedUser creates a user with a throwaway password hash.
func SeedUser(t *testing.T, st *store.Store, username string) model.User {
	t.Helper()

	now := time.Now().UTC()
	user := model.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     username + "@test.com",
		Name:      username,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := st.CreateUser(t.Context(), &user, "unusable-hash"); err != nil {
		t.Fatalf("failed to create user: %+v", err)
	}
	return user
}

// SeedRoom creates a room hosted by host under a get-or-created topic.
func SeedRoom(t *testing.T, st *store.Store, host model.User, topicName, name, description string) model.Room {
	t.Helper()

	topic, err := st.GetOrCreateTopic(t.Context(), topicName)
	if err != nil {
		t.Fatalf("failed to get or create topic: %+v", err)
	}

	now := time.Now().UTC()
	room := model.Room{
		ID:          uuid.New(),
		HostID:      host.ID,
		TopicID:     topic.ID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := st.CreateRoom(t.Context(), &room); err != nil {
		t.Fatalf("failed to create room: %+v", err)
	}
	return room
}

// SeedMessage posts a message by author into room.
func SeedMessage(t *testing.T, st *store.Store, author model.User, room model.Room, body string) model.Message {
	t.Helper()

	msg := model.Message{
		ID:        uuid.New(),
		RoomID:    room.ID,
		UserID:    author.ID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if err := st.PostMessage(t.Context(), &msg); err != nil {
		t.Fatalf("failed to post message: %+v", err)
	}
	return msg
}
