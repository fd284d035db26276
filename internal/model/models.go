// Package model defines the persisted entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Usernames and emails are stored lowercase
// and are unique.
type User struct {
	ID        uuid.UUID `gorm:"primaryKey;type:text" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Password holds a user's argon2id hash, kept out of the users table so the
// user row can be loaded and rendered without it.
type Password struct {
	UserID         uuid.UUID `gorm:"primaryKey;type:text"`
	HashedPassword string    `gorm:"not null"`
	CreatedAt      time.Time
}

// RefreshToken is a server-side login session. A revoked or expired token no
// longer identifies a user.
type RefreshToken struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:text;not null;index"`
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Topic is a label grouping rooms. Topics are created on demand the first
// time a room references a new name and are never deleted.
type Topic struct {
	ID        uuid.UUID `gorm:"primaryKey;type:text" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:200;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Room is a discussion room. The host is the creating user and never
// changes. Participants are the users who have posted in the room.
type Room struct {
	ID           uuid.UUID `gorm:"primaryKey;type:text" json:"id"`
	HostID       uuid.UUID `gorm:"type:text;not null;index" json:"host_id"`
	Host         User      `json:"-"`
	TopicID      uuid.UUID `gorm:"type:text;not null;index" json:"topic_id"`
	Topic        Topic     `json:"-"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Description  string    `json:"description"`
	Participants []User    `gorm:"many2many:room_participants" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Message is a post inside a room.
type Message struct {
	ID        uuid.UUID `gorm:"primaryKey;type:text" json:"id"`
	RoomID    uuid.UUID `gorm:"type:text;not null;index" json:"room_id"`
	Room      Room      `json:"-"`
	UserID    uuid.UUID `gorm:"type:text;not null;index" json:"user_id"`
	User      User      `json:"-"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomParticipant is the room/user join row. The composite key gives
// participant membership set semantics.
type RoomParticipant struct {
	RoomID    uuid.UUID `gorm:"primaryKey;type:text"`
	UserID    uuid.UUID `gorm:"primaryKey;type:text"`
	CreatedAt time.Time
}

// TableName keeps the join table name in sync with the many2many tag on Room.
func (RoomParticipant) TableName() string {
	return "room_participants"
}
