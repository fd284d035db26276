package room_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/studyroom/components/room"
	"github.com/dcastano/studyroom/internal/form"
	"github.com/dcastano/studyroom/internal/model"
)

func testRoom() (model.Room, model.User, model.User) {
	host := model.User{ID: uuid.New(), Username: "alice"}
	other := model.User{ID: uuid.New(), Username: "bob"}
	r := model.Room{
		ID:          uuid.New(),
		Name:        "Algebra Help",
		Description: "linear equations and friends",
		HostID:      host.ID,
		Host:        host,
		Topic:       model.Topic{ID: uuid.New(), Name: "Math"},
		Participants: []model.User{
			other,
		},
	}
	return r, host, other
}

func TestDetail(t *testing.T) {
	rm, host, other := testRoom()
	msgs := []model.Message{
		{
			ID:        uuid.New(),
			Body:      "does anyone get eigenvalues?",
			UserID:    other.ID,
			User:      other,
			CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	t.Run("host_sees_controls", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, room.Detail(rm, msgs, &host).Render(t.Context(), &b))

		html := b.String()
		assert.Contains(t, html, "Algebra Help")
		assert.Contains(t, html, "/update-room/"+rm.ID.String())
		assert.Contains(t, html, "/delete-room/"+rm.ID.String())
		assert.Contains(t, html, "does anyone get eigenvalues?")
		assert.Contains(t, html, "@bob")
		// Host did not author the message.
		assert.NotContains(t, html, "/delete-message/"+msgs[0].ID.String())
	})

	t.Run("author_sees_message_delete", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, room.Detail(rm, msgs, &other).Render(t.Context(), &b))

		html := b.String()
		assert.Contains(t, html, "/delete-message/"+msgs[0].ID.String())
		assert.NotContains(t, html, "/update-room/")
	})

	t.Run("anonymous_gets_login_prompt", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, room.Detail(rm, msgs, nil).Render(t.Context(), &b))

		html := b.String()
		assert.Contains(t, html, `<a href="/login">Login</a>`)
		assert.NotContains(t, html, `name="body"`)
	})

	t.Run("escapes_markup", func(t *testing.T) {
		evil := rm
		evil.Name = `<script>alert("x")</script>`

		var b strings.Builder
		require.NoError(t, room.Detail(evil, nil, nil).Render(t.Context(), &b))

		assert.NotContains(t, b.String(), "<script>")
	})
}

func TestForm(t *testing.T) {
	topics := []model.Topic{
		{ID: uuid.New(), Name: "Math"},
		{ID: uuid.New(), Name: "History"},
	}

	t.Run("prefills_and_suggests", func(t *testing.T) {
		var b strings.Builder
		f := form.Room{Name: "Algebra Help", Topic: "Math", Description: "basics"}
		require.NoError(t, room.Form("Update Room", "/update-room/x", f, nil, topics).Render(t.Context(), &b))

		html := b.String()
		assert.Contains(t, html, `value="Algebra Help"`)
		assert.Contains(t, html, `<option value="Math">`)
		assert.Contains(t, html, `<option value="History">`)
	})

	t.Run("shows_field_errors", func(t *testing.T) {
		var b strings.Builder
		errs := map[string]string{"Topic": "cannot be blank"}
		require.NoError(t, room.Form("Create Room", "/room-create", form.Room{}, errs, nil).Render(t.Context(), &b))

		assert.Contains(t, b.String(), "cannot be blank")
	})
}
