package layout_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/studyroom/components/layout"
	"github.com/dcastano/studyroom/internal/model"
)

func TestTimestamp(t *testing.T) {
	got := layout.Timestamp(time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, "Mar 1, 2025 09:05", got)
}

func TestBase(t *testing.T) {
	t.Run("anonymous_navbar", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, layout.Base("Home", nil, "", nil).Render(t.Context(), &b))

		html := b.String()
		assert.Contains(t, html, "<title>Home | StudyRoom</title>")
		assert.Contains(t, html, `<a href="/login">Login</a>`)
		assert.NotContains(t, html, "/logout")
	})

	t.Run("authenticated_navbar", func(t *testing.T) {
		user := model.User{ID: uuid.New(), Username: "alice"}

		var b strings.Builder
		require.NoError(t, layout.Base("Home", &user, "", nil).Render(t.Context(), &b))

		html := b.String()
		assert.Contains(t, html, "@alice")
		assert.Contains(t, html, "/logout")
		assert.NotContains(t, html, `<a href="/login">Login</a>`)
	})

	t.Run("flash_notice", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, layout.Base("Home", nil, "Message cannot be empty", nil).Render(t.Context(), &b))

		assert.Contains(t, b.String(), `<div class="flash">Message cannot be empty</div>`)
	})

	t.Run("escapes_title", func(t *testing.T) {
		var b strings.Builder
		require.NoError(t, layout.Base(`<b>x</b>`, nil, "", nil).Render(t.Context(), &b))

		assert.NotContains(t, b.String(), "<b>x</b>")
	})
}

func TestTopicLink(t *testing.T) {
	var b strings.Builder
	layout.TopicLink(&b, model.Topic{Name: "C & Go #1"})

	html := b.String()
	// The href carries a query-encoded name, the label an HTML-escaped one.
	assert.Contains(t, html, `href="/?q=C+%26+Go+%231"`)
	assert.Contains(t, html, ">C &amp; Go #1</a>")
}

func TestDeleteConfirm(t *testing.T) {
	var b strings.Builder
	require.NoError(t, layout.DeleteConfirm("Algebra Help", "/delete-room/abc").Render(t.Context(), &b))

	html := b.String()
	assert.Contains(t, html, "Are you sure you want to delete &quot;Algebra Help&quot;?")
	assert.Contains(t, html, `action="/delete-room/abc"`)
}
