// Package browse renders the topics index and the global activity feed.
package browse

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dcastano/studyroom/components/layout"
	"github.com/dcastano/studyroom/internal/model"
)

// Topics renders the full topic list, optionally filtered by a search query.
func Topics(topics []model.Topic, query string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="topics-page">` + "\n<h1>Browse Topics</h1>\n")
		b.WriteString(`<form method="get" action="/topics">` + "\n")
		fmt.Fprintf(&b, `<input type="text" name="q" value="%s" placeholder="Search topics..."/>`+"\n",
			templ.EscapeString(query))
		b.WriteString(`<button type="submit">Search</button>` + "\n</form>\n<ul>\n")
		b.WriteString(`<li><a href="/">All</a></li>` + "\n")
		for _, topic := range topics {
			layout.TopicLink(&b, topic)
		}
		b.WriteString("</ul>\n</section>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Activity renders the system-wide message feed, newest first.
func Activity(msgs []model.Message) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="activity-page">` + "\n<h1>Recent Activity</h1>\n<ul>\n")
		for _, msg := range msgs {
			b.WriteString("<li>\n")
			fmt.Fprintf(&b, `<a href="/profile/%s">@%s</a> posted in <a href="/room/%s">%s</a>`+"\n",
				msg.UserID, templ.EscapeString(msg.User.Username),
				msg.RoomID, templ.EscapeString(msg.Room.Name))
			fmt.Fprintf(&b, "<p>%s</p>\n", templ.EscapeString(msg.Body))
			fmt.Fprintf(&b, "<small>%s</small>\n", layout.Timestamp(msg.CreatedAt))
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n</section>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
