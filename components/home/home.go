// Package home renders the home/search listing.
package home

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dcastano/studyroom/components/layout"
	"github.com/dcastano/studyroom/internal/model"
)

// Home renders the search form, topic sidebar, matching rooms and the
// recent activity column for rooms whose topic matched the query.
func Home(query string, rooms []model.Room, topics []model.Topic, roomCount int, activity []model.Message) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<aside class="topics">` + "\n<h2>Browse Topics</h2>\n<ul>\n")
		b.WriteString(`<li><a href="/">All</a></li>` + "\n")
		for _, topic := range topics {
			layout.TopicLink(&b, topic)
		}
		b.WriteString("</ul>\n")
		b.WriteString(`<a href="/topics">More</a>` + "\n</aside>\n")

		b.WriteString(`<section class="rooms">` + "\n")
		b.WriteString(`<form method="get" action="/">` + "\n")
		fmt.Fprintf(&b, `<input type="text" name="q" value="%s" placeholder="Search rooms..."/>`+"\n",
			templ.EscapeString(query))
		b.WriteString(`<button type="submit">Search</button>` + "\n</form>\n")

		fmt.Fprintf(&b, "<h2>Study Rooms</h2>\n<p>%d rooms available</p>\n", roomCount)
		b.WriteString(`<a href="/room-create">Create Room</a>` + "\n<ul>\n")
		for _, room := range rooms {
			b.WriteString("<li>\n")
			fmt.Fprintf(&b, `<a href="/room/%s">%s</a>`+"\n", room.ID, templ.EscapeString(room.Name))
			fmt.Fprintf(&b, `<small>hosted by <a href="/profile/%s">@%s</a> &middot; %s</small>`+"\n",
				room.HostID, templ.EscapeString(room.Host.Username), templ.EscapeString(room.Topic.Name))
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n</section>\n")

		b.WriteString(`<aside class="activity">` + "\n<h2>Recent Activity</h2>\n<ul>\n")
		for _, msg := range activity {
			b.WriteString("<li>\n")
			fmt.Fprintf(&b, `<a href="/profile/%s">@%s</a> posted in <a href="/room/%s">%s</a>`+"\n",
				msg.UserID, templ.EscapeString(msg.User.Username),
				msg.RoomID, templ.EscapeString(msg.Room.Name))
			fmt.Fprintf(&b, "<p>%s</p>\n", templ.EscapeString(msg.Body))
			fmt.Fprintf(&b, "<small>%s</small>\n", layout.Timestamp(msg.CreatedAt))
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n</aside>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
