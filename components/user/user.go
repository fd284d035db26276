// Package user renders the profile view and the profile edit form.
package user

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dcastano/studyroom/components/layout"
	"github.com/dcastano/studyroom/internal/form"
	"github.com/dcastano/studyroom/internal/model"
)

// Profile renders a user's page: their bio, hosted rooms, recent messages
// and the topic list for navigation.
func Profile(u model.User, rooms []model.Room, msgs []model.Message, topics []model.Topic, isSelf bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<aside class="topics">` + "\n<h2>Browse Topics</h2>\n<ul>\n")
		for _, topic := range topics {
			layout.TopicLink(&b, topic)
		}
		b.WriteString("</ul>\n</aside>\n")

		b.WriteString(`<section class="profile">` + "\n")
		fmt.Fprintf(&b, "<h1>%s</h1>\n", templ.EscapeString(u.Name))
		fmt.Fprintf(&b, `<p class="username">@%s</p>`+"\n", templ.EscapeString(u.Username))
		fmt.Fprintf(&b, "<p>%s</p>\n", templ.EscapeString(u.Bio))
		if isSelf {
			b.WriteString(`<a href="/update-user">Edit Profile</a>` + "\n")
		}

		b.WriteString("<h2>Study Rooms Hosted</h2>\n<ul>\n")
		for _, room := range rooms {
			fmt.Fprintf(&b, `<li><a href="/room/%s">%s</a> <small>%s</small></li>`+"\n",
				room.ID, templ.EscapeString(room.Name), templ.EscapeString(room.Topic.Name))
		}
		b.WriteString("</ul>\n")

		b.WriteString("<h2>Recent Activity</h2>\n<ul>\n")
		for _, msg := range msgs {
			b.WriteString("<li>\n")
			fmt.Fprintf(&b, `posted in <a href="/room/%s">%s</a> <small>%s</small>`+"\n",
				msg.RoomID, templ.EscapeString(msg.Room.Name), layout.Timestamp(msg.CreatedAt))
			fmt.Fprintf(&b, "<p>%s</p>\n", templ.EscapeString(msg.Body))
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n</section>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// EditForm renders the profile edit form.
func EditForm(f form.UserEdit, errs map[string]string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="user-form">` + "\n<h1>Edit Profile</h1>\n")
		b.WriteString(`<form method="post" action="/update-user">` + "\n")

		b.WriteString(`<label>Name</label>` + "\n")
		fmt.Fprintf(&b, `<input type="text" name="name" value="%s"/>`+"\n",
			templ.EscapeString(f.Name))
		layout.FieldError(&b, errs, "Name")

		b.WriteString(`<label>Username</label>` + "\n")
		fmt.Fprintf(&b, `<input type="text" name="username" value="%s"/>`+"\n",
			templ.EscapeString(f.Username))
		layout.FieldError(&b, errs, "Username")

		b.WriteString(`<label>Email</label>` + "\n")
		fmt.Fprintf(&b, `<input type="email" name="email" value="%s"/>`+"\n",
			templ.EscapeString(f.Email))
		layout.FieldError(&b, errs, "Email")

		b.WriteString(`<label>Bio</label>` + "\n")
		fmt.Fprintf(&b, "<textarea name=\"bio\">%s</textarea>\n", templ.EscapeString(f.Bio))
		layout.FieldError(&b, errs, "Bio")

		b.WriteString(`<button type="submit">Save</button>` + "\n</form>\n</section>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
