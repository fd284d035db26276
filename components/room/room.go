// Package room renders the room detail view and the create/update form.
package room

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

// Detail renders a room, its conversation newest first and its participant
// set. A nil viewer sees no post form; the host additionally sees edit and
// delete controls, and message authors see delete links on their own posts.
func Detail(room model.Room, msgs []model.Message, viewer *model.User) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="room">` + "\n")
		fmt.Fprintf(&b, "<h1>%s</h1>\n", templ.EscapeString(room.Name))
		fmt.Fprintf(&b, `<p class="topic">%s</p>`+"\n", templ.EscapeString(room.Topic.Name))
		fmt.Fprintf(&b, `<p>hosted by <a href="/profile/%s">@%s</a></p>`+"\n",
			room.HostID, templ.EscapeString(room.Host.Username))
		fmt.Fprintf(&b, "<p>%s</p>\n", templ.EscapeString(room.Description))

		if viewer != nil && viewer.ID == room.HostID {
			fmt.Fprintf(&b, `<a href="/update-room/%s">Edit</a> <a href="/delete-room/%s">Delete</a>`+"\n",
				room.ID, room.ID)
		}

		b.WriteString("<h2>Conversation</h2>\n<ul class=\"messages\">\n")
		for _, msg := range msgs {
			b.WriteString("<li>\n")
			fmt.Fprintf(&b, `<a href="/profile/%s">@%s</a> <small>%s</small>`+"\n",
				msg.UserID, templ.EscapeString(msg.User.Username), layout.Timestamp(msg.CreatedAt))
			fmt.Fprintf(&b, "<p>%s</p>\n", templ.EscapeString(msg.Body))
			if viewer != nil && viewer.ID == msg.UserID {
				fmt.Fprintf(&b, `<a href="/delete-message/%s">Delete</a>`+"\n", msg.ID)
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")

		if viewer != nil {
			fmt.Fprintf(&b, `<form method="post" action="/room/%s">`+"\n", room.ID)
			b.WriteString(`<input type="text" name="body" placeholder="Write your message here..."/>` + "\n")
			b.WriteString(`<button type="submit">Send</button>` + "\n</form>\n")
		} else {
			b.WriteString(`<p><a href="/login">Login</a> to join the conversation.</p>` + "\n")
		}
		b.WriteString("</section>\n")

		b.WriteString(`<aside class="participants">` + "\n<h2>Participants</h2>\n<ul>\n")
		for _, p := range room.Participants {
			fmt.Fprintf(&b, `<li><a href="/profile/%s">@%s</a></li>`+"\n",
				p.ID, templ.EscapeString(p.Username))
		}
		b.WriteString("</ul>\n</aside>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Form renders the create/update room form. The topic input is free text;
// existing topics are offered as datalist suggestions.
func Form(title, action string, f form.Room, errs map[string]string, topics []model.Topic) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="room-form">` + "\n")
		fmt.Fprintf(&b, "<h1>%s</h1>\n", templ.EscapeString(title))
		fmt.Fprintf(&b, `<form method="post" action="%s">`+"\n", templ.EscapeString(action))

		b.WriteString(`<label>Topic</label>` + "\n")
		fmt.Fprintf(&b, `<input type="text" name="topic" list="topic-list" value="%s"/>`+"\n",
			templ.EscapeString(f.Topic))
		b.WriteString(`<datalist id="topic-list">` + "\n")
		for _, topic := range topics {
			fmt.Fprintf(&b, `<option value="%s"></option>`+"\n", templ.EscapeString(topic.Name))
		}
		b.WriteString("</datalist>\n")
		layout.FieldError(&b, errs, "Topic")

		b.WriteString(`<label>Room name</label>` + "\n")
		fmt.Fprintf(&b, `<input type="text" name="name" value="%s"/>`+"\n",
			templ.EscapeString(f.Name))
		layout.FieldError(&b, errs, "Name")

		b.WriteString(`<label>Description</label>` + "\n")
		fmt.Fprintf(&b, "<textarea name=\"description\">%s</textarea>\n",
			templ.EscapeString(f.Description))
		layout.FieldError(&b, errs, "Description")

		b.WriteString(`<button type="submit">Save</button> <a href="/">Cancel</a>` + "\n")
		b.WriteString("</form>\n</section>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
