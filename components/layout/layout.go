// Package layout holds the page skeleton shared by every view.
package layout

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/dcastano/studyroom/internal/model"
)

// Timestamp renders a time the way every view shows it.
func Timestamp(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}

// Base wraps content in the HTML skeleton: head, navbar, flash notice slot
// and main column. A nil user renders the anonymous navbar.
func Base(title string, user *model.User, flashMsg string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
		b.WriteString(`<meta charset="utf-8"/>` + "\n")
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>` + "\n")
		fmt.Fprintf(&b, "<title>%s | StudyRoom</title>\n", templ.EscapeString(title))
		b.WriteString(`<link rel="stylesheet" href="/static/style.css"/>` + "\n")
		b.WriteString("</head>\n<body>\n")

		b.WriteString(`<nav class="navbar">` + "\n")
		b.WriteString(`<a class="brand" href="/">StudyRoom</a>` + "\n")
		b.WriteString(`<a href="/topics">Topics</a> <a href="/activity">Activity</a>` + "\n")
		if user != nil {
			fmt.Fprintf(&b, `<a href="/profile/%s">@%s</a> <a href="/logout">Logout</a>`+"\n",
				user.ID, templ.EscapeString(user.Username))
		} else {
			b.WriteString(`<a href="/login">Login</a> <a href="/register">Register</a>` + "\n")
		}
		b.WriteString("</nav>\n")

		if flashMsg != "" {
			fmt.Fprintf(&b, `<div class="flash">%s</div>`+"\n", templ.EscapeString(flashMsg))
		}

		b.WriteString("<main>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "\n</main>\n</body>\n</html>\n")
		return err
	})
}

// DeleteConfirm is the shared confirmation prompt for destructive actions.
// The POST goes back to action.
func DeleteConfirm(label, action string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="confirm">` + "\n")
		fmt.Fprintf(&b, "<p>Are you sure you want to delete &quot;%s&quot;?</p>\n",
			templ.EscapeString(label))
		fmt.Fprintf(&b, `<form method="post" action="%s">`+"\n", templ.EscapeString(action))
		b.WriteString(`<button type="submit">Confirm</button> <a href="/">Cancel</a>` + "\n")
		b.WriteString("</form>\n</section>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// FieldError renders the validation message for one form field, or nothing.
func FieldError(b *strings.Builder, errs map[string]string, field string) {
	if msg, ok := errs[field]; ok {
		fmt.Fprintf(b, `<span class="field-error">%s</span>`+"\n", templ.EscapeString(msg))
	}
}

// TopicLink renders a sidebar link filtering the home view by topic name.
// The name goes through query encoding for the href and HTML escaping for
// the label.
func TopicLink(b *strings.Builder, topic model.Topic) {
	fmt.Fprintf(b, `<li><a href="/?q=%s">%s</a></li>`+"\n",
		templ.EscapeString(url.QueryEscape(topic.Name)),
		templ.EscapeString(topic.Name))
}
