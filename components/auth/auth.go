// Package auth renders the login and registration forms.
package auth

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dcastano/studyroom/components/layout"
	"github.com/dcastano/studyroom/internal/form"
)

func notices(b *strings.Builder, msgs []string) {
	for _, msg := range msgs {
		fmt.Fprintf(b, `<p class="notice">%s</p>`+"\n", templ.EscapeString(msg))
	}
}

// Login renders the login form, redisplaying submitted values and any
// notices or field errors.
func Login(f form.Login, errs map[string]string, msgs []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="auth">` + "\n<h1>Login</h1>\n")
		notices(&b, msgs)
		b.WriteString(`<form method="post" action="/login">` + "\n")

		b.WriteString(`<label>Username or email</label>` + "\n")
		fmt.Fprintf(&b, `<input type="text" name="identifier" value="%s"/>`+"\n",
			templ.EscapeString(f.Identifier))
		layout.FieldError(&b, errs, "Identifier")

		b.WriteString(`<label>Password</label>` + "\n")
		b.WriteString(`<input type="password" name="password"/>` + "\n")
		layout.FieldError(&b, errs, "Password")

		b.WriteString(`<button type="submit">Login</button>` + "\n</form>\n")
		b.WriteString(`<p>Don't have an account? <a href="/register">Register</a></p>` + "\n")
		b.WriteString("</section>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Register renders the registration form.
func Register(f form.Register, errs map[string]string, msgs []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString(`<section class="auth">` + "\n<h1>Register</h1>\n")
		notices(&b, msgs)
		b.WriteString(`<form method="post" action="/register">` + "\n")

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

		b.WriteString(`<label>Password</label>` + "\n")
		b.WriteString(`<input type="password" name="password"/>` + "\n")
		layout.FieldError(&b, errs, "Password")

		b.WriteString(`<label>Confirm password</label>` + "\n")
		b.WriteString(`<input type="password" name="confirm_password"/>` + "\n")
		layout.FieldError(&b, errs, "ConfirmPassword")

		b.WriteString(`<button type="submit">Register</button>` + "\n</form>\n")
		b.WriteString(`<p>Already have an account? <a href="/login">Login</a></p>` + "\n")
		b.WriteString("</section>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
