// Package form maps HTML form submissions to validated input values.
// Validation failures come back as field-level errors for redisplay.
package form

import (
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// FieldErrors flattens a validation error into a field → message map for
// rendering next to the form inputs. A nil or non-validation error yields an
// empty map.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var verrs validation.Errors
	if ok := errorsAs(err, &verrs); !ok {
		return fields
	}

	for field, ferr := range verrs {
		fields[field] = ferr.Error()
	}
	return fields
}

func errorsAs(err error, target *validation.Errors) bool {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}

// Login carries a login submission. The identifier may be a username or an
// email address.
type Login struct {
	Identifier string
	Password   string
}

func LoginFromRequest(r *http.Request) Login {
	return Login{
		Identifier: strings.ToLower(strings.TrimSpace(r.PostFormValue("identifier"))),
		Password:   r.PostFormValue("password"),
	}
}

func (f Login) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Identifier, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

// Register carries a registration submission.
type Register struct {
	Name            string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

func RegisterFromRequest(r *http.Request) Register {
	return Register{
		Name:            strings.TrimSpace(r.PostFormValue("name")),
		Username:        strings.ToLower(strings.TrimSpace(r.PostFormValue("username"))),
		Email:           strings.ToLower(strings.TrimSpace(r.PostFormValue("email"))),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
}

func (f Register) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Length(0, 255)),
		validation.Field(&f.Username,
			validation.Required,
			validation.Length(3, 255),
			is.Alphanumeric),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required, validation.Length(8, 128)),
		validation.Field(&f.ConfirmPassword,
			validation.Required,
			validation.In(f.Password).Error("passwords do not match")),
	)
}

// Room carries a room create/update submission. Topic is a free-text topic
// name resolved by get-or-create.
type Room struct {
	Name        string
	Topic       string
	Description string
}

func RoomFromRequest(r *http.Request) Room {
	return Room{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Topic:       strings.TrimSpace(r.PostFormValue("topic")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
}

func (f Room) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.Topic, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.Description, validation.Length(0, 2000)),
	)
}

// Message carries a message-post submission.
type Message struct {
	Body string
}

func MessageFromRequest(r *http.Request) Message {
	return Message{Body: strings.TrimSpace(r.PostFormValue("body"))}
}

func (f Message) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Body, validation.Required, validation.Length(1, 10000)),
	)
}

// UserEdit carries a profile edit submission.
type UserEdit struct {
	Name     string
	Username string
	Email    string
	Bio      string
}

func UserEditFromRequest(r *http.Request) UserEdit {
	return UserEdit{
		Name:     strings.TrimSpace(r.PostFormValue("name")),
		Username: strings.ToLower(strings.TrimSpace(r.PostFormValue("username"))),
		Email:    strings.ToLower(strings.TrimSpace(r.PostFormValue("email"))),
		Bio:      strings.TrimSpace(r.PostFormValue("bio")),
	}
}

func (f UserEdit) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Length(0, 255)),
		validation.Field(&f.Username,
			validation.Required,
			validation.Length(3, 255),
			is.Alphanumeric),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Bio, validation.Length(0, 5000)),
	)
}
