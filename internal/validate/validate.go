// Package validate performs client-side form validation, rejecting bad input
// before any network call is made. The same rules run server-side in the
// development backend so both ends agree on what a valid payload is.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/credkarma/credkarma/internal/models"
)

// Errors is a validation failure carrying one message per rejected field.
type Errors struct {
	Fields []models.FieldError
}

// Error joins the field messages into a single line.
func (e *Errors) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return strings.Join(msgs, "; ")
}

func (e *Errors) add(field, message string) {
	e.Fields = append(e.Fields, models.FieldError{Field: field, Message: message})
}

func (e *Errors) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Login checks the sign-in form. Username also accepts an email address, so
// only presence is required there.
func Login(creds models.LoginCredentials) error {
	var errs Errors
	if strings.TrimSpace(creds.Username) == "" {
		errs.add("username", "Username or email is required")
	}
	if creds.Password == "" {
		errs.add("password", "Password is required")
	} else if len(creds.Password) < 6 {
		errs.add("password", "Password must be at least 6 characters")
	}
	return errs.orNil()
}

// Register checks the account-creation form.
func Register(data models.RegisterData) error {
	var errs Errors
	username := strings.TrimSpace(data.Username)
	switch {
	case username == "":
		errs.add("username", "Username is required")
	case len(username) < 3:
		errs.add("username", "Username must be at least 3 characters")
	}
	switch {
	case strings.TrimSpace(data.Email) == "":
		errs.add("email", "Email is required")
	case !emailRe.MatchString(data.Email):
		errs.add("email", "Invalid email format")
	}
	switch {
	case data.Password == "":
		errs.add("password", "Password is required")
	case len(data.Password) < 6:
		errs.add("password", "Password must be at least 6 characters")
	}
	if !data.Role.Valid() {
		errs.add("role", "Please select a valid role")
	}
	return errs.orNil()
}

// Behavior checks the behavior-creation form. The date, when set, must not
// lie in the future.
func Behavior(input models.NewBehavior, now time.Time) error {
	var errs Errors
	if !input.Type.Valid() {
		errs.add("type", "Unknown behavior type")
	}
	if strings.TrimSpace(input.Description) == "" {
		errs.add("description", "Description is required")
	}
	if input.Date != nil && input.Date.After(now) {
		errs.add("date", "Date cannot be in the future")
	}
	return errs.orNil()
}
