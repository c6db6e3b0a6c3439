package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/credkarma/credkarma/internal/models"
)

// prompter reads line-oriented form input.
type prompter struct {
	scanner *bufio.Scanner
	app     *app
}

func (a *app) prompter() *prompter {
	return &prompter{scanner: bufio.NewScanner(a.in), app: a}
}

func (p *prompter) line(label string) string {
	fmt.Fprint(p.app.out, label)
	if !p.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}

// credentials prompts the sign-in form.
func (p *prompter) credentials() models.LoginCredentials {
	return models.LoginCredentials{
		Username: p.line("Username or email: "),
		Password: p.line("Password: "),
	}
}

// registration prompts the account-creation form.
func (p *prompter) registration() models.RegisterData {
	data := models.RegisterData{
		Username: p.line("Username: "),
		Email:    p.line("Email: "),
		Password: p.line("Password (min 6 characters): "),
	}
	role := p.line("Account type (user/admin) [user]: ")
	if role == "" {
		role = string(models.RoleUser)
	}
	data.Role = models.UserRole(role)
	return data
}

// behavior prompts the add-behavior form. The date is optional and defaults
// to now on the backend.
func (p *prompter) behavior() (models.NewBehavior, error) {
	fmt.Fprintln(p.app.out, "Behavior types:")
	for i, typ := range models.BehaviorTypes() {
		fmt.Fprintf(p.app.out, "  %d. %s (%+d karma)\n", i+1, typ.Label(), typ.Points())
	}

	input := models.NewBehavior{}
	choice := p.line("Type (number or name): ")
	types := models.BehaviorTypes()
	matched := false
	for i, typ := range types {
		if choice == fmt.Sprintf("%d", i+1) || choice == string(typ) {
			input.Type = typ
			matched = true
			break
		}
	}
	if !matched {
		input.Type = models.BehaviorType(choice)
	}

	input.Description = p.line("Description: ")

	if raw := p.line("Date (YYYY-MM-DD HH:MM, empty for now): "); raw != "" {
		date, err := time.ParseInLocation("2006-01-02 15:04", raw, time.Local)
		if err != nil {
			return input, fmt.Errorf("invalid date %q: expected YYYY-MM-DD HH:MM", raw)
		}
		input.Date = &date
	}
	return input, nil
}
