// Package contact validates the contact form and composes the mailto link
// that hands the message to the local email client.
package contact

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"

	MinNameLength    = 2
	MinMessageLength = 10
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Form struct {
	Name    string
	Email   string
	Message string
}

// Errors maps a field name to the message shown next to it.
type Errors map[string]string

func (e Errors) OK() bool { return len(e) == 0 }

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return "contact: " + strings.Join(parts, "; ")
}

func (f Form) Validate() Errors {
	errs := Errors{}

	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		errs[FieldName] = "Name is required"
	case len([]rune(name)) < MinNameLength:
		errs[FieldName] = fmt.Sprintf("Name must be at least %d characters", MinNameLength)
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs[FieldEmail] = "Email is required"
	case !ValidEmail(email):
		errs[FieldEmail] = "Please enter a valid email"
	}

	msg := strings.TrimSpace(f.Message)
	switch {
	case msg == "":
		errs[FieldMessage] = "Message is required"
	case len([]rune(msg)) < MinMessageLength:
		errs[FieldMessage] = fmt.Sprintf("Message must be at least %d characters", MinMessageLength)
	}

	return errs
}

func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// MailtoURL builds the link the site opens on submit. The form is expected
// to be valid.
func MailtoURL(to string, f Form) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(to)
	b.WriteString("?subject=Portfolio Contact from ")
	b.WriteString(escape(f.Name))
	b.WriteString("&body=")
	b.WriteString(escape(f.Message))
	b.WriteString("%0A%0AFrom: ")
	b.WriteString(escape(f.Email))
	return b.String()
}

// escape percent-encodes a URI component; spaces become %20, not '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
