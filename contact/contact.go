// Package contact turns a contact form draft into a mailto: URI and hands it
// to the host's mail handler. Delivery is never confirmed.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// DefaultSubject is used when the draft subject is blank.
const DefaultSubject = "Contact from Portfolio"

// FailureNotice is shown when composing or dispatching fails.
const FailureNotice = "Something went wrong. Please try again or email directly."

// SuccessNotice is shown once the mail handler was asked to open.
const SuccessNotice = "Your default email client should open with the message pre-filled."

var (
	// ErrMissingField is wrapped by validation errors.
	ErrMissingField = errors.New("contact: required field is empty")
	// ErrDispatch is wrapped by composition and mail-handler errors.
	ErrDispatch = errors.New("contact: could not open mail handler")
)

// Draft is the transient contact form state.
type Draft struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate checks that name, email and message are present.
func (d Draft) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"email", d.Email},
		{"message", d.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: %w", f.name, ErrMissingField)
		}
	}
	return nil
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Clear empties the draft.
func (d *Draft) Clear() {
	*d = Draft{}
}

// Body renders the labelled message body.
func (d Draft) Body() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s",
		d.Name, d.Email, d.subject(), d.Message)
}

func (d Draft) subject() string {
	if s := strings.TrimSpace(d.Subject); s != "" {
		return s
	}
	return DefaultSubject
}

// Compose builds the mailto: URI for d addressed to recipient.
func Compose(recipient string, d Draft) (string, error) {
	addr, err := mail.ParseAddress(recipient)
	if err != nil {
		return "", fmt.Errorf("recipient %q: %v: %w", recipient, err, ErrDispatch)
	}
	return "mailto:" + addr.Address +
		"?subject=" + EncodeComponent(d.subject()) +
		"&body=" + EncodeComponent(d.Body()), nil
}

// EncodeComponent percent-encodes s for a mailto header value. Spaces become
// %20, never "+", since mail clients do not decode "+". Unlike JavaScript's
// encodeURIComponent it also escapes !'()*; the decoded text is the same.
func EncodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Opener asks the host environment to open a URI.
type Opener interface {
	Open(ctx context.Context, uri string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, uri string) error

// Open calls f.
func (f OpenerFunc) Open(ctx context.Context, uri string) error {
	return f(ctx, uri)
}

// Composer validates, composes and dispatches drafts to one recipient.
type Composer struct {
	Recipient string
	Opener    Opener
}

// Submit validates d, dispatches the composed URI and clears d. A draft that
// fails validation is left untouched; after validation the draft is cleared
// whatever the outcome.
func (c *Composer) Submit(ctx context.Context, d *Draft) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	defer d.Clear()

	uri, err := Compose(c.Recipient, *d)
	if err != nil {
		return "", err
	}
	if c.Opener != nil {
		if err := c.Opener.Open(ctx, uri); err != nil {
			return "", fmt.Errorf("open mail handler: %v: %w", err, ErrDispatch)
		}
	}
	return uri, nil
}
