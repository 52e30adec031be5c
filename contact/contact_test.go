package contact

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"os/exec"
	"strings"
	"testing"
)

const recipient = "maulikghasadiya2712@gmail.com"

// decodeMailto splits a mailto URI into its decoded subject and body.
func decodeMailto(t *testing.T, uri string) (to, subject, body string) {
	t.Helper()
	rest, ok := strings.CutPrefix(uri, "mailto:")
	if !ok {
		t.Fatalf("not a mailto URI: %q", uri)
	}
	to, query, _ := strings.Cut(rest, "?")
	vals, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	return to, vals.Get("subject"), vals.Get("body")
}

func TestSubmitDefaultsSubjectAndClearsDraft(t *testing.T) {
	var opened []string
	c := &Composer{
		Recipient: recipient,
		Opener: OpenerFunc(func(_ context.Context, uri string) error {
			opened = append(opened, uri)
			return nil
		}),
	}
	d := &Draft{Name: "Jane", Email: "jane@x.com", Subject: "", Message: "Hello"}

	uri, err := c.Submit(context.Background(), d)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(opened) != 1 || opened[0] != uri {
		t.Fatalf("opened = %v, want exactly %q", opened, uri)
	}
	to, subject, body := decodeMailto(t, uri)
	if to != recipient {
		t.Errorf("to = %q", to)
	}
	if subject != DefaultSubject {
		t.Errorf("subject = %q, want %q", subject, DefaultSubject)
	}
	want := "Name: Jane\nEmail: jane@x.com\nSubject: Contact from Portfolio\n\nMessage:\nHello"
	if body != want {
		t.Errorf("body = %q, want %q", body, want)
	}
	if !d.IsZero() {
		t.Errorf("draft not cleared: %+v", *d)
	}
}

func TestComposeEncoding(t *testing.T) {
	uri, err := Compose(recipient, Draft{
		Name:    "A & B",
		Email:   "a+b@x.com",
		Subject: "Hi there?",
		Message: "50% off = deal#1",
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if strings.Contains(uri, "+") {
		t.Errorf("uri contains '+', mail clients would show it literally: %s", uri)
	}
	if !strings.Contains(uri, "subject=Hi%20there%3F&body=") {
		t.Errorf("subject not percent-encoded: %s", uri)
	}
	_, subject, body := decodeMailto(t, uri)
	if subject != "Hi there?" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "Name: A & B\n") || !strings.Contains(body, "Email: a+b@x.com\n") ||
		!strings.HasSuffix(body, "Message:\n50% off = deal#1") {
		t.Errorf("body = %q", body)
	}
}

func TestComposeRejectsBadRecipient(t *testing.T) {
	_, err := Compose("not an address", Draft{Name: "a", Email: "b", Message: "c"})
	if !errors.Is(err, ErrDispatch) {
		t.Fatalf("err = %v, want ErrDispatch", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		ok    bool
	}{
		{"complete", Draft{Name: "Jane", Email: "j@x.com", Message: "Hi"}, true},
		{"subject optional", Draft{Name: "Jane", Email: "j@x.com", Subject: "", Message: "Hi"}, true},
		{"missing name", Draft{Email: "j@x.com", Message: "Hi"}, false},
		{"blank email", Draft{Name: "Jane", Email: "   ", Message: "Hi"}, false},
		{"missing message", Draft{Name: "Jane", Email: "j@x.com"}, false},
	}
	for _, tt := range tests {
		err := tt.draft.Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrMissingField) {
			t.Errorf("%s: err = %v, want ErrMissingField", tt.name, err)
		}
	}
}

func TestSubmitKeepsDraftOnValidationError(t *testing.T) {
	opened := false
	c := &Composer{Recipient: recipient, Opener: OpenerFunc(func(context.Context, string) error {
		opened = true
		return nil
	})}
	d := &Draft{Name: "Jane", Subject: "Hi"}
	if _, err := c.Submit(context.Background(), d); !errors.Is(err, ErrMissingField) {
		t.Fatalf("err = %v, want ErrMissingField", err)
	}
	if opened {
		t.Error("opener must not run for an invalid draft")
	}
	if d.Name != "Jane" || d.Subject != "Hi" {
		t.Errorf("draft changed: %+v", *d)
	}
}

func TestSubmitClearsDraftWhenDispatchFails(t *testing.T) {
	c := &Composer{Recipient: recipient, Opener: OpenerFunc(func(context.Context, string) error {
		return errors.New("no mail handler")
	})}
	d := &Draft{Name: "Jane", Email: "j@x.com", Message: "Hello"}
	_, err := c.Submit(context.Background(), d)
	if !errors.Is(err, ErrDispatch) {
		t.Fatalf("err = %v, want ErrDispatch", err)
	}
	if !d.IsZero() {
		t.Errorf("draft retained after failed dispatch: %+v", *d)
	}

	bad := &Composer{Recipient: "??"}
	d = &Draft{Name: "Jane", Email: "j@x.com", Message: "Hello"}
	if _, err := bad.Submit(context.Background(), d); !errors.Is(err, ErrDispatch) {
		t.Fatalf("err = %v, want ErrDispatch", err)
	}
	if !d.IsZero() {
		t.Error("draft retained after composition failure")
	}
}

func TestSystemOpenerCommand(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"linux", "xdg-open"},
		{"darwin", "open"},
		{"windows", "rundll32"},
	}
	for _, tt := range tests {
		var started *exec.Cmd
		o := SystemOpener{GOOS: tt.goos, Run: func(c *exec.Cmd) error {
			started = c
			return nil
		}}
		if err := o.Open(context.Background(), "mailto:a@b.c"); err != nil {
			t.Fatalf("%s: %v", tt.goos, err)
		}
		if started == nil || !strings.HasSuffix(started.Path, tt.want) && started.Args[0] != tt.want {
			t.Errorf("%s: command = %v", tt.goos, started)
		}
		if last := started.Args[len(started.Args)-1]; last != "mailto:a@b.c" {
			t.Errorf("%s: uri arg = %q", tt.goos, last)
		}
	}
	if err := (SystemOpener{GOOS: "plan9"}).Open(context.Background(), "mailto:a@b.c"); err == nil {
		t.Error("expected error for unsupported OS")
	}
}

func TestPrintOpener(t *testing.T) {
	var buf bytes.Buffer
	if err := (PrintOpener{W: &buf}).Open(context.Background(), "mailto:a@b.c"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "mailto:a@b.c\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestEncodeComponentReservedMarks(t *testing.T) {
	in := "Hi (it's me)! *wave*"
	got := EncodeComponent(in)
	if want := "Hi%20%28it%27s%20me%29%21%20%2Awave%2A"; got != want {
		t.Errorf("EncodeComponent(%q) = %q, want %q", in, got, want)
	}
	back, err := url.PathUnescape(got)
	if err != nil || back != in {
		t.Errorf("decoded = %q, %v; want %q", back, err, in)
	}
}
