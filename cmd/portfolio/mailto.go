package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Maulik7278/portfolio"
	"github.com/Maulik7278/portfolio/contact"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	mailDraft contact.Draft
	mailTo    string
	mailOpen  bool
)

//nolint:gochecknoglobals // Cobra boilerplate
var mailtoCmd = &cobra.Command{
	Use:   "mailto",
	Short: "Compose a contact message as a mailto: URI",
	Long: `Composes the same mailto: URI the contact form produces.

The URI is printed unless --open is given, in which case it is handed to
the system mail handler.`,
	Example: `  portfolio mailto --name Ada --email ada@example.com --message "Hello"
  portfolio mailto --name Ada --email ada@example.com --message "Hello" --open`,
	RunE: runMailto,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(mailtoCmd)
	f := mailtoCmd.Flags()
	f.StringVar(&mailDraft.Name, "name", "", "sender name (required)")
	f.StringVar(&mailDraft.Email, "email", "", "sender email (required)")
	f.StringVar(&mailDraft.Subject, "subject", "", "subject line")
	f.StringVar(&mailDraft.Message, "message", "", "message body (required)")
	f.StringVar(&mailTo, "to", "", "recipient (default: $CONTACT_RECIPIENT or the content owner's email)")
	f.BoolVar(&mailOpen, "open", false, "open the URI in the system mail handler")
}

func runMailto(cmd *cobra.Command, args []string) error {
	recipient := mailTo
	if recipient == "" {
		recipient = portfolio.EnvOr("CONTACT_RECIPIENT", "")
	}
	if recipient == "" {
		site, err := loadContent()
		if err != nil {
			return err
		}
		recipient = site.Owner.Email
	}

	composer := &contact.Composer{
		Recipient: recipient,
		Opener:    contact.PrintOpener{W: cmd.OutOrStdout()},
	}
	if mailOpen {
		composer.Opener = contact.SystemOpener{}
	}

	ctx, cancel := contextWithTimeout(cmd, 10*time.Second)
	defer cancel()

	draft := mailDraft
	if _, err := composer.Submit(ctx, &draft); err != nil {
		if errors.Is(err, contact.ErrMissingField) {
			return errors.New("--name, --email and --message are required")
		}
		return errors.Wrap(err, "failed to compose message")
	}
	return nil
}

func contextWithTimeout(cmd *cobra.Command, d time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}
