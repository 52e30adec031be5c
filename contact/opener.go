package contact

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// SystemOpener opens URIs with the desktop's registered handler.
type SystemOpener struct {
	// GOOS overrides runtime.GOOS; used by tests.
	GOOS string
	// Run starts the command; defaults to (*exec.Cmd).Start so the mail
	// program is not waited on.
	Run func(*exec.Cmd) error
}

// Command returns the handler command for uri on the target OS.
func (o SystemOpener) Command(ctx context.Context, uri string) (*exec.Cmd, error) {
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return exec.CommandContext(ctx, "open", uri), nil
	case "windows":
		return exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", uri), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.CommandContext(ctx, "xdg-open", uri), nil
	default:
		return nil, fmt.Errorf("no URI handler known for %s", goos)
	}
}

// Open implements Opener.
func (o SystemOpener) Open(ctx context.Context, uri string) error {
	cmd, err := o.Command(ctx, uri)
	if err != nil {
		return err
	}
	run := o.Run
	if run == nil {
		run = (*exec.Cmd).Start
	}
	return run(cmd)
}

// PrintOpener writes the URI instead of opening it.
type PrintOpener struct {
	W io.Writer
}

// Open implements Opener.
func (p PrintOpener) Open(_ context.Context, uri string) error {
	_, err := fmt.Fprintln(p.W, uri)
	return err
}
