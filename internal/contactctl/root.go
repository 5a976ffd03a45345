// Package contactctl implements the contactctl command line tool, which
// drives the contact form flow against the configured relay from a
// terminal.
package contactctl

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/amamam1231/ai-project-312/domain/relay"
)

// Option customizes the command tree.
type Option func(*options)

type options struct {
	relay relay.Relay
}

// WithRelay replaces the relay selected from the environment.
func WithRelay(r relay.Relay) Option {
	return func(o *options) { o.relay = r }
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	root := &cobra.Command{
		Use:   "contactctl",
		Short: "Send contact form messages through the configured relay",
		Long: `contactctl runs the contact form submission flow from the terminal.

The relay is configured with the same environment variables as the server
(RELAY_PROVIDER, RELAY_ACCESS_KEY, MAILGUN_* ...).`,
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().StringP("output", "o", "text", "output format (text, json, yaml)")

	root.AddCommand(newSendCommand(o), newVersionCommand())
	return root
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
