package contactctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/amamam1231/ai-project-312/domain/contact"
	"github.com/amamam1231/ai-project-312/domain/i18n"
	"github.com/amamam1231/ai-project-312/domain/relay"
	"github.com/amamam1231/ai-project-312/internal/config"
)

// ErrSubmissionFailed is returned when the attempt settled in the failed phase.
var ErrSubmissionFailed = errors.New("submission failed")

type sendResult struct {
	Phase        string `json:"phase" yaml:"phase"`
	ErrorMessage string `json:"error_message,omitempty" yaml:"error_message,omitempty"`
}

func newSendCommand(o *options) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send one contact message",
		Long: `Send one contact message and print the phase it settled in.

Every flag may also be set through a CONTACTCTL_ prefixed environment
variable, e.g. CONTACTCTL_MESSAGE.`,
		Example: `  contactctl send --name Anna --email anna@example.com --subject Hello --message "Hi there"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, v, o)
		},
	}

	f := cmd.Flags()
	f.String(contact.FieldName, "", "sender name")
	f.String(contact.FieldEmail, "", "sender email address")
	f.String(contact.FieldSubject, "", "message subject")
	f.String(contact.FieldMessage, "", "message body")
	f.String("locale", "", "locale for fallback messages (defaults to SITE_LOCALE)")

	v.SetEnvPrefix("CONTACTCTL")
	v.AutomaticEnv()
	_ = v.BindPFlags(f)

	return cmd
}

func runSend(cmd *cobra.Command, v *viper.Viper, o *options) error {
	debug, _ := cmd.Flags().GetBool("debug")
	output, _ := cmd.Flags().GetString("output")
	log := newLogger(cmd.ErrOrStderr(), debug)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	r := o.relay
	if r == nil {
		r = relay.NewRelay(cfg, log)
	}

	locale := v.GetString("locale")
	if locale == "" {
		locale = cfg.Site.Locale
	}
	messages := i18n.NewCatalog(cfg.Site.Locale).ForAcceptLanguage(locale)

	raw := make(map[string]string, len(contact.RequiredFields))
	for _, name := range contact.RequiredFields {
		raw[name] = v.GetString(name)
	}
	fields := contact.NewSanitizer().Fields(raw, contact.RequiredFields...)
	if missing := fields.Missing(contact.RequiredFields...); len(missing) > 0 {
		return fmt.Errorf("missing required flags: --%s", strings.Join(missing, ", --"))
	}

	ctrl := contact.NewController(r, messages)
	st, err := ctrl.Submit(cmd.Context(), fields, cfg.Relay.AccessKey)
	if err != nil {
		return err
	}
	if cause := ctrl.LastFailure(); cause != nil {
		log.Debug("relay failure", slog.Any("cause", cause))
	}

	if err := printResult(cmd.OutOrStdout(), output, sendResult{
		Phase:        st.Phase.String(),
		ErrorMessage: st.ErrorMessage,
	}); err != nil {
		return err
	}

	if st.Phase == contact.PhaseFailed {
		return ErrSubmissionFailed
	}
	return nil
}

func printResult(w io.Writer, format string, res sendResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		if res.ErrorMessage != "" {
			_, err := fmt.Fprintf(w, "%s: %s\n", res.Phase, res.ErrorMessage)
			return err
		}
		_, err := fmt.Fprintln(w, res.Phase)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
