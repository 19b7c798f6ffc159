// Package cmd contains all CLI commands for geekctl
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/geek-project/geekctl/internal/api"
	"github.com/geek-project/geekctl/internal/config"
	"github.com/geek-project/geekctl/internal/output"
	"github.com/geek-project/geekctl/internal/session"
	"github.com/geek-project/geekctl/internal/token"
)

var (
	cfgFile string
	verbose bool
	noColor bool
	quiet   bool
	cfg     *config.Config
	logger  *slog.Logger
	tokens  *token.Store
	client  *api.Client
	sess    *session.Store
	version = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "geekctl",
	Short: "Content platform publishing CLI",
	Long: `geekctl is a command-line client for the geek content platform.

It manages an authenticated session and drives the article publishing
workflow: uploading cover images, creating and updating articles, and
browsing what has been published.

Example usage:
  geekctl login --mobile 13800000002 --code 246810
  geekctl publish --title "Hello" --channel 1 --content-file draft.html
  geekctl articles list         # Browse published articles
  geekctl whoami                # Show the signed-in user`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .geekctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
}

// initConfig reads configuration and wires the session-aware API client.
func initConfig() error {
	var err error

	// Setup logger
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Update logger based on config
	if cfg.Logging.Level == "debug" || verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	// Token persistence, API client, and session state. The navigator closes
	// the loop: when the client detects an expired session it clears the
	// in-memory state through it.
	tokens = token.NewStore(cfg.Auth.TokenFile)
	nav := &cliNavigator{}
	client = api.New(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		Tokens:    tokens,
		Navigator: nav,
		Logger:    logger,
	})
	sess, err = session.NewStore(tokens, client)
	if err != nil {
		return fmt.Errorf("initializing session: %w", err)
	}
	nav.session = sess
	nav.printer = newPrinter()

	logger.Debug("configuration loaded",
		"base_url", cfg.API.BaseURL,
		"timeout", cfg.API.Timeout,
		"token_file", cfg.Auth.TokenFile,
	)

	return nil
}

// newPrinter builds a printer honoring config and the --no-color/--quiet flags.
func newPrinter() *output.Printer {
	p := output.NewPrinter(output.ResolveColors(noColor, cfg.Output.Colors))
	p.SetQuiet(quiet)
	return p
}

// requireSession gates authenticated commands on token presence. Commands
// behind the gate never run without a persisted session.
func requireSession() error {
	if sess.Token() == "" {
		return &output.CLIError{
			Summary:    "not logged in",
			Suggestion: "Run 'geekctl login' to start a session",
			ExitCode:   output.ExitAuthError,
		}
	}
	return nil
}

// cliNavigator is the CLI's stand-in for the browser navigation the platform
// web client performs on session expiry.
type cliNavigator struct {
	printer *output.Printer
	session *session.Store
}

// To surfaces the forced route change as a user-facing notice.
func (n *cliNavigator) To(route string) {
	if n.printer != nil && route == api.LoginRoute {
		n.printer.Warning("Session expired. Run 'geekctl login' to sign in again.")
	}
}

// Reload discards in-memory session state, the CLI analog of a full page
// reload. The persisted token was already cleared by the interception layer.
func (n *cliNavigator) Reload() {
	if n.session != nil {
		_ = n.session.Clear()
	}
}
