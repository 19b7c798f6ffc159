package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Long: `Fetch and display the profile of the signed-in user, along with what
the session token says about itself.

Examples:
  geekctl whoami
  geekctl whoami --json`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)

	whoamiCmd.Flags().Bool("json", false, "output as JSON")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	printer := newPrinter()

	profile, err := sess.FetchProfile(cmd.Context())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	printer.Info("Signed in as %s", printer.Bold(profile.Name))
	if profile.Mobile != "" {
		printer.Print("  mobile: %s", profile.Mobile)
	}
	if profile.Intro != "" {
		printer.Print("  intro:  %s", profile.Intro)
	}

	info := sess.Inspect()
	switch {
	case info.Expired():
		printer.Warning("Token expired %s", info.ExpiresAt.Format(time.RFC3339))
	case info.HasExpiry():
		printer.Print("  token expires: %s", info.ExpiresAt.Format(time.RFC3339))
	}

	printer.PrintHints("whoami")
	return nil
}
