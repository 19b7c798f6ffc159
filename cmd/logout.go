package cmd

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Long: `End the current session and remove the persisted token.

Safe to run when no session exists.`,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	if sess.Token() == "" {
		printer.Info("No active session")
		return nil
	}

	if err := sess.Clear(); err != nil {
		return err
	}

	printer.Success("Logged out")
	printer.PrintHints("logout")
	return nil
}
