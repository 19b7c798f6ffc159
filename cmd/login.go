package cmd

import (
	"github.com/spf13/cobra"

	"github.com/geek-project/geekctl/internal/api"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store a session token",
	Long: `Sign in to the content platform with a mobile number and SMS code.

On success the session token is persisted, so later commands run
authenticated until logout or expiry.

Examples:
  geekctl login --mobile 13800000002 --code 246810`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().String("mobile", "", "mobile number")
	loginCmd.Flags().String("code", "", "SMS verification code")
	_ = loginCmd.MarkFlagRequired("mobile")
	_ = loginCmd.MarkFlagRequired("code")
}

func runLogin(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	mobile, _ := cmd.Flags().GetString("mobile")
	code, _ := cmd.Flags().GetString("code")

	err := sess.Login(cmd.Context(), api.Credentials{Mobile: mobile, Code: code})
	if err != nil {
		printer.Error("Login failed: %v", err)
		return err
	}

	printer.Success("Logged in")
	printer.PrintHints("login")
	return nil
}
