package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geek-project/geekctl/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Display the current geekctl configuration.

Examples:
  geekctl config               # Show all config
  geekctl config --json        # Output as JSON`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().Bool("json", false, "output as JSON")
}

func runConfig(cmd *cobra.Command, args []string) error {
	printer := newPrinter()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	printer.Header("Current Configuration")

	table := output.NewTable([]string{"KEY", "VALUE"})
	table.AddRow([]string{"api.base_url", cfg.API.BaseURL})
	table.AddRow([]string{"api.timeout", cfg.API.Timeout.String()})
	table.AddRow([]string{"auth.token_file", cfg.Auth.TokenFile})
	table.AddRow([]string{"logging.level", cfg.Logging.Level})
	table.AddRow([]string{"logging.format", cfg.Logging.Format})
	table.AddRow([]string{"output.colors", fmt.Sprintf("%v", cfg.Output.Colors)})
	table.Render()

	if sess.Token() != "" {
		printer.Info("Session: active")
	} else {
		printer.Info("Session: none (run 'geekctl login')")
	}

	return nil
}
