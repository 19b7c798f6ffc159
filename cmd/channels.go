package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geek-project/geekctl/internal/output"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List publishing channels",
	Long: `List the channels an article can be filed under. The channel id is
what 'geekctl publish --channel' expects.

Examples:
  geekctl channels
  geekctl channels --json`,
	RunE: runChannels,
}

func init() {
	rootCmd.AddCommand(channelsCmd)

	channelsCmd.Flags().Bool("json", false, "output as JSON")
}

func runChannels(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	printer := newPrinter()

	channels, err := client.Channels(cmd.Context())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(channels)
	}

	printer.Header("Channels")
	table := output.NewTable([]string{"ID", "NAME"})
	for _, ch := range channels {
		table.AddRow([]string{fmt.Sprintf("%d", ch.ID), ch.Name})
	}
	table.Render()

	printer.PrintHints("channels")
	return nil
}
