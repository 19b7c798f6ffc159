package cmd

import (
	"github.com/spf13/cobra"

	"github.com/geek-project/geekctl/internal/output"
	"github.com/geek-project/geekctl/internal/publish"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <files...>",
	Short: "Upload images",
	Long: `Upload one or more image files and print their remote URLs.

Useful for preparing cover images ahead of 'geekctl publish --image <url>'.

Examples:
  geekctl upload cover.png
  geekctl upload a.png b.png c.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	printer := newPrinter()

	uploader := publish.NewUploader(client, logger)
	imgs, err := uploader.UploadAll(cmd.Context(), args)
	if err != nil {
		printer.Error("Upload failed: %v", err)
		return err
	}

	table := output.NewTable([]string{"FILE", "URL"})
	for i, img := range imgs {
		table.AddRow([]string{args[i], img.ResolveURL()})
	}
	table.Render()

	printer.Success("%d image(s) uploaded", len(imgs))
	printer.PrintHints("upload")
	return nil
}
