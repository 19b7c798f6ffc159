package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geek-project/geekctl/internal/cover"
	"github.com/geek-project/geekctl/internal/output"
	"github.com/geek-project/geekctl/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Create or update an article",
	Long: `Publish an article to the content platform.

Without --id a new article is created. With --id the existing article is
fetched first, its fields and cover are backfilled, flag overrides are
applied on top, and an update is submitted.

The cover type must match the number of images: 0 (no cover), 1 (single
image), or 3 (triple image). Images given as local paths are uploaded;
http(s) URLs are used as-is.

Examples:
  geekctl publish --title "Hello" --channel 1 --content-file draft.html
  geekctl publish --title "Hello" --channel 1 --content "<p>hi</p>" \
      --cover-type 1 --image cover.png
  geekctl publish --id 8218 --title "New title"   # Edit an existing article`,
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)

	publishCmd.Flags().String("id", "", "existing article id (edit mode)")
	publishCmd.Flags().String("title", "", "article title")
	publishCmd.Flags().Int64("channel", 0, "channel id to file the article under")
	publishCmd.Flags().String("content", "", "article content (HTML)")
	publishCmd.Flags().String("content-file", "", "read article content from a file")
	publishCmd.Flags().Int("cover-type", 0, "cover mode: 0 none, 1 single, 3 triple")
	publishCmd.Flags().StringArray("image", nil, "cover image: local path to upload or http(s) URL (repeatable)")
}

func runPublish(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	printer := newPrinter()
	ctx := cmd.Context()

	id, _ := cmd.Flags().GetString("id")
	draft := publish.Draft{ID: id}
	sel := cover.NewSelector(cover.None)

	// Edit mode: backfill the form from the persisted article before
	// applying overrides. The stored cover is trusted as-is.
	if id != "" {
		art, err := client.GetArticle(ctx, id)
		if err != nil {
			printer.Error("Failed to load article %s: %v", id, err)
			return err
		}
		draft.Title = art.Title
		draft.Content = art.Content
		draft.ChannelID = art.ChannelID
		sel.LoadExisting(art.Cover.Type, art.Cover.Images)
	}

	if cmd.Flags().Changed("title") {
		draft.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("channel") {
		draft.ChannelID, _ = cmd.Flags().GetInt64("channel")
	}

	content, err := resolveContent(cmd)
	if err != nil {
		return err
	}
	if content != "" {
		draft.Content = content
	}

	if err := validateDraft(draft); err != nil {
		return err
	}

	// New images replace the session's image buffer; the display list
	// follows, then the cover mode re-derives it.
	if refs, _ := cmd.Flags().GetStringArray("image"); len(refs) > 0 {
		uploader := publish.NewUploader(client, logger)
		imgs, err := uploader.UploadAll(ctx, refs)
		if err != nil {
			printer.Error("Image upload failed: %v", err)
			return err
		}
		sel.SetImages(imgs)
	}
	if cmd.Flags().Changed("cover-type") || id == "" {
		n, _ := cmd.Flags().GetInt("cover-type")
		t, err := cover.ParseType(n)
		if err != nil {
			return &output.CLIError{
				Summary:  err.Error(),
				ExitCode: output.ExitUsageError,
			}
		}
		sel.SetType(t)
	}

	flow := publish.NewFlow(client, logger)
	res, err := flow.Submit(ctx, draft, sel)
	if err != nil {
		var mismatch *cover.MismatchError
		if errors.As(err, &mismatch) {
			// Local validation failure: nothing was sent, inputs are intact
			printer.Warning("Cover type and image count do not match: %v", mismatch)
			return &output.CLIError{
				Summary:    "cover type and image count do not match",
				Detail:     mismatch.Error(),
				Suggestion: "Adjust --cover-type or the number of --image flags",
				ExitCode:   output.ExitValidationError,
			}
		}
		if res.Updated || id != "" {
			printer.Error("Failed to update article: %v", err)
		} else {
			printer.Error("Failed to publish article: %v", err)
		}
		return err
	}

	if res.Updated {
		printer.Success("Article %s updated", res.Article.ID)
	} else {
		printer.Success("Article %s published", res.Article.ID)
	}
	printer.PrintHints("publish")
	return nil
}

// resolveContent reads the article body from --content or --content-file.
func resolveContent(cmd *cobra.Command) (string, error) {
	content, _ := cmd.Flags().GetString("content")
	file, _ := cmd.Flags().GetString("content-file")

	if content != "" && file != "" {
		return "", &output.CLIError{
			Summary:  "both --content and --content-file given",
			ExitCode: output.ExitUsageError,
		}
	}
	if file == "" {
		return content, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading content file: %w", err)
	}
	return string(data), nil
}

// validateDraft checks the required form fields after backfill and overrides.
func validateDraft(d publish.Draft) error {
	missing := ""
	switch {
	case d.Title == "":
		missing = "--title"
	case d.ChannelID == 0:
		missing = "--channel"
	case d.Content == "":
		missing = "--content or --content-file"
	}
	if missing == "" {
		return nil
	}
	return &output.CLIError{
		Summary:    "missing " + missing,
		Suggestion: "Run 'geekctl channels' to see available channels",
		ExitCode:   output.ExitUsageError,
	}
}
