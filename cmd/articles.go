package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geek-project/geekctl/internal/api"
	"github.com/geek-project/geekctl/internal/output"
)

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Browse published articles",
}

var articlesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List articles",
	Long: `List the signed-in user's articles, newest first.

Examples:
  geekctl articles list
  geekctl articles list --page 2 --per-page 20
  geekctl articles list --json`,
	RunE: runArticlesList,
}

var articlesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one article",
	Long: `Fetch a single article by id.

Examples:
  geekctl articles get 8218
  geekctl articles get 8218 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runArticlesGet,
}

func init() {
	rootCmd.AddCommand(articlesCmd)
	articlesCmd.AddCommand(articlesListCmd)
	articlesCmd.AddCommand(articlesGetCmd)

	articlesListCmd.Flags().Int("page", 1, "page number")
	articlesListCmd.Flags().Int("per-page", 10, "articles per page")
	articlesListCmd.Flags().Bool("json", false, "output as JSON")

	articlesGetCmd.Flags().Bool("json", false, "output as JSON")
}

func runArticlesList(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	printer := newPrinter()

	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	list, err := client.ListArticles(cmd.Context(), api.ListOptions{Page: page, PerPage: perPage})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	if len(list.Results) == 0 {
		printer.Info("No articles")
		return nil
	}

	printer.Header("Articles")
	table := output.NewTable([]string{"ID", "TITLE", "STATUS", "PUBLISHED", "COMMENTS"})
	for _, art := range list.Results {
		table.AddRow([]string{
			art.ID,
			art.Title,
			printer.StatusBadge(art.StatusLabel()) + " " + art.StatusLabel(),
			art.PubDate,
			fmt.Sprintf("%d", art.CommentCount),
		})
	}
	table.Render()
	printer.Info("Page %d, %d article(s) total", list.Page, list.TotalCount)

	printer.PrintHints("articles list")
	return nil
}

func runArticlesGet(cmd *cobra.Command, args []string) error {
	if err := requireSession(); err != nil {
		return err
	}
	printer := newPrinter()

	art, err := client.GetArticle(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(art)
	}

	printer.Header(art.Title)
	printer.Print("  id:      %s", art.ID)
	printer.Print("  status:  %s %s", printer.StatusBadge(art.StatusLabel()), art.StatusLabel())
	printer.Print("  channel: %d", art.ChannelID)
	printer.Print("  cover:   %s", art.Cover.Type)
	if len(art.Cover.Images) > 0 {
		printer.Print("  images:  %s", strings.Join(art.Cover.Images, ", "))
	}
	if art.PubDate != "" {
		printer.Print("  date:    %s", art.PubDate)
	}
	return nil
}
