package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfisher87/mystmd-plugin-listing/internal/listing"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the listing as the directive would order it, without writing feeds",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listNumber  int
	listVerbose bool
)

func init() {
	listCmd.Flags().IntVar(&listNumber, "number", 0, "Number of documents to show (0 for all)")
	listCmd.Flags().BoolVar(&listVerbose, "verbose", false, "Show summaries")
	listCmd.Flags().StringVar(&flagRoot, "root", "", "Project root (default: nearest directory with myst.yml or .git/)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagRoot)
	if err != nil {
		return err
	}
	docs, err := loadDocuments(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	posts := listing.Aggregate(docs, cfg.Location).Limit(listNumber)
	out := cmd.OutOrStdout()
	if posts.Len() == 0 {
		fmt.Fprintln(out, "No documents found.")
		return nil
	}

	for _, d := range posts {
		line := fmt.Sprintf("%s  %s  %s", d.Date.Format("2006-01-02"), d.Path, d.Title)
		if len(d.Author) > 0 {
			line += fmt.Sprintf("  [%s]", d.Author[0].Name)
		}
		fmt.Fprintln(out, line)
		if listVerbose && d.Content != "" {
			fmt.Fprintf(out, "    %s\n", d.Content)
		}
	}
	return nil
}
