package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfisher87/mystmd-plugin-listing/internal/listing"
	"github.com/mfisher87/mystmd-plugin-listing/internal/render"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report documents that would be dropped from or break the listing",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&flagRoot, "root", "", "Project root (default: nearest directory with myst.yml or .git/)")
	rootCmd.AddCommand(validateCmd)
}

type validationIssue struct {
	Key    string
	Reason string
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagRoot)
	if err != nil {
		return err
	}
	docs, err := loadDocuments(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	issues := validateDocuments(docs, cfg.Location)
	out := cmd.OutOrStdout()
	if len(issues) == 0 {
		fmt.Fprintln(out, "All valid.")
		return nil
	}
	printIssues(out, issues)
	return fmt.Errorf("%d document(s) have problems", len(issues))
}

// validateDocuments checks every document against what the listing needs.
// Unlike the directive it keeps going after the first failure.
func validateDocuments(docs []*listing.Document, loc *time.Location) []validationIssue {
	var issues []validationIssue
	for _, d := range docs {
		if _, err := listing.ParseDate(d.RawDate, loc); err != nil {
			issues = append(issues, validationIssue{Key: d.Path, Reason: "missing or unparseable date"})
			continue
		}
		if _, err := render.Card(d); err != nil {
			issues = append(issues, validationIssue{Key: d.Path, Reason: cardProblem(err)})
		}
	}
	return issues
}

func cardProblem(err error) string {
	switch {
	case errors.Is(err, render.ErrMissingTitle):
		return "no title and no heading"
	case errors.Is(err, render.ErrMalformedAuthor):
		return "author is not a list of {name, email} entries"
	default:
		return err.Error()
	}
}

func printIssues(w io.Writer, issues []validationIssue) {
	fmt.Fprintln(w, "PROBLEM")
	fmt.Fprintln(w, "Documents that cannot be listed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "AFFECTED DOCUMENTS")
	for _, issue := range issues {
		fmt.Fprintf(w, "- %s (%s)\n", issue.Key, issue.Reason)
	}
}
