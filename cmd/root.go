package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagRole      string
	flagDirective string
	flagTransform string
	flagRoot      string
)

var rootCmd = &cobra.Command{
	Use:   "mystmd-listing",
	Short: "mystmd plugin listing dated documents as cards and feeds",
	Long:  `mystmd-listing is an executable mystmd plugin. Run without flags it prints the plugin
specification. With --directive listing it reads the directive node from stdin, writes
RSS and Atom feeds next to the meeting notes, and prints the notes as card nodes.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlugin,
}

func init() {
	rootCmd.Flags().StringVar(&flagRole, "role", "", "Run the named role")
	rootCmd.Flags().StringVar(&flagDirective, "directive", "", "Run the named directive")
	rootCmd.Flags().StringVar(&flagTransform, "transform", "", "Run the named transform")
	rootCmd.Flags().StringVar(&flagRoot, "root", "", "Project root (default: nearest directory with myst.yml or .git/)")
	_ = rootCmd.Flags().MarkHidden("root")
	rootCmd.MarkFlagsMutuallyExclusive("role", "directive", "transform")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlugin(cmd *cobra.Command, args []string) error {
	switch {
	case flagDirective != "":
		return runDirective(flagDirective, flagRoot, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	case flagTransform != "":
		return notImplemented("transform", flagTransform)
	case flagRole != "":
		return notImplemented("role", flagRole)
	default:
		return printResult(cmd.OutOrStdout(), pluginSpec())
	}
}
