package cmd

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gogo-shortcuts/cli/pkg/alias"
)

var suggestNameStyle = lipgloss.NewStyle().Bold(true)

var suggestCmd = &cobra.Command{
	Use:   "suggest <url>",
	Short: "Suggest a shortcut name for a URL",
	Long:  "Derive a short, memorable shortcut name from a URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	name := alias.SuggestName(args[0])
	if name == "" {
		pterm.Warning.Printf("Could not derive a name from %q\n", args[0])
		return nil
	}
	pterm.Success.Printf("Suggested name: %s\n", suggestNameStyle.Render(name))
	return nil
}
