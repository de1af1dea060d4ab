package cmd

import (
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gogo-shortcuts/cli/pkg/resolve"
)

// Navigator executes navigation commands against the local browser.
type Navigator interface {
	OpenURL(url string) error
}

type browserNavigator struct{}

func (browserNavigator) OpenURL(url string) error {
	return browser.OpenURL(url)
}

// OpenCmd resolves a query and opens the target.
type OpenCmd struct {
	store ShortcutStore
	nav   Navigator
}

// OpenInput holds input for resolving and opening a shortcut.
type OpenInput struct {
	Query string
	// Print suppresses the browser and prints the resolved URL instead.
	Print bool
}

// Open resolves the query against the table and navigates. A terminal has no
// current tab, so placement always sees an absent current URL and the
// replace-vs-new distinction collapses into a single browser open; the full
// decision table is exercised by the native-messaging host, where the
// extension owns real tabs.
func (c OpenCmd) Open(in OpenInput) error {
	table, err := c.store.ReadAliases()
	if err != nil {
		return err
	}

	match := resolve.Resolve(table, in.Query)
	switch match.Kind {
	case resolve.MatchNone:
		pterm.Info.Println("Nothing to open.")
		return nil
	case resolve.MatchNotFound:
		pterm.Warning.Printf("No shortcut named %q. Create it with: gogo add %s <url>\n",
			match.Query, match.Query)
		return nil
	}

	target := match.Target()
	if in.Print {
		pterm.Success.Printf("%s -> %s\n", match.Alias.Name, target)
		return nil
	}
	if err := c.nav.OpenURL(target); err != nil {
		pterm.Error.Printf("Could not open %s\n", target)
		return err
	}
	pterm.Success.Printf("Opening %s -> %s\n", match.Alias.Name, target)
	return nil
}

var openCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a shortcut in the browser",
	Long:  "Resolve a shortcut name and open its target URL in the default browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolP("print", "p", false, "Print the resolved URL instead of opening it")
}

func runOpen(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	print, _ := cmd.Flags().GetBool("print")

	c := OpenCmd{store: s, nav: browserNavigator{}}
	return c.Open(OpenInput{Query: args[0], Print: print})
}
