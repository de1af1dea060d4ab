package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gogo-shortcuts/cli/internal/store"
	"github.com/gogo-shortcuts/cli/pkg/alias"
	"github.com/gogo-shortcuts/cli/pkg/reconcile"
)

// ShortcutStore is the subset of the store that shortcut commands use.
type ShortcutStore interface {
	ReadAliases() (alias.Table, error)
	WriteAliases(alias.Table) error
	ReadOptions() (store.Options, error)
}

// ShortcutsCmd handles shortcut CRUD operations.
type ShortcutsCmd struct {
	store ShortcutStore
}

// AddInput holds input for creating a shortcut.
type AddInput struct {
	Name    string
	URL     string
	Replace bool // overwrite an existing shortcut with the same name
}

// Add creates a new shortcut, or replaces a colliding one when confirmed.
func (c ShortcutsCmd) Add(in AddInput) error {
	table, err := c.store.ReadAliases()
	if err != nil {
		return err
	}

	next, out, err := reconcile.Reconcile(table, reconcile.Submission{
		Name:             in.Name,
		URL:              in.URL,
		EditIndex:        -1,
		ReplaceConfirmed: in.Replace,
	})
	if err != nil {
		return err
	}

	if out.Mutated {
		if err := c.store.WriteAliases(next); err != nil {
			return err
		}
	}

	switch out.Kind {
	case reconcile.Created:
		pterm.Success.Printf("Shortcut %q saved!\n", out.Name)
	case reconcile.Replaced:
		pterm.Success.Printf("Shortcut %q replaced!\n", out.Name)
	case reconcile.Duplicate:
		pterm.Warning.Printf("Shortcut %q already exists (-> %s). Re-run with --replace to overwrite it.\n",
			out.Name, out.ExistingURL)
	}
	return nil
}

// EditInput holds input for editing a shortcut.
type EditInput struct {
	Name    string // shortcut to edit
	NewName string // empty keeps the current name
	NewURL  string // empty keeps the current target
	Replace bool   // confirm overwriting a colliding shortcut
}

// Edit rewrites an existing shortcut. Renaming onto another shortcut's name
// is rejected unless Replace is set; a confirmed replace leaves exactly one
// record with the new name.
func (c ShortcutsCmd) Edit(in EditInput) error {
	table, err := c.store.ReadAliases()
	if err != nil {
		return err
	}

	index := table.IndexOfDuplicate(in.Name, -1)
	if index < 0 {
		pterm.Error.Printf("No shortcut named %q\n", alias.Normalize(in.Name))
		return fmt.Errorf("shortcut not found")
	}
	current := table[index]

	session := reconcile.NewSession()
	session.BeginEdit(index, current)

	name := current.Name
	if in.NewName != "" {
		name = in.NewName
	}
	target := current.Target
	if in.NewURL != "" {
		target = in.NewURL
	}

	session.NameChanged(table, name)
	if session.State() == reconcile.DuplicatePending && !in.Replace {
		pterm.Warning.Printf("Shortcut %q already exists (-> %s). Re-run with --replace to overwrite it.\n",
			alias.Normalize(name), session.ExistingURL())
		return nil
	}

	next, out, err := reconcile.Reconcile(table, session.Submission(name, target))
	if err != nil {
		if errors.Is(err, reconcile.ErrStaleEdit) {
			pterm.Warning.Println("Shortcut changed while editing; nothing was modified.")
			return nil
		}
		return err
	}
	session.Completed(out)

	if out.Mutated {
		if err := c.store.WriteAliases(next); err != nil {
			return err
		}
	}

	switch out.Kind {
	case reconcile.Updated:
		pterm.Success.Printf("Shortcut %q updated!\n", out.Name)
	case reconcile.Replaced:
		pterm.Success.Printf("Shortcut %q replaced!\n", out.Name)
	}
	return nil
}

// RemoveInput holds input for deleting a shortcut.
type RemoveInput struct {
	Name string
}

// Remove deletes a shortcut by name.
func (c ShortcutsCmd) Remove(in RemoveInput) error {
	table, err := c.store.ReadAliases()
	if err != nil {
		return err
	}

	index := table.IndexOfDuplicate(in.Name, -1)
	if index < 0 {
		pterm.Error.Printf("No shortcut named %q\n", alias.Normalize(in.Name))
		return fmt.Errorf("shortcut not found")
	}
	removed := table[index]

	next := table.Clone()
	next = append(next[:index], next[index+1:]...)
	if err := c.store.WriteAliases(next); err != nil {
		return err
	}

	pterm.Success.Printf("Shortcut %q deleted!\n", removed.Name)
	return nil
}

// List prints every shortcut in table order.
func (c ShortcutsCmd) List() error {
	table, err := c.store.ReadAliases()
	if err != nil {
		return err
	}

	if len(table) == 0 {
		pterm.Info.Println("No shortcuts yet. Create your first one with: gogo add <name> <url>")
		return nil
	}

	rows := pterm.TableData{{"#", "Name", "Target"}}
	for i, a := range table {
		rows = append(rows, []string{strconv.Itoa(i), a.Name, a.Target})
	}
	PrintTableNoPad(rows, true)
	return nil
}

// SearchInput holds input for searching shortcuts.
type SearchInput struct {
	Query string
}

// Search filters shortcuts whose name or target contains the query,
// reporting original table indices. Distinct from omnibox suggestions,
// which match on names only.
func (c ShortcutsCmd) Search(in SearchInput) error {
	table, err := c.store.ReadAliases()
	if err != nil {
		return err
	}

	q := strings.ToLower(strings.TrimSpace(in.Query))
	type hit struct {
		index int
		entry alias.Alias
	}
	hits := lo.FilterMap(table, func(a alias.Alias, i int) (hit, bool) {
		if q == "" || strings.Contains(a.Name, q) || strings.Contains(strings.ToLower(a.Target), q) {
			return hit{index: i, entry: a}, true
		}
		return hit{}, false
	})

	if len(hits) == 0 {
		pterm.Info.Printf("No shortcuts match %q\n", in.Query)
		return nil
	}

	rows := pterm.TableData{{"#", "Name", "Target"}}
	for _, h := range hits {
		rows = append(rows, []string{strconv.Itoa(h.index), h.entry.Name, h.entry.Target})
	}
	PrintTableNoPad(rows, true)
	return nil
}

// --- Cobra wiring ---

var addCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Create a shortcut",
	Long:  "Create a shortcut mapping a short name to a URL",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Edit a shortcut",
	Long:  "Change the name or target URL of an existing shortcut",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm", "delete"},
	Short:   "Delete a shortcut",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all shortcuts",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search shortcuts by name or URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)

	addCmd.Flags().Bool("replace", false, "Overwrite an existing shortcut with the same name")

	editCmd.Flags().String("name", "", "New name for the shortcut")
	editCmd.Flags().String("url", "", "New target URL for the shortcut")
	editCmd.Flags().Bool("replace", false, "Overwrite a colliding shortcut when renaming")

	removeCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	replace, _ := cmd.Flags().GetBool("replace")

	c := ShortcutsCmd{store: s}
	return c.Add(AddInput{Name: args[0], URL: args[1], Replace: replace})
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	newName, _ := cmd.Flags().GetString("name")
	newURL, _ := cmd.Flags().GetString("url")
	replace, _ := cmd.Flags().GetBool("replace")

	if newName == "" && newURL == "" {
		return fmt.Errorf("nothing to change: pass --name and/or --url")
	}

	c := ShortcutsCmd{store: s}
	return c.Edit(EditInput{Name: args[0], NewName: newName, NewURL: newURL, Replace: replace})
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		opts, err := s.ReadOptions()
		if err != nil {
			return err
		}
		if opts.ConfirmDelete {
			ok, _ := pterm.DefaultInteractiveConfirm.
				WithDefaultText(fmt.Sprintf("Delete shortcut %q?", alias.Normalize(args[0]))).
				Show()
			if !ok {
				pterm.Info.Println("Cancelled.")
				return nil
			}
		}
	}

	c := ShortcutsCmd{store: s}
	return c.Remove(RemoveInput{Name: args[0]})
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	c := ShortcutsCmd{store: s}
	return c.List()
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	c := ShortcutsCmd{store: s}
	return c.Search(SearchInput{Query: args[0]})
}
