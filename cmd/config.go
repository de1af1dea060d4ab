package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gogo-shortcuts/cli/internal/store"
	"github.com/gogo-shortcuts/cli/pkg/resolve"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gogo options",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show options",
	Long:  "Show all options, or a single one by key",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set an option",
	Long: `Set an option. Keys and accepted values:

  tabBehavior         newTab | replaceTab
  confirmDelete       true | false
  enableAutocomplete  true | false
  themePreference     light | dark | auto`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

func optionValue(opts store.Options, key string) (string, bool) {
	switch key {
	case "tabBehavior":
		return string(opts.TabBehavior), true
	case "confirmDelete":
		return strconv.FormatBool(opts.ConfirmDelete), true
	case "enableAutocomplete":
		return strconv.FormatBool(opts.EnableAutocomplete), true
	case "themePreference":
		return opts.ThemePreference, true
	}
	return "", false
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	opts, err := s.ReadOptions()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		value, ok := optionValue(opts, args[0])
		if !ok {
			return fmt.Errorf("unknown option %q", args[0])
		}
		fmt.Println(value)
		return nil
	}

	rows := pterm.TableData{{"Option", "Value"}}
	for _, key := range []string{"tabBehavior", "confirmDelete", "enableAutocomplete", "themePreference"} {
		value, _ := optionValue(opts, key)
		rows = append(rows, []string{key, value})
	}
	PrintTableNoPad(rows, true)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	opts, err := s.ReadOptions()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "tabBehavior":
		switch resolve.TabBehavior(value) {
		case resolve.TabBehaviorNew, resolve.TabBehaviorReplace:
			opts.TabBehavior = resolve.TabBehavior(value)
		default:
			return fmt.Errorf("tabBehavior must be %q or %q", resolve.TabBehaviorNew, resolve.TabBehaviorReplace)
		}
	case "confirmDelete", "enableAutocomplete":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", key)
		}
		if key == "confirmDelete" {
			opts.ConfirmDelete = b
		} else {
			opts.EnableAutocomplete = b
		}
	case "themePreference":
		switch value {
		case "light", "dark", "auto":
			opts.ThemePreference = value
		default:
			return fmt.Errorf("themePreference must be light, dark, or auto")
		}
	default:
		return fmt.Errorf("unknown option %q", key)
	}

	if err := s.WriteOptions(opts); err != nil {
		return err
	}
	pterm.Success.Printf("%s set to %s\n", key, value)
	return nil
}
