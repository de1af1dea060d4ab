package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gogo-shortcuts/cli/internal/transfer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import shortcuts from a JSON file",
	Long:  "Merge shortcuts from a JSON export into the store. Existing names are never overwritten.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	table, err := s.ReadAliases()
	if err != nil {
		return err
	}

	result, err := transfer.Import(table, data)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	if result.Imported == 0 {
		pterm.Warning.Println("All shortcuts already exist!")
		return nil
	}

	if err := s.WriteAliases(result.Table); err != nil {
		return err
	}

	plural := "s"
	if result.Imported == 1 {
		plural = ""
	}
	if result.Skipped > 0 {
		pterm.Success.Printf("%d shortcut%s imported successfully! (%d already existed)\n",
			result.Imported, plural, result.Skipped)
	} else {
		pterm.Success.Printf("%d shortcut%s imported successfully!\n", result.Imported, plural)
	}
	return nil
}
