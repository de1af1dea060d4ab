package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/gogo-shortcuts/cli/internal/transfer"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export shortcuts to a JSON file",
	Long:  "Write every shortcut to a JSON file. Defaults to gogo-shortcuts-<date>.json in the current directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	table, err := s.ReadAliases()
	if err != nil {
		return err
	}

	data, err := transfer.Export(table)
	if err != nil {
		pterm.Warning.Println("No shortcuts to export!")
		return nil
	}

	path := transfer.ExportFilename(time.Now())
	if len(args) == 1 {
		path = args[0]
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	plural := "s"
	if len(table) == 1 {
		plural = ""
	}
	pterm.Success.Printf("%d shortcut%s exported to %s\n", len(table), plural, path)
	return nil
}
