package cmd

import "github.com/pterm/pterm"

// PrintTableNoPad renders table data without the default left padding.
func PrintTableNoPad(data pterm.TableData, hasHeader bool) {
	_ = pterm.DefaultTable.
		WithHasHeader(hasHeader).
		WithLeftAlignment().
		WithData(data).
		Render()
}
