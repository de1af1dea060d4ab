package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gogo-shortcuts/cli/internal/msghost"
)

var hostCmd = &cobra.Command{
	Use:    "host",
	Short:  "Run the browser native-messaging host",
	Long:   "Speak the native-messaging protocol on stdin/stdout. Launched by the browser, not by hand.",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runHost,
}

func init() {
	rootCmd.AddCommand(hostCmd)
}

func runHost(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	return msghost.New(s).Run(os.Stdin, os.Stdout)
}
