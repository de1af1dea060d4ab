package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gogo-shortcuts/cli/internal/store"
)

// Metadata holds build information stamped at release time.
type Metadata struct {
	Version string
}

var metadata = Metadata{Version: "dev"}

// SetMetadata records build info before execution. Called by main.
func SetMetadata(m Metadata) {
	if m.Version != "" {
		metadata = m
	}
}

var rootCmd = &cobra.Command{
	Use:   "gogo",
	Short: "Manage and open URL shortcuts",
	Long: `gogo manages short aliases for URLs ("git" -> "https://github.com") and
opens them from the terminal or from the browser address bar via the
native-messaging host.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A local .env may override the config dir during development.
		_ = godotenv.Load()
	},
}

// Root returns the root command for execution by main.
func Root() *cobra.Command {
	return rootCmd
}

// configDir resolves where the store lives: GOGO_CONFIG_DIR, or the
// platform config dir.
func configDir() (string, error) {
	if dir := os.Getenv("GOGO_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "gogo"), nil
}

// openStore opens the file store backing every command.
func openStore() (store.Store, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return store.NewFileStore(dir)
}
