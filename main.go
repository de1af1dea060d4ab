package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/gogo-shortcuts/cli/cmd"
)

// version is stamped by the release build via -ldflags.
var version = "dev"

func main() {
	cmd.SetMetadata(cmd.Metadata{Version: version})

	if err := fang.Execute(context.Background(), cmd.Root(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
