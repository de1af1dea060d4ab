package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/pterm/pterm"

	"github.com/gogo-shortcuts/cli/internal/store"
	"github.com/gogo-shortcuts/cli/pkg/alias"
)

var outBuf bytes.Buffer

// setupStdoutCapture redirects pterm output into outBuf for assertions.
func setupStdoutCapture(t *testing.T) {
	t.Helper()
	outBuf.Reset()
	pterm.SetDefaultOutput(&outBuf)
	pterm.DisableColor()
	// The package-level prefix printers bind their Writer at init time, so
	// SetDefaultOutput alone does not redirect them.
	pterm.Success.Writer = &outBuf
	pterm.Error.Writer = &outBuf
	pterm.Warning.Writer = &outBuf
	pterm.Info.Writer = &outBuf
	t.Cleanup(func() {
		pterm.SetDefaultOutput(os.Stdout)
		pterm.EnableColor()
		pterm.Success.Writer = os.Stdout
		pterm.Error.Writer = os.Stdout
		pterm.Warning.Writer = os.Stdout
		pterm.Info.Writer = os.Stdout
	})
}

type FakeStore struct {
	ReadAliasesFunc  func() (alias.Table, error)
	WriteAliasesFunc func(alias.Table) error
	ReadOptionsFunc  func() (store.Options, error)
}

func (f *FakeStore) ReadAliases() (alias.Table, error) {
	if f.ReadAliasesFunc != nil {
		return f.ReadAliasesFunc()
	}
	return alias.Table{}, nil
}

func (f *FakeStore) WriteAliases(t alias.Table) error {
	if f.WriteAliasesFunc != nil {
		return f.WriteAliasesFunc(t)
	}
	return nil
}

func (f *FakeStore) ReadOptions() (store.Options, error) {
	if f.ReadOptionsFunc != nil {
		return f.ReadOptionsFunc()
	}
	return store.DefaultOptions(), nil
}
