// Package cli implements the texpack command-line interface.
//
// The pack command imports images, packs them into atlas pages and writes each page together
// with a manifest. The config command prints the effective configuration. All commands
// support --verbose (-v) for debug-level logging; loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCmd creates the root command. Logs are written to logOut.
func NewRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "texpack",
		Short:         "texpack packs images into texture atlases",
		Long:          `texpack is a build-time tool that packs sprites and other images into texture atlas pages, writing each page with a manifest of where every image was placed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("texpack %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPackCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// Execute runs the texpack CLI.
func Execute(ctx context.Context, logOut io.Writer) error {
	if err := NewRootCmd(logOut).ExecuteContext(ctx); err != nil {
		newLogger(logOut, log.InfoLevel).Error(err)
		return err
	}
	return nil
}

// vim: ts=4
