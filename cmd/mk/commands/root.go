// Package commands implements the CLI commands for mk.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/mk/internal/app"
	"go.trai.ch/mk/internal/build"
)

// CLI represents the command line interface for mk.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "mk [target]",
		Short:         "Run a build target of the project",
		Long:          targetHelp(a),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runTarget,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("mk version {{.Version}} (commit %s, built %s)\n", build.Commit, build.Date))
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.AddCommand(c.newVersionCmd())

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runTarget(cmd *cobra.Command, args []string) error {
	target := ""
	if len(args) == 1 {
		target = args[0]
	}
	return c.app.Run(cmd.Context(), target)
}

func targetHelp(a *app.App) string {
	var b strings.Builder
	b.WriteString("Run a build target of the project. Without a target, the first one listed runs.\n\nTargets:\n")
	for _, target := range a.Targets() {
		fmt.Fprintf(&b, "  %-8s %s\n", target.Name, target.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects help and version output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
