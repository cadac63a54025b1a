// Package commands implements the CLI commands for sassy.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/sassy/internal/adapters/detector"
	"go.trai.ch/sassy/internal/app"
	"go.trai.ch/sassy/internal/build"
)

// CLI represents the command line interface for sassy.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	detect  func() detector.LogFormat
}

// Application represents the application logic interface.
type Application interface {
	Watch(ctx context.Context, opts app.WatchOptions) error
	Compile(ctx context.Context, paths []string, opts app.CompileOptions) error
	WriteConfig(w io.Writer) error
	ConfigureLogging(json, debug bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "sassy",
		Short:         "Compile SCSS stylesheets as they are saved",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Log every pipeline decision")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format: auto, pretty, or json")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		detect: func() detector.LogFormat {
			return detector.DetectEnvironment(os.Stderr)
		},
	}
	rootCmd.PersistentPreRunE = c.configureLogging

	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetDetector overrides log format detection. Used for testing.
func (c *CLI) SetDetector(detect func() detector.LogFormat) {
	c.detect = detect
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) error {
	flag, _ := cmd.Flags().GetString("log-format")
	debug, _ := cmd.Flags().GetBool("debug")

	format, err := detector.ParseFormat(flag)
	if err != nil {
		return err
	}

	format = detector.ResolveFormat(c.detect(), format)
	c.app.ConfigureLogging(format == detector.FormatJSON, debug)
	return nil
}
