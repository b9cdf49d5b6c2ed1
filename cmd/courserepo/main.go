package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/swfz/courserepo/internal/app"
	"github.com/swfz/courserepo/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown (Ctrl+C)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return newRootCmd(app.Load(), os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Flags default to the environment-derived config and override it.
func newRootCmd(cfg *app.Config, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var application *app.App

	rootCmd := &cobra.Command{
		Use:   "courserepo",
		Short: "Summarize university course data",
		Long: `courserepo loads majors, instructors, students and grades from an
institution directory and prints the majors, instructor and student
progress summaries. It can also serve them over HTTP or browse them
interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := logger.Setup(cfg.LogLevelOrDebug(), cfg.LogFormat, stderr)
			application = app.New(cfg, log, stdout)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Run(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringSliceVarP(&cfg.Dirs, "dir", "d", cfg.Dirs, "Institution directory to load (repeatable)")
	flags.StringVar(&cfg.LayoutPath, "layout", cfg.LayoutPath, "Layout file applied to every directory (default: <dir>/layout.yaml, then built-in)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Enable debug logging")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: pretty|json")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print summary tables (default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Run(cmd.Context())
		},
	}
	for _, c := range []*cobra.Command{rootCmd, reportCmd} {
		c.Flags().StringSliceVarP(&cfg.Reports, "report", "r", cfg.Reports, "Reports to print, in order: majors|instructors|students")
		c.Flags().IntVar(&cfg.MaxCellWidth, "max-width", cfg.MaxCellWidth, "Truncate table cells wider than this (0 = unlimited)")
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the instructor summary page and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Serve(cmd.Context())
		},
	}
	serveCmd.Flags().StringVar(&cfg.ServerPort, "port", cfg.ServerPort, "HTTP port")
	serveCmd.Flags().StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "Read instructor summaries from this database (postgres:// or sqlite path)")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse student progress interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Browse(cmd.Context())
		},
	}

	lookupCmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up student progress by CWID",
		RunE: func(cmd *cobra.Command, args []string) error {
			return application.Lookup(cmd.Context(), stdin)
		},
	}

	rootCmd.AddCommand(reportCmd, serveCmd, browseCmd, lookupCmd)
	return rootCmd
}
