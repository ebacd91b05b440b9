package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/san-kum/teleprompter/internal/config"
	"github.com/san-kum/teleprompter/internal/console"
	"github.com/san-kum/teleprompter/internal/logs"
	"github.com/san-kum/teleprompter/internal/pace"
	"github.com/san-kum/teleprompter/internal/session"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// main registers the root command and its flags, then runs it with a context
// canceled on SIGINT or SIGTERM. It exits with status 1 if the run fails.
func main() {
	opts := config.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:           "teleprompter [file]",
		Short:         "show a text file word by word at an adjustable pace",
		Long:          "Show a text file word by word. Press < to slow down, > to speed up and x to quit.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Source = args[0]
			}
			return run(cmd.Context(), opts)
		},
	}
	rootCmd.Flags().IntVar(&opts.DelayMs, "delay", config.DefaultDelayMs, "initial delay between words in milliseconds")
	rootCmd.Flags().StringVar(&opts.LogFile, "log-file", "", "append debug logs to this file")
	rootCmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "do not print key hints and summary")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("teleprompter", version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logs.New(os.Stderr, opts.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	term, err := console.Start(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.Restore()

	styles := console.NewStyles(os.Stderr)
	if !opts.Quiet {
		io.WriteString(term.Output(os.Stderr), styles.Banner(opts.Source, opts.DelayMs))
	}

	p := pace.NewWithDelay(opts.DelayMs)
	res, err := session.New(opts.Source, term.Output(os.Stdout), os.Stdin, p).
		WithLogger(logger).
		Run(ctx)

	if rerr := term.Restore(); rerr != nil {
		logger.Error("restore terminal", "error", rerr)
	}
	if err != nil {
		return err
	}
	if !opts.Quiet {
		if !res.Finished {
			fmt.Fprintln(os.Stderr)
		}
		fmt.Fprint(os.Stderr, styles.Summary(res.Finished, res.DelayMs))
	}
	return nil
}
