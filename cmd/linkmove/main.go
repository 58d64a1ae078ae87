package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var Version string

// ErrUsage occurs when the command line cannot be used to start a run.
var ErrUsage = errors.New("usage error")

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func newRootCmd(stdout io.Writer, stderr io.Writer) *cobra.Command {
	var verbose, debug bool

	cmd := &cobra.Command{
		Use:   "linkmove [-v] source ... target",
		Short: "Move files and leave symbolic links behind",
		Long: `linkmove moves every source to target and replaces each source with a
symbolic link to its new location. With a single source, target is the new
path unless it is an existing directory. With multiple sources, target must
be an existing directory.`,
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(2)(cmd, args); err != nil { //nolint:mnd
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(stderr, debug)

			if err := sandbox(); err != nil {
				slog.Warn("Failure restricting the process (skipped)",
					"err", err,
				)
			}

			app := newDefaultApp(verbose, stderr)

			return app.Launch(cmd.Context(), args[:len(args)-1], args[len(args)-1])
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every destination path")
	cmd.Flags().BoolVar(&debug, "debug", false, "log every relocation step")

	return cmd
}

// run executes the command line args and returns the exit code.
func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)

		if errors.Is(err, ErrUsage) {
			fmt.Fprint(stderr, cmd.UsageString())
		}

		return 1
	}

	return 0
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	setupSignalHandlers(cancel)

	exitCode := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	cancel()
	os.Exit(exitCode)
}
