package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

func setupLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		}),
	))
}

// opTags matches the "(pkg-op) " tags that errors are wrapped with, at the
// start of the message or of a wrapped cause.
//
//nolint:gochecknoglobals
var opTags = regexp.MustCompile(`(^|: )(\([a-z]+(-[a-z]+)*\) )+`)

// errorText returns the message of err without its operation tags, leaving
// the paths and causes.
func errorText(err error) string {
	return opTags.ReplaceAllString(err.Error(), "$1")
}

// printError writes err as a single line to w, styled where w is a terminal.
func printError(w io.Writer, err error) {
	renderer := lipgloss.NewRenderer(w)

	prefix := renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Render("linkmove:")

	fmt.Fprintln(w, prefix, errorText(err))
}
