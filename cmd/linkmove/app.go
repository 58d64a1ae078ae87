package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sjmulder/linkmove/internal/filesystem"
	lmio "github.com/sjmulder/linkmove/internal/io"
	"github.com/sjmulder/linkmove/internal/pathing"
	"github.com/sjmulder/linkmove/internal/queue"
	"github.com/sjmulder/linkmove/internal/schema"
)

type App struct {
	pathingHandler *pathing.Handler
	ioHandler      *lmio.Handler
}

func NewApp(pathingHandler *pathing.Handler, ioHandler *lmio.Handler) *App {
	return &App{
		pathingHandler: pathingHandler,
		ioHandler:      ioHandler,
	}
}

func newDefaultApp(verbose bool, out io.Writer) *App {
	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	fsHandler := filesystem.NewHandler(osProvider, unixProvider)
	pathingHandler := pathing.NewHandler(osProvider)
	ioHandler := lmio.NewHandler(fsHandler, osProvider, unixProvider, lmio.Options{
		Verbose: verbose,
		Out:     out,
	})

	return NewApp(pathingHandler, ioHandler)
}

// Launch relocates all sources to target, every source replaced by a link.
// The destinations are all resolved before the first source is moved.
func (app *App) Launch(ctx context.Context, sources []string, target string) error {
	relocations, err := app.pathingHandler.Resolve(sources, target)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	q := queue.NewQueue[*schema.Relocation]()
	q.Enqueue(relocations...)

	err = app.ioHandler.ProcessQueue(ctx, q)

	progress := q.Progress()
	slog.Debug("Finished:",
		"successful", progress.SuccessItems,
		"failed", progress.FailedItems,
		"remaining", progress.RemainingItems,
		"elapsed", progress.FinishTime.Sub(progress.StartTime).Round(time.Millisecond),
	)

	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	return nil
}
