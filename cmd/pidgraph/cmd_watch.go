// File: cmd_watch.go
// Role: fsnotify-based reload loop, adapted from the debounced directory
// watcher in the retrieved corpus down to a single watched file.
package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pidforge/pidgraph/schema"
)

const watchDebounce = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Reload and re-validate a file on every write, logging its graph summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	reload := func() {
		f, err := os.Open(path)
		if err != nil {
			logger.Warn("pidgraph watch: open failed", "path", path, "error", err)
			return
		}
		result, err := schema.Load(f, logger)
		f.Close()
		if err != nil {
			logger.Warn("pidgraph watch: load failed", "path", path, "error", err)
			return
		}
		logger.Info("pidgraph watch: reloaded",
			"path", path,
			"nodes", result.Graph.NodeCount(),
			"edges", result.Graph.EdgeCount(),
		)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the containing directory rather than the file itself: many
	// editors and detection pipelines replace the file atomically
	// (write-to-temp-then-rename), which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	reload()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-sig:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			} else {
				timer.Reset(watchDebounce)
			}
		case <-timerC:
			reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("pidgraph watch: watcher error", "error", err)
		}
	}
}
