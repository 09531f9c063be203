package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pidforge/pidgraph/editor"
	"github.com/pidforge/pidgraph/eventstream"
	"github.com/pidforge/pidgraph/metrics"
	"github.com/pidforge/pidgraph/schema"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve a loaded graph's event stream and Prometheus metrics over HTTP",
	Args:  cobra.ExactArgs(1),
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	result, err := schema.Load(f, logger)
	f.Close()
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder()
	e := editor.NewEditor(result.Graph, editor.WithMetrics(recorder))
	defer e.Close()

	hub := eventstream.NewHub(logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go hub.Run(ctx, e.Events())

	mux := http.NewServeMux()
	mux.Handle("/events", hub)
	mux.Handle("/metrics", recorder.Handler())

	server := &http.Server{Addr: serveAddr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	logger.Info("pidgraph: serving", "addr", serveAddr)
	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
	case <-sig:
		fmt.Println("shutting down")
		return server.Shutdown(context.Background())
	}
	return nil
}
