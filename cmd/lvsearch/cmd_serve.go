package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/api"
	"github.com/katalvlaran/lvsearch/dataset"
)

const shutdownTimeout = 5 * time.Second

type serveOptions struct {
	file     string
	addr     string
	maxLimit int
}

func newServeCmd() *cobra.Command {
	var o serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve searches over a dataset through HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.file, "file", "F", "", "dataset path, plain or gzip-compressed (required)")
	f.StringVar(&o.addr, "addr", ":8080", "listen address")
	f.IntVar(&o.maxLimit, "max-limit", api.DefaultMaxLimit, "largest depth limit a request may ask for")
	return cmd
}

func runServe(cmd *cobra.Command, o serveOptions) error {
	if o.file == "" {
		return errors.New("serve: --file is required")
	}

	logger := loggerFrom(cmd.Context())
	g, stats, err := dataset.LoadFile(o.file, dataset.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		slog.String("file", o.file),
		slog.Int("states", stats.States),
		slog.Int("edges", stats.Edges),
	)

	srv := api.New(g, api.WithLogger(logger), api.WithMaxLimit(o.maxLimit))

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen(o.addr) }()

	select {
	case err = <-errc:
		return err
	case <-cmd.Context().Done():
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
