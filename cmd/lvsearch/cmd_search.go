package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/dataset"
	"github.com/katalvlaran/lvsearch/report"
	"github.com/katalvlaran/lvsearch/search"
)

type searchOptions struct {
	file      string
	start     uint32
	goal      uint32
	all       bool
	limit     int
	algorithm string
	path      bool
}

func newSearchCmd() *cobra.Command {
	var o searchOptions

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search between two states of a dataset and print a result table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, o)
		},
	}

	names := make([]string, 0, 6)
	for _, st := range append(search.Strategies(), search.Tree) {
		names = append(names, st.String())
	}

	f := cmd.Flags()
	f.StringVarP(&o.file, "file", "F", "", "dataset path, plain or gzip-compressed (required)")
	f.Uint32VarP(&o.start, "start", "i", 0, "initial state (required)")
	f.Uint32VarP(&o.goal, "goal", "f", 0, "goal state (required)")
	f.BoolVarP(&o.all, "all", "a", false, "run every strategy except tree-search")
	f.IntVarP(&o.limit, "limit", "l", search.DefaultDepthLimit, "depth limit of depth-limited search")
	f.StringVarP(&o.algorithm, "algorithm", "r", search.BiDirectional.String(), "strategy: "+strings.Join(names, ", "))
	f.BoolVar(&o.path, "path", false, "print the path of every found result")
	return cmd
}

func runSearch(cmd *cobra.Command, o searchOptions) error {
	flags := cmd.Flags()
	if o.file == "" {
		return errors.New("search: --file is required")
	}
	if !flags.Changed("start") || !flags.Changed("goal") {
		return errors.New("search: --start and --goal are required")
	}

	strategies := search.Strategies()
	if !o.all {
		st, err := search.ParseStrategy(o.algorithm)
		if err != nil {
			return err
		}
		strategies = []search.Strategy{st}
	}

	logger := loggerFrom(cmd.Context())
	g, stats, err := dataset.LoadFile(o.file, dataset.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("dataset loaded",
		slog.String("file", o.file),
		slog.String("kind", stats.Kind.String()),
		slog.Int("states", stats.States),
		slog.Int("edges", stats.Edges),
		slog.Int("skipped", stats.Skipped),
		slog.Bool("compressed", stats.Compressed),
		slog.Duration("elapsed", stats.Elapsed),
	)

	p, err := search.NewProblem(o.start, o.goal, g,
		search.WithDepthLimit(o.limit),
		search.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := report.NewPrinter(out, plainOutput(out))
	if err = printer.Intro(o.start, o.goal); err != nil {
		return err
	}
	if err = printer.Header(); err != nil {
		return err
	}

	for _, st := range strategies {
		began := time.Now()
		res := p.Run(st)
		row := report.Row{Strategy: st, Result: res, Elapsed: time.Since(began)}
		if err = printer.Row(row); err != nil {
			return err
		}
		if o.path && res.Found() {
			if _, err = fmt.Fprintf(out, "  path: %s\n", report.FormatPath(res.Path())); err != nil {
				return err
			}
		}
	}
	return nil
}

// plainOutput reports whether w should receive unstyled text: anything that
// is not a terminal.
func plainOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	return !ok || report.AutoPlain(f)
}
