package dataset

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/katalvlaran/lvsearch/core"
)

var (
	// ErrEmptyPath is returned by LoadFile for an empty path.
	ErrEmptyPath = errors.New("dataset: empty path")

	// ErrTooManyStates is returned when a data line names a state at or beyond
	// Options.MaxStates.
	ErrTooManyStates = errors.New("dataset: state id exceeds limit")
)

// DefaultMaxStates bounds the node table of a loaded graph. States are dense
// indices, so the table is as long as the largest id plus one.
const DefaultMaxStates = 1 << 24

// gzipMagic is the two-byte gzip member header.
var gzipMagic = []byte{0x1f, 0x8b}

// maxLineBytes bounds a single dataset line.
const maxLineBytes = 1 << 20

// Stats summarizes one load.
type Stats struct {
	Kind       core.Kind
	Lines      int // non-blank lines after the header
	Comments   int // header comment lines
	Skipped    int // malformed data lines
	States     int
	Edges      int
	Compressed bool
	Elapsed    time.Duration
}

// Option configures Load and LoadFile.
type Option func(*Options)

// Options holds loader knobs.
type Options struct {
	// Logger receives a debug record per load; defaults to a discard logger.
	Logger *slog.Logger

	// MaxStates caps the node table; a state id >= MaxStates fails the load
	// with ErrTooManyStates. Zero or negative disables the cap.
	MaxStates int
}

// DefaultOptions returns Options with a discard logger and DefaultMaxStates.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.DiscardHandler), MaxStates: DefaultMaxStates}
}

// WithLogger sets the logger used for load summaries. Nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxStates sets Options.MaxStates. Zero or negative disables the cap.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		o.MaxStates = n
	}
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts ...Option) (*core.Graph, Stats, error) {
	if path == "" {
		return nil, Stats{}, ErrEmptyPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer f.Close()

	g, st, err := Load(f, opts...)
	if err != nil {
		return nil, st, fmt.Errorf("dataset: load %q: %w", path, err)
	}
	return g, st, nil
}

// Load reads an edge list from r, transparently decompressing gzip input.
// The header (leading comment lines) decides the graph kind; every non-blank line
// after it is parsed with ParseLine and inserted with core.Graph.AddEdge, so a
// '#' inside the body does not make a line a comment.
//
// State ids are used directly as node table indices: a file naming state 10^9
// needs a table of 10^9 entries. Options.MaxStates turns such input into
// ErrTooManyStates instead of an allocation failure.
func Load(r io.Reader, opts ...Option) (*core.Graph, Stats, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	var st Stats

	br := bufio.NewReader(r)
	if magic, err := br.Peek(len(gzipMagic)); err == nil && bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, st, fmt.Errorf("dataset: gzip header: %w", err)
		}
		defer zr.Close()
		st.Compressed = true
		r = zr
	} else {
		r = br
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// 1. Header: collect comment lines up to the first data line.
	var (
		header []string
		first  string
		ok     bool
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if IsComment(line) {
			header = append(header, line)
			st.Comments++
			continue
		}
		first, ok = line, true
		break
	}
	st.Kind = DetectKind(header)
	g := core.NewGraph(st.Kind)

	// 2. Body: the first data line, then everything else.
	insert := func(line string) error {
		if strings.TrimSpace(line) == "" {
			return nil
		}
		st.Lines++
		from, to, cost, ok := ParseLine(line, st.Kind)
		if !ok {
			st.Skipped++
			return nil
		}
		if top := max(from, to); o.MaxStates > 0 && uint64(top) >= uint64(o.MaxStates) {
			return fmt.Errorf("%w: state %d on line %d (limit %d)", ErrTooManyStates, top, lineNo, o.MaxStates)
		}
		g.AddEdge(from, to, cost)
		return nil
	}
	if ok {
		if err := insert(first); err != nil {
			return nil, st, err
		}
		for sc.Scan() {
			lineNo++
			if err := insert(sc.Text()); err != nil {
				return nil, st, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("dataset: scan: %w", err)
	}

	st.States = g.Len()
	st.Edges = g.EdgeCount()
	st.Elapsed = time.Since(start)

	o.Logger.LogAttrs(context.Background(), slog.LevelDebug, "dataset loaded",
		slog.String("kind", st.Kind.String()),
		slog.Int("states", st.States),
		slog.Int("edges", st.Edges),
		slog.Int("skipped", st.Skipped),
		slog.Bool("gzip", st.Compressed),
		slog.Duration("elapsed", st.Elapsed),
	)
	return g, st, nil
}
