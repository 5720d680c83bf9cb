package dataset

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/lvsearch/core"
)

// Write serializes g in the format Load reads back: a "# <Kind>" header followed
// by one "from to" (Labeled: "from to cost") line per edge. Bidirectional graphs
// store each pair twice internally; only the from <= to copy is written.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	kind := g.Kind()

	if _, err := fmt.Fprintf(bw, "# %s graph\n# FromNodeId\tToNodeId\n", kind); err != nil {
		return fmt.Errorf("dataset: write header: %w", err)
	}
	for from, actions := range g.Nodes() {
		for _, a := range actions {
			if kind.Bidirectional() && core.State(from) > a.Target {
				continue
			}
			var err error
			if kind == core.Labeled {
				_, err = fmt.Fprintf(bw, "%d\t%d\t%d\n", from, a.Target, a.Cost)
			} else {
				_, err = fmt.Fprintf(bw, "%d\t%d\n", from, a.Target)
			}
			if err != nil {
				return fmt.Errorf("dataset: write edge %d->%d: %w", from, a.Target, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dataset: flush: %w", err)
	}
	return nil
}
