package dataset

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/core"
)

// ParseLine splits a data line into (from, to[, cost]).
// Commas count as whitespace. The cost column is read only for Labeled graphs and
// defaults to 0, also when it is present but not an integer (e.g. "2.5" or a
// trailing "# note"). A negative integer cost makes the line malformed.
// Fields beyond the expected ones are ignored.
func ParseLine(line string, kind core.Kind) (from, to core.State, cost int32, ok bool) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) < 2 {
		return 0, 0, 0, false
	}

	f, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	t, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return 0, 0, 0, false
	}

	if kind == core.Labeled && len(fields) > 2 {
		if c, err := strconv.ParseInt(fields[2], 10, 32); err == nil {
			if c < 0 {
				return 0, 0, 0, false
			}
			cost = int32(c)
		}
	}

	return core.State(f), core.State(t), cost, true
}
