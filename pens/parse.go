package pens

import (
	"fmt"
	"strconv"

	"github.com/octiline/octigrid/config"
)

// ErrBadDirection is returned when an entry's direction column is
// outside 0..7. Entry is the 1-based position among parsed entries,
// not a source line number (blank lines and comments don't count).
type ErrBadDirection struct {
	Entry     int
	Direction int
}

func (e *ErrBadDirection) Error() string {
	return fmt.Sprintf("pens: entry %d: direction %d out of range 0..7", e.Entry, e.Direction)
}

// Parse reads the textual geo-penalty override table (one line per
// override: "<edgeID> <direction 0-7> <penalty>", blank lines and
// "#"-comments allowed) and returns it as a config.GeoPenKey map ready
// to pass to config.WithGeoPens.
//
// A malformed line is rejected with a participle error carrying the
// offending line/column, rather than silently producing a wrong
// penalty.
func Parse(src string) (map[config.GeoPenKey]float64, error) {
	parsed, err := penParser.ParseString("", src)
	if err != nil {
		return nil, err
	}

	out := make(map[config.GeoPenKey]float64, len(parsed.Entries))
	for i, e := range parsed.Entries {
		edgeID, err := strconv.Atoi(e.EdgeID)
		if err != nil {
			return nil, fmt.Errorf("pens: entry %d: bad edge id %q: %w", i+1, e.EdgeID, err)
		}
		dir, err := strconv.Atoi(e.Direction)
		if err != nil {
			return nil, fmt.Errorf("pens: entry %d: bad direction %q: %w", i+1, e.Direction, err)
		}
		if dir < 0 || dir > 7 {
			return nil, &ErrBadDirection{Entry: i + 1, Direction: dir}
		}
		penalty, err := strconv.ParseFloat(e.Penalty, 64)
		if err != nil {
			return nil, fmt.Errorf("pens: entry %d: bad penalty %q: %w", i+1, e.Penalty, err)
		}

		out[config.GeoPenKey{EdgeID: edgeID, Direction: dir}] = penalty
	}

	return out, nil
}
