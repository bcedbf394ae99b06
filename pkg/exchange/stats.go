package exchange

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/varnam/knownwords/pkg/query"
)

// FormatStats renders a query.Stats result as a human-readable summary
// using comma-separated counts, for the `stats` CLI subcommand
// (SUPPLEMENTED, see SPEC_FULL.md).
func FormatStats(s query.Stats) string {
	return fmt.Sprintf(
		"%s words, %s patterns",
		humanize.Comma(int64(s.WordCount)),
		humanize.Comma(int64(s.PatternCount)),
	)
}
