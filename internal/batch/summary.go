package batch

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true)
	summaryWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D4500C", Dark: "#FF8533"})
	summaryDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#847A85", Dark: "#979797"})
)

// printSummary renders the end-of-run report: totals, the actual file
// count on disk, an advisory when anything failed, and the per-category
// content breakdown.
func (r *Runner) printSummary(tally Tally) {
	title := "SUMMARY"
	divider := strings.Repeat("=", 45)
	if r.config.Styled {
		title = summaryTitleStyle.Render(title)
		divider = summaryDimStyle.Render(divider)
	}

	fmt.Fprintf(r.out, "\n%s\n%s\n", divider, title)
	fmt.Fprintf(r.out, "generated: %d\n", tally.Generated)
	fmt.Fprintf(r.out, "skipped:   %d\n", tally.Skipped)
	fmt.Fprintf(r.out, "failed:    %d\n", tally.Failed)
	fmt.Fprintf(r.out, "total:     %d items, %s written\n", tally.Total, humanize.Bytes(uint64(tally.BytesWritten)))

	if count, err := r.store.Count(); err == nil {
		fmt.Fprintf(r.out, "audio files on disk: %d\n", count)
	} else {
		r.logger.Warn("could not count output files", "err", err)
	}

	if tally.Failed > 0 {
		advisory := fmt.Sprintf("%d files failed to generate. Check internet connection.", tally.Failed)
		if r.config.Styled {
			advisory = summaryWarnStyle.Render(advisory)
		}
		fmt.Fprintf(r.out, "\n%s\n", advisory)
	}

	fmt.Fprintf(r.out, "\naudio files include:\n")
	for _, cat := range r.registry.Categories() {
		fmt.Fprintf(r.out, "  %3d %s\n", len(cat.Items), cat.Name)
	}

	tip := "tip: run with -f to force regenerate all files"
	if r.config.Styled {
		tip = summaryDimStyle.Render(tip)
	}
	fmt.Fprintf(r.out, "\n%s\n", tip)
}
