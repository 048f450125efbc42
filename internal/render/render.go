// Package render formats a campaign progress report for the terminal.
package render

import (
	"fmt"
	"io"
	"math"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/willmadison/tiltify"
)

const (
	reachedMarker = "✅"
	pendingMarker = "🤞"
)

var printer = message.NewPrinter(language.English)

// FormatUSD renders an amount in typical currency fashion: a dollar
// sign, comma-grouped dollars, and exactly two cent digits. Dollars are
// truncated; cents get a half-cent nudge so ".40" stored as 0.39999...
// still prints as 40.
func FormatUSD(amount tiltify.Currency) string {
	usd := amount.USD()
	dollars := uint64(usd)
	cents := uint8(100*(usd-math.Trunc(usd)) + 0.005)
	return printer.Sprintf("$%d.%02d", dollars, cents)
}

// Campaign writes a progress report: the campaign name, the raised and
// goal amounts, then one line per milestone in ascending threshold
// order. Reached milestones get a check mark; pending ones show how far
// along the raised amount is. Milestones whose threshold exactly equals
// the raised amount count as pending.
func Campaign(w io.Writer, campaign tiltify.Campaign) error {
	milestones := make([]tiltify.Milestone, len(campaign.Milestones))
	copy(milestones, campaign.Milestones)
	sort.Slice(milestones, func(i, j int) bool {
		return sortKey(milestones[i].Amount) < sortKey(milestones[j].Amount)
	})

	if _, err := fmt.Fprintf(w, "%s!\n", campaign.Name); err != nil {
		return err
	}

	raised := campaign.TotalAmountRaised
	if _, err := fmt.Fprintf(w, "%s of %s\n", FormatUSD(raised), FormatUSD(campaign.Goal)); err != nil {
		return err
	}

	for _, milestone := range milestones {
		marker := pendingMarker
		percentage := fmt.Sprintf("%.1f%%", 100*raised.USD()/milestone.Amount.USD())
		if milestone.Amount.Less(raised) {
			marker, percentage = reachedMarker, ""
		}

		_, err := fmt.Fprintf(w, "    %s %-6s %10s - %s\n", marker, percentage, FormatUSD(milestone.Amount), milestone.Description)
		if err != nil {
			return err
		}
	}

	return nil
}

// sortKey orders milestones by whole cents. Fine for any amount a
// campaign will ever see, but not a general-purpose comparator.
func sortKey(amount tiltify.Currency) uint64 {
	return uint64(amount.USD() * 100)
}
