package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willmadison/tiltify"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "$0.00"},
		{0.01, "$0.01"},
		{999.99, "$999.99"},
		{20_000, "$20,000.00"},
		{22_663.40, "$22,663.40"},
		{333_333.33, "$333,333.33"},
		{196_060.44, "$196,060.44"},
		{1_234_567.89, "$1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatUSD(tiltify.FromUSD(tt.amount)))
		})
	}
}

func TestCampaignHeader(t *testing.T) {
	campaign := tiltify.Campaign{
		Name:              "Relay FM for St. Jude 2021",
		TotalAmountRaised: tiltify.FromUSD(22_663.40),
		Goal:              tiltify.FromUSD(333_333.33),
	}

	var out bytes.Buffer
	require.NoError(t, Campaign(&out, campaign))

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "Relay FM for St. Jude 2021!", lines[0])
	assert.Equal(t, "$22,663.40 of $333,333.33", lines[1])
}

func TestCampaignReport(t *testing.T) {
	campaign := tiltify.Campaign{
		Name:              "Relay FM for St. Jude 2021",
		TotalAmountRaised: tiltify.FromUSD(22_663.40),
		Goal:              tiltify.FromUSD(333_333.33),
		Milestones: []tiltify.Milestone{
			{Description: "Stephen & Myke go to space via KSP", Amount: tiltify.FromUSD(75_000.00)},
			{Description: "Stephen dissembles his NeXTCube on stream", Amount: tiltify.FromUSD(55_000.00)},
			{Description: "Myke and Stephen attempt Flight Simulator again", Amount: tiltify.FromUSD(20_000.00)},
			{Description: "$1 million raised in 3 years!", Amount: tiltify.FromUSD(196_060.44)},
		},
	}

	var out bytes.Buffer
	require.NoError(t, Campaign(&out, campaign))

	expected := strings.Join([]string{
		"Relay FM for St. Jude 2021!",
		"$22,663.40 of $333,333.33",
		"    ✅        $20,000.00 - Myke and Stephen attempt Flight Simulator again",
		"    🤞 41.2%  $55,000.00 - Stephen dissembles his NeXTCube on stream",
		"    🤞 30.2%  $75,000.00 - Stephen & Myke go to space via KSP",
		"    🤞 11.6%  $196,060.44 - $1 million raised in 3 years!",
		"",
	}, "\n")

	assert.Equal(t, expected, out.String())
}

func TestCampaignSortsMilestonesAscending(t *testing.T) {
	campaign := tiltify.Campaign{
		Name:              "Shuffle",
		TotalAmountRaised: tiltify.FromUSD(0),
		Goal:              tiltify.FromUSD(1),
		Milestones: []tiltify.Milestone{
			{Description: "c", Amount: tiltify.FromUSD(300)},
			{Description: "a", Amount: tiltify.FromUSD(100)},
			{Description: "d", Amount: tiltify.FromUSD(400.40)},
			{Description: "b", Amount: tiltify.FromUSD(200)},
		},
	}

	var out bytes.Buffer
	require.NoError(t, Campaign(&out, campaign))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	var order []string
	for _, line := range lines[2:] {
		order = append(order, line[strings.LastIndex(line, " - ")+3:])
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)

	// The caller's slice is left alone.
	assert.Equal(t, "c", campaign.Milestones[0].Description)
}

func TestCampaignReachedVersusPending(t *testing.T) {
	tests := []struct {
		name      string
		raised    float64
		threshold float64
		reached   bool
		pct       string
	}{
		{name: "passed threshold", raised: 22_663.40, threshold: 20_000, reached: true},
		{name: "below threshold", raised: 22_663.40, threshold: 55_000, pct: "41.2%"},
		{name: "exactly at threshold is pending", raised: 20_000, threshold: 20_000, pct: "100.0%"},
		{name: "just past threshold", raised: 20_000.01, threshold: 20_000, reached: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := tiltify.Campaign{
				Name:              "Boundary",
				TotalAmountRaised: tiltify.FromUSD(tt.raised),
				Goal:              tiltify.FromUSD(1_000_000),
				Milestones: []tiltify.Milestone{
					{Description: "the milestone", Amount: tiltify.FromUSD(tt.threshold)},
				},
			}

			var out bytes.Buffer
			require.NoError(t, Campaign(&out, campaign))

			lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
			require.Len(t, lines, 3)
			milestoneLine := lines[2]

			if tt.reached {
				assert.Contains(t, milestoneLine, "✅")
				assert.NotContains(t, milestoneLine, "%")
			} else {
				assert.Contains(t, milestoneLine, "🤞")
				assert.Contains(t, milestoneLine, tt.pct)
			}
		})
	}
}
