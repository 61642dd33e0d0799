package speech

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgnsrekt/crtcast/internal/almanac"
)

// BuildNarration assembles the single spoken-text string for one speak
// invocation: current date and time, the weather reading, a news
// introduction, and every headline in order. It is pure and deterministic
// given its inputs; the caller supplies the clock reading so narration
// always reflects the moment speak was requested.
func BuildNarration(now time.Time, weather almanac.Reading, items []almanac.Item, hasLocation bool) string {
	var parts []string

	parts = append(parts,
		fmt.Sprintf("Today is %s.", now.Format("Monday, January 2, 2006")),
		fmt.Sprintf("The time is %s.", now.Format("3:04 PM")),
	)

	parts = append(parts, fmt.Sprintf(
		"Conditions for %s: %s, %d degrees Fahrenheit, %d percent humidity.",
		weather.Location,
		strings.ToLower(weather.Condition),
		weather.Temperature,
		weather.Humidity,
	))

	if hasLocation {
		parts = append(parts, fmt.Sprintf("Here are the regional headlines for %s.", weather.Location))
	} else {
		parts = append(parts, "Here are the latest headlines.")
	}

	for i, item := range items {
		parts = append(parts, fmt.Sprintf("Headline %d: %s.", i+1, item.Title))
	}

	return strings.Join(parts, " ")
}
