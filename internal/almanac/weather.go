// Package almanac derives the dashboard's weather readings and news feeds
// from a committed location string. Everything here is deterministic: the
// same location always produces the same reading and the same headlines, so
// the dashboard is stable across redraws without any external data source.
package almanac

import "strings"

// Reading is a weather observation derived from a location string.
type Reading struct {
	Location    string // display name, uppercased input or a placeholder
	Condition   string // one of the fixed condition strings
	Temperature int    // degrees Fahrenheit
	Humidity    int    // percent
}

// unknownLocation is displayed when no location has been committed.
const unknownLocation = "UNKNOWN SECTOR"

// conditions is the fixed condition table. Declaration order is observable:
// the reading's condition is selected by hash modulo len(conditions).
var conditions = []string{
	"CLEAR SKIES",
	"PARTLY CLOUDY",
	"OVERCAST",
	"LIGHT RAIN",
	"THUNDERSTORMS",
	"FOG BANKS",
	"HIGH WINDS",
	"SCATTERED SHOWERS",
}

// locationHash sums the byte values of the location string. The empty string
// hashes to zero, which keeps Weather total over all inputs.
func locationHash(location string) int {
	hash := 0
	for i := 0; i < len(location); i++ {
		hash += int(location[i])
	}
	return hash
}

// Weather derives a deterministic reading from a location string. It is a
// pure function: no randomness, no external state, no failure cases.
func Weather(location string) Reading {
	hash := locationHash(location)

	name := unknownLocation
	if location != "" {
		name = strings.ToUpper(location)
	}

	return Reading{
		Location:    name,
		Condition:   conditions[hash%len(conditions)],
		Temperature: 45 + hash%40,
		Humidity:    30 + hash%50,
	}
}

// Conditions returns the fixed condition table in declaration order.
func Conditions() []string {
	out := make([]string, len(conditions))
	copy(out, conditions)
	return out
}
