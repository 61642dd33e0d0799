package almanac

import "strings"

// Item is a single headline with its attributed source.
type Item struct {
	Title  string
	Source string
}

// regionFeed pairs a lowercase region key with its fixed headline table.
// Matching iterates this slice in declaration order and the first match
// wins, so both the key strings and their order are user-observable.
type regionFeed struct {
	key   string
	items []Item
}

var regionFeeds = []regionFeed{
	{
		key: "new york",
		items: []Item{
			{Title: "Subway expansion reaches Queens waterfront", Source: "Metro Desk"},
			{Title: "Harbor wind farm clears final review", Source: "City Wire"},
			{Title: "Midtown rooftop gardens double in a year", Source: "Five Boroughs"},
		},
	},
	{
		key: "los angeles",
		items: []Item{
			{Title: "Coastal fog rolls back record June gloom", Source: "Pacific Ledger"},
			{Title: "Studio backlots open for night tours", Source: "Basin Report"},
			{Title: "Freeway cap park breaks ground downtown", Source: "City Wire"},
		},
	},
	{
		key: "chicago",
		items: []Item{
			{Title: "Lakefront trail extension opens to cyclists", Source: "Lakeshore Press"},
			{Title: "River walk vendors return for the season", Source: "Loop Bulletin"},
			{Title: "Architecture boat tours add winter runs", Source: "City Wire"},
		},
	},
	{
		key: "houston",
		items: []Item{
			{Title: "Bayou greenway links final two districts", Source: "Gulf Current"},
			{Title: "Spaceport announces weekend open house", Source: "Bay Area Beacon"},
			{Title: "Museum district adds late hours program", Source: "City Wire"},
		},
	},
	{
		key: "miami",
		items: []Item{
			{Title: "Seawall murals finished ahead of schedule", Source: "Biscayne Post"},
			{Title: "Night market returns to the riverwalk", Source: "Magic City Notes"},
			{Title: "Reef restoration hits coral milestone", Source: "City Wire"},
		},
	},
	{
		key: "seattle",
		items: []Item{
			{Title: "Ferry fleet adds two electric vessels", Source: "Sound Dispatch"},
			{Title: "Market expansion preserves historic stalls", Source: "Rainier Review"},
			{Title: "Mountain loop highway reopens early", Source: "City Wire"},
		},
	},
}

// defaultItems serves any non-empty location that matches no region key.
var defaultItems = []Item{
	{Title: "Regional transit ridership climbs again", Source: "Wire Service"},
	{Title: "Local libraries extend weekend hours", Source: "Community Desk"},
	{Title: "Farmers markets report strongest season", Source: "Wire Service"},
}

// generalItems serves the empty location, meaning no regional filter at all.
var generalItems = []Item{
	{Title: "Satellite constellation completes deployment", Source: "Science Wire"},
	{Title: "Global chess league draws record viewership", Source: "Culture Desk"},
	{Title: "Deep sea survey maps new thermal vents", Source: "Science Wire"},
}

// News selects the headline table for a location string. The location is
// lowercased, then checked against each region key in declaration order;
// a region matches when the location contains the key or the key contains
// the location. Unmatched non-empty input falls back to the default regional
// table, and empty input yields the general table.
func News(location string) []Item {
	loc := strings.ToLower(location)
	if loc == "" {
		return generalItems
	}

	for _, feed := range regionFeeds {
		if strings.Contains(loc, feed.key) || strings.Contains(feed.key, loc) {
			return feed.items
		}
	}

	return defaultItems
}
