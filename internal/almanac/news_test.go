package almanac

import "testing"

// TestNewsSubstringMatch tests containment matching in both directions.
func TestNewsSubstringMatch(t *testing.T) {
	tests := []struct {
		name     string
		location string
		wantKey  string
	}{
		{"location contains key", "new york city", "new york"},
		{"key contains location", "chic", "chicago"},
		{"exact match", "seattle", "seattle"},
		{"case insensitive", "CHICAGO", "chicago"},
		{"mixed case with suffix", "Miami Beach", "miami"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want []Item
			for _, feed := range regionFeeds {
				if feed.key == tt.wantKey {
					want = feed.items
				}
			}
			if want == nil {
				t.Fatalf("no region table declared for key %q", tt.wantKey)
			}

			got := News(tt.location)
			if len(got) != len(want) {
				t.Fatalf("News(%q) returned %d items, want %d", tt.location, len(got), len(want))
			}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("News(%q)[%d] = %+v, want %+v", tt.location, i, got[i], want[i])
				}
			}
		})
	}
}

// TestNewsFallbacks tests the default and general table selection.
func TestNewsFallbacks(t *testing.T) {
	// Unmatched non-empty input falls back to the default regional table.
	got := News("atlantis")
	if len(got) != len(defaultItems) || got[0] != defaultItems[0] {
		t.Errorf("News(\"atlantis\") should return the default table, got %+v", got)
	}

	// Empty input means no regional filter at all.
	got = News("")
	if len(got) != len(generalItems) || got[0] != generalItems[0] {
		t.Errorf("News(\"\") should return the general table, got %+v", got)
	}
}

// TestNewsFirstMatchWins tests that table declaration order breaks ties.
func TestNewsFirstMatchWins(t *testing.T) {
	// A location containing two region keys resolves to whichever key is
	// declared first, "new york" here.
	got := News("new york and chicago")
	if got[0] != regionFeeds[0].items[0] {
		t.Errorf("tie should resolve to the first declared region, got %+v", got[0])
	}
}

// TestNewsTableShape tests that every feed carries exactly three headlines.
func TestNewsTableShape(t *testing.T) {
	for _, feed := range regionFeeds {
		if len(feed.items) != 3 {
			t.Errorf("region %q has %d items, want 3", feed.key, len(feed.items))
		}
		for _, item := range feed.items {
			if item.Title == "" || item.Source == "" {
				t.Errorf("region %q has an incomplete item: %+v", feed.key, item)
			}
		}
	}
	if len(defaultItems) != 3 || len(generalItems) != 3 {
		t.Error("default and general tables must each carry 3 items")
	}
}
