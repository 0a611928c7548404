package domain

import (
	"testing"
	"time"
)

func queryFixture() []*Post {
	now := time.Now()
	return []*Post{
		{
			ID:          "p1",
			Title:       "Getting Started",
			Content:     "<p>Welcome to your editor</p>",
			Tags:        []string{"welcome", "tutorial"},
			IsPublished: true,
			Pinned:      true,
			CreatedAt:   now.Add(-7 * 24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
		{
			ID:        "p2",
			Title:     "My First Draft",
			Content:   "<p>Not ready yet</p>",
			Tags:      []string{"draft", "ideas"},
			IsDraft:   true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "p3",
			Title:       "Organizing Ideas",
			Content:     "<p>Use tags for productivity</p>",
			Tags:        []string{"organization", "productivity"},
			IsPublished: true,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-12 * time.Hour),
		},
	}
}

func TestQueryMatches(t *testing.T) {
	posts := queryFixture()

	tests := []struct {
		name     string
		query    Query
		expected []string // matching post IDs in collection order
	}{
		{
			name:     "empty query matches everything",
			query:    Query{},
			expected: []string{"p1", "p2", "p3"},
		},
		{
			name:     "search matches title case-insensitively",
			query:    Query{Search: "getting"},
			expected: []string{"p1"},
		},
		{
			name:     "search matches content",
			query:    Query{Search: "productivity"},
			expected: []string{"p3"},
		},
		{
			name:     "search matches tags",
			query:    Query{Search: "tutor"},
			expected: []string{"p1"},
		},
		{
			name:     "status published",
			query:    Query{Status: StatusPublished},
			expected: []string{"p1", "p3"},
		},
		{
			name:     "status private",
			query:    Query{Status: StatusPrivate},
			expected: []string{"p2"},
		},
		{
			name:     "status draft",
			query:    Query{Status: StatusDraft},
			expected: []string{"p2"},
		},
		{
			name:     "tag filter is exact and case-sensitive",
			query:    Query{Tag: "ideas"},
			expected: []string{"p2"},
		},
		{
			name:     "tag filter mismatching case matches nothing",
			query:    Query{Tag: "Ideas"},
			expected: []string{},
		},
		{
			name:     "predicates combine with AND",
			query:    Query{Search: "ideas", Status: StatusPublished},
			expected: []string{"p3"},
		},
		{
			name:     "AND with no survivors",
			query:    Query{Search: "draft", Status: StatusPublished},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range posts {
				if tt.query.Matches(p) {
					got = append(got, p.ID)
				}
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("matched %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("matched %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestApply_Sorting(t *testing.T) {
	posts := queryFixture()

	tests := []struct {
		name     string
		query    Query
		expected []string
	}{
		{
			name:     "newest keeps pinned first",
			query:    Query{Sort: SortNewest},
			expected: []string{"p1", "p2", "p3"},
		},
		{
			name:     "oldest keeps pinned first",
			query:    Query{Sort: SortOldest},
			expected: []string{"p1", "p3", "p2"},
		},
		{
			name:     "updated keeps pinned first",
			query:    Query{Sort: SortUpdated},
			expected: []string{"p1", "p2", "p3"},
		},
		{
			name:     "published filter with newest sort",
			query:    Query{Status: StatusPublished, Sort: SortNewest},
			expected: []string{"p1", "p3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(posts, tt.query)
			if len(got) != len(tt.expected) {
				t.Fatalf("Apply() returned %d posts, want %d", len(got), len(tt.expected))
			}
			for i, p := range got {
				if p.ID != tt.expected[i] {
					t.Errorf("Apply()[%d] = %s, want %s", i, p.ID, tt.expected[i])
				}
			}
		})
	}
}

func TestApply_PinnedPartition(t *testing.T) {
	posts := queryFixture()
	// Pin the newest post as well so both buckets have entries.
	posts[1].Pinned = true

	for _, order := range []SortOrder{SortNewest, SortOldest, SortUpdated} {
		got := Apply(posts, Query{Sort: order})

		seenUnpinned := false
		for _, p := range got {
			if !p.Pinned {
				seenUnpinned = true
			} else if seenUnpinned {
				t.Errorf("sort=%s: pinned post %s after an unpinned one", order, p.ID)
			}
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	posts := queryFixture()
	originalOrder := []string{posts[0].ID, posts[1].ID, posts[2].ID}

	Apply(posts, Query{Sort: SortOldest})

	for i, id := range originalOrder {
		if posts[i].ID != id {
			t.Fatalf("input slice was reordered: index %d = %s, want %s", i, posts[i].ID, id)
		}
	}
}

func TestPublished(t *testing.T) {
	got := Published(queryFixture())
	if len(got) != 2 {
		t.Fatalf("Published() returned %d posts, want 2", len(got))
	}
	for _, p := range got {
		if !p.IsPublished {
			t.Errorf("Published() leaked unpublished post %s", p.ID)
		}
	}
}

func TestTagFacet(t *testing.T) {
	got := TagFacet(queryFixture())
	expected := []string{"draft", "ideas", "organization", "productivity", "tutorial", "welcome"}

	if len(got) != len(expected) {
		t.Fatalf("TagFacet() = %v, want %v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("TagFacet() = %v, want %v", got, expected)
		}
	}
}

func TestTagFacet_DedupesAcrossPosts(t *testing.T) {
	posts := []*Post{
		{Tags: []string{"go", "web"}},
		{Tags: []string{"web", "go"}},
	}
	got := TagFacet(posts)
	if len(got) != 2 || got[0] != "go" || got[1] != "web" {
		t.Errorf("TagFacet() = %v, want [go web]", got)
	}
}

func TestDedupeTags(t *testing.T) {
	got := DedupeTags([]string{"go", "web", "go", "Go"})
	expected := []string{"go", "web", "Go"}
	if len(got) != len(expected) {
		t.Fatalf("DedupeTags() = %v, want %v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("DedupeTags() = %v, want %v", got, expected)
		}
	}
}
