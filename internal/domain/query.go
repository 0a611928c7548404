package domain

import (
	"sort"
	"strings"
)

// SortOrder selects the comparator applied to listing results.
type SortOrder string

const (
	// SortNewest orders by CreatedAt descending.
	SortNewest SortOrder = "newest"
	// SortOldest orders by CreatedAt ascending.
	SortOldest SortOrder = "oldest"
	// SortUpdated orders by UpdatedAt descending.
	SortUpdated SortOrder = "updated"
)

// StatusFilter restricts listing results by visibility flags.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPublished StatusFilter = "published"
	StatusPrivate   StatusFilter = "private"
	StatusDraft     StatusFilter = "draft"
)

// Query describes one listing request over the post collection.
// The zero value means: no search term, all statuses, no tag, newest first.
type Query struct {
	Search string       // free-text term, case-insensitive
	Status StatusFilter // empty or StatusAll accepts every post
	Tag    string       // exact tag, case-sensitive; empty = no tag filter
	Sort   SortOrder    // empty defaults to SortNewest
}

// Matches reports whether a post satisfies every active predicate of the
// query (logical AND). The search term matches against title, content, or
// any tag, case-insensitively.
func (q Query) Matches(p *Post) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		hit := strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Content), term)
		if !hit {
			for _, tag := range p.Tags {
				if strings.Contains(strings.ToLower(tag), term) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}

	switch q.Status {
	case "", StatusAll:
	case StatusPublished:
		if !p.IsPublished {
			return false
		}
	case StatusPrivate:
		if p.IsPublished {
			return false
		}
	case StatusDraft:
		if !p.IsDraft {
			return false
		}
	default:
		return false
	}

	if q.Tag != "" {
		found := false
		for _, tag := range p.Tags {
			if tag == q.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Apply runs the full listing pipeline: filter, sort, then partition pinned
// posts in front of unpinned ones. Each bucket keeps the chosen comparator's
// internal order; pinned posts never interleave with unpinned ones.
// The input slice is never mutated.
func Apply(posts []*Post, q Query) []*Post {
	filtered := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if q.Matches(p) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, comparator(q.Sort, filtered))

	pinned := make([]*Post, 0, len(filtered))
	unpinned := make([]*Post, 0, len(filtered))
	for _, p := range filtered {
		if p.Pinned {
			pinned = append(pinned, p)
		} else {
			unpinned = append(unpinned, p)
		}
	}
	return append(pinned, unpinned...)
}

func comparator(order SortOrder, posts []*Post) func(i, j int) bool {
	switch order {
	case SortOldest:
		return func(i, j int) bool { return posts[i].CreatedAt.Before(posts[j].CreatedAt) }
	case SortUpdated:
		return func(i, j int) bool { return posts[i].UpdatedAt.After(posts[j].UpdatedAt) }
	default: // SortNewest
		return func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) }
	}
}

// Published returns only the published posts, preserving order.
// The public surface pre-restricts its candidate set with this.
func Published(posts []*Post) []*Post {
	out := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if p.IsPublished {
			out = append(out, p)
		}
	}
	return out
}

// TagFacet collects the union of all tags across the candidate set,
// deduplicated and sorted lexicographically ascending.
func TagFacet(posts []*Post) []string {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, p := range posts {
		for _, tag := range p.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
