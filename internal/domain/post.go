package domain

import "time"

// Post represents a single idea entry.
//
// It is NOT tied to the HTTP layer, Redis or any persistence format.
// The store is the only writer; everything else consumes read-only views.
//
// A Post is uniquely identified by its ID.
type Post struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, generated at creation.
	ID string `json:"id"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Title is free text. Callers normalize a blank title to "Untitled"
	// at creation time; the store itself accepts anything.
	Title string `json:"title"`

	// Content is the rich-text body serialized as a markup string.
	// It is opaque: never parsed, only word-counted for ReadTime and
	// tag-stripped for excerpts.
	Content string `json:"content"`

	// Tags is an ordered set used for faceted filtering.
	// Duplicates are suppressed on insert (case-sensitive equality).
	Tags []string `json:"tags"`

	// Excerpt is an optional precomputed summary. When empty, a summary
	// is derived on demand from Content (strip markup, cut to 150 chars).
	Excerpt string `json:"excerpt,omitempty"`

	// ─────────────────────────────
	// Visibility
	// ─────────────────────────────

	// IsPublished governs visibility in the public listing.
	IsPublished bool `json:"isPublished"`

	// IsDraft flags work-in-progress, independent of IsPublished.
	// No invariant couples the two; the editor sets them explicitly.
	IsDraft bool `json:"isDraft"`

	// Pinned posts sort before all others regardless of sort order.
	Pinned bool `json:"pinned,omitempty"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// CreatedAt is fixed at creation.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation. Always >= CreatedAt.
	UpdatedAt time.Time `json:"updatedAt"`

	// ReadTime is the estimated minutes to read, recomputed whenever
	// Content changes. Always >= 1.
	ReadTime int `json:"readTime"`

	// ViewCount is reserved; no operation mutates it yet.
	ViewCount int `json:"viewCount,omitempty"`
}

// Summary returns the post's excerpt, deriving one from the content
// when no precomputed excerpt is present.
func (p *Post) Summary() string {
	if p.Excerpt != "" {
		return p.Excerpt
	}
	return Excerpt(p.Content)
}

// DedupeTags returns tags with duplicates removed, first occurrence wins.
// Comparison is case-sensitive.
func DedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
