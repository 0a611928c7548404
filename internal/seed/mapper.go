package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/ideahub/internal/domain"
)

// Mapper converts seed post properties to domain.Post entities.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapPosts converts a parsed seed file to []*domain.Post. Posts without a
// title and without content are skipped. Age offsets are resolved against
// load time; UpdatedAgo is clamped so UpdatedAt never precedes CreatedAt.
func (m *Mapper) MapPosts(file *PostsFile) ([]*domain.Post, error) {
	now := time.Now()
	var posts []*domain.Post

	for _, props := range file.Posts {
		if props.Title == "" && props.Content == "" {
			continue
		}

		createdAt := now.Add(-parseAge(props.CreatedAgo))
		updatedAt := now.Add(-parseAge(props.UpdatedAgo))
		if updatedAt.Before(createdAt) {
			updatedAt = createdAt
		}

		posts = append(posts, &domain.Post{
			ID:          uuid.New().String(),
			Title:       props.Title,
			Content:     props.Content,
			Tags:        domain.DedupeTags(props.Tags),
			Excerpt:     props.Excerpt,
			IsPublished: props.Published,
			IsDraft:     props.Draft,
			Pinned:      props.Pinned,
			ViewCount:   props.ViewCount,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
			ReadTime:    domain.EstimateReadTime(props.Content),
		})
	}

	if len(posts) == 0 {
		return nil, fmt.Errorf("seed file contains no usable posts")
	}

	return posts, nil
}

// parseAge parses a duration string like "168h"; empty or invalid values
// mean "now".
func parseAge(s string) time.Duration {
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
