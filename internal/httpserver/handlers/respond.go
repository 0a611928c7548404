package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/ideahub/internal/domain"
)

// postView is the JSON shape of a post as served to clients. Summary is the
// precomputed excerpt, or one derived from the content when absent.
type postView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content,omitempty"`
	Summary     string    `json:"summary"`
	Tags        []string  `json:"tags"`
	IsPublished bool      `json:"isPublished"`
	IsDraft     bool      `json:"isDraft"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ReadTime    int       `json:"readTime"`
	ViewCount   int       `json:"viewCount,omitempty"`
}

func viewOf(p *domain.Post) postView {
	return postView{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		Summary:     p.Summary(),
		Tags:        p.Tags,
		IsPublished: p.IsPublished,
		IsDraft:     p.IsDraft,
		Pinned:      p.Pinned,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		ReadTime:    p.ReadTime,
		ViewCount:   p.ViewCount,
	}
}

func viewsOf(posts []*domain.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, viewOf(p))
	}
	return views
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
