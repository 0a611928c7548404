package seed

import (
	"testing"
	"time"
)

func TestMapperMapPosts(t *testing.T) {
	file := &PostsFile{
		Posts: []PostProps{
			{
				Title:      "Week old post",
				Content:    "<p>body</p>",
				Tags:       []string{"go", "go", "web"},
				Published:  true,
				Pinned:     true,
				CreatedAgo: "168h",
				UpdatedAgo: "24h",
			},
			{
				Title:   "Fresh draft",
				Content: "<p>wip</p>",
				Draft:   true,
			},
		},
	}

	posts, err := NewMapper().MapPosts(file)
	if err != nil {
		t.Fatalf("MapPosts() error = %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("MapPosts() returned %d posts, want 2", len(posts))
	}

	old := posts[0]
	if old.ID == "" {
		t.Error("mapped post has empty ID")
	}
	if !old.Pinned || !old.IsPublished {
		t.Error("flags not carried over")
	}
	if len(old.Tags) != 2 {
		t.Errorf("Tags = %v, want duplicates suppressed", old.Tags)
	}
	if old.ReadTime < 1 {
		t.Errorf("ReadTime = %d, want >= 1", old.ReadTime)
	}
	if old.UpdatedAt.Before(old.CreatedAt) {
		t.Error("UpdatedAt precedes CreatedAt")
	}
	age := time.Since(old.CreatedAt)
	if age < 167*time.Hour || age > 169*time.Hour {
		t.Errorf("CreatedAt age = %v, want about 168h", age)
	}
}

func TestMapperMapPosts_SkipsEmpty(t *testing.T) {
	file := &PostsFile{
		Posts: []PostProps{
			{},
			{Title: "kept"},
		},
	}

	posts, err := NewMapper().MapPosts(file)
	if err != nil {
		t.Fatalf("MapPosts() error = %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "kept" {
		t.Errorf("MapPosts() = %d posts, want only the non-empty one", len(posts))
	}
}

func TestMapperMapPosts_EmptyFile(t *testing.T) {
	if _, err := NewMapper().MapPosts(&PostsFile{}); err == nil {
		t.Error("MapPosts() on empty file should return an error")
	}
}

func TestMapperMapPosts_ClampsUpdatedAt(t *testing.T) {
	file := &PostsFile{
		Posts: []PostProps{
			{Title: "p", CreatedAgo: "24h", UpdatedAgo: "168h"},
		},
	}

	posts, err := NewMapper().MapPosts(file)
	if err != nil {
		t.Fatalf("MapPosts() error = %v", err)
	}
	if posts[0].UpdatedAt.Before(posts[0].CreatedAt) {
		t.Error("UpdatedAt not clamped to CreatedAt")
	}
}

func TestDefault(t *testing.T) {
	posts, err := NewMapper().MapPosts(Default())
	if err != nil {
		t.Fatalf("MapPosts(Default()) error = %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("default seed has %d posts, want 3", len(posts))
	}

	published := 0
	pinned := 0
	drafts := 0
	for _, p := range posts {
		if p.IsPublished {
			published++
		}
		if p.Pinned {
			pinned++
		}
		if p.IsDraft {
			drafts++
		}
	}
	if published != 2 || pinned != 1 || drafts != 1 {
		t.Errorf("default seed shape = %d published, %d pinned, %d drafts; want 2/1/1",
			published, pinned, drafts)
	}
}
