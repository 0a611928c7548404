package seed

// PostsFile represents the top-level structure of a seed posts YAML file.
type PostsFile struct {
	Posts []PostProps `yaml:"posts"`
}

// PostProps contains the seedable properties of a single post.
// CreatedAgo/UpdatedAgo are Go duration strings ("168h") interpreted
// relative to load time, so seed data never goes stale.
type PostProps struct {
	Title      string   `yaml:"title"`
	Content    string   `yaml:"content"`
	Tags       []string `yaml:"tags,omitempty"`
	Excerpt    string   `yaml:"excerpt,omitempty"`
	Published  bool     `yaml:"published,omitempty"`
	Draft      bool     `yaml:"draft,omitempty"`
	Pinned     bool     `yaml:"pinned,omitempty"`
	ViewCount  int      `yaml:"viewCount,omitempty"`
	CreatedAgo string   `yaml:"createdAgo,omitempty"`
	UpdatedAgo string   `yaml:"updatedAgo,omitempty"`
}
