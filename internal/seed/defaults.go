package seed

// Default returns the built-in seed set used when no seed file is
// configured: a pinned welcome post, a private draft, and an older
// published post.
func Default() *PostsFile {
	return &PostsFile{
		Posts: []PostProps{
			{
				Title: "Getting Started with Rich Text Editing",
				Content: `<h1>Getting Started with Rich Text Editing</h1>
<p>Welcome to your new rich text editor! This platform allows you to create beautiful posts with formatting and organization.</p>
<h2>Key Features:</h2>
<ul>
<li>Text formatting with bold, italic, and more</li>
<li>Image embedding</li>
<li>Private by default, with optional publishing</li>
<li>Tagging system for organization</li>
</ul>
<p>Try editing this post to see how it works!</p>`,
				Tags:       []string{"welcome", "tutorial"},
				Excerpt:    "Learn how to use the core features of your new rich text editor platform.",
				Published:  true,
				Pinned:     true,
				ViewCount:  12,
				CreatedAgo: "24h",
				UpdatedAgo: "24h",
			},
			{
				Title: "My First Draft",
				Content: `<p>This is a draft post that I'm working on. It's not ready to be published yet.</p>
<p>When I'm ready, I can publish it with a single click.</p>`,
				Tags:  []string{"draft", "ideas"},
				Draft: true,
			},
			{
				Title: "How to Organize Your Ideas",
				Content: `<h1>How to Organize Your Ideas</h1>
<p>Keeping your ideas organized is essential for productivity and creativity. Here are some tips:</p>
<h2>1. Use Tags</h2>
<p>Tags help you categorize and find related ideas quickly.</p>
<h2>2. Draft First, Polish Later</h2>
<p>Get your thoughts down quickly as drafts, then come back to refine them.</p>
<h2>3. Publish Selectively</h2>
<p>Only publish ideas that you want to share with others. Keep personal notes private.</p>`,
				Tags:       []string{"organization", "productivity", "tips"},
				Excerpt:    "Learn how to keep your ideas organized and accessible with these simple techniques.",
				Published:  true,
				CreatedAgo: "168h",
				UpdatedAgo: "24h",
			},
		},
	}
}
