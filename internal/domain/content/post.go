package content

type Post struct {
	Slug        string      `json:"slug"`
	Content     string      `json:"content"`
	Frontmatter Frontmatter `json:"frontmatter"`
	ReadingTime int         `json:"readingTime"`
	WordCount   int         `json:"wordCount"`
	Authors     []AuthorRef `json:"authors"`
}

// PostMetadata is a Post without its body, used for listings.
type PostMetadata struct {
	Slug        string      `json:"slug"`
	Frontmatter Frontmatter `json:"frontmatter"`
	Authors     []AuthorRef `json:"authors"`
}

func (p Post) Meta() PostMetadata {
	return PostMetadata{
		Slug:        p.Slug,
		Frontmatter: p.Frontmatter,
		Authors:     p.Authors,
	}
}
