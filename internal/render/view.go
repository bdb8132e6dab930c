package render

import (
	"html/template"

	"mdblog/internal/domain/content"
	"mdblog/internal/seo"
)

type Heading struct {
	Level int
	ID    string
	Text  string
}

// Head is what every page puts in its <head>.
type Head struct {
	Meta seo.Metadata
	// JSONLD holds serialized schema.org blocks, one <script> each.
	JSONLD []template.JS
	// LiveReload adds the dev-server reload listener.
	LiveReload bool
}

type PostPage struct {
	Head
	SiteName string
	Post     content.Post
	Title    string
	Authors  []string
	Date     string
	HTML     template.HTML
	TOC      []Heading
}

type PostSummary struct {
	Slug        string
	Title       string
	Description string
	Date        string
	URL         string
	Authors     []string
}

type ListPage struct {
	Head
	SiteName string
	Posts    []PostSummary
}

type NotFoundPage struct {
	Head
	SiteName string
	Path     string
}
