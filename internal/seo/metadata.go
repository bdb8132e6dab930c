// Package seo derives page metadata, JSON-LD and XML feeds from posts. All
// functions are pure over their arguments.
package seo

import (
	"fmt"
	"strconv"

	"mdblog/internal/authors"
	"mdblog/internal/domain/config"
	"mdblog/internal/domain/content"
)

const (
	ogImageWidth  = 1200
	ogImageHeight = 630

	listTitle = "Blog Posts"
)

// Metadata is the page metadata handed to the rendering layer. The JSON
// field names are a stable contract.
type Metadata struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	OpenGraph   OpenGraph         `json:"openGraph"`
	Twitter     Twitter           `json:"twitter"`
	Robots      string            `json:"robots,omitempty"`
	Alternates  *Alternates       `json:"alternates,omitempty"`
	Other       map[string]string `json:"other,omitempty"`
	Authors     []MetaAuthor      `json:"authors,omitempty"`
	Keywords    []string          `json:"keywords,omitempty"`
}

type OpenGraph struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	URL           string    `json:"url"`
	SiteName      string    `json:"siteName"`
	Images        []OGImage `json:"images,omitempty"`
	PublishedTime string    `json:"publishedTime,omitempty"`
	ModifiedTime  string    `json:"modifiedTime,omitempty"`
	Authors       []string  `json:"authors,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Locale        string    `json:"locale,omitempty"`
}

type OGImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
	Creator     string   `json:"creator,omitempty"`
}

type Alternates struct {
	Canonical string            `json:"canonical,omitempty"`
	Languages map[string]string `json:"languages,omitempty"`
}

type MetaAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

func postTitle(p content.PostMetadata) string {
	return content.ResolveString([]string{"seoTitle", "title"}, p.Frontmatter, p.Slug)
}

func postDescription(fm content.Frontmatter) string {
	return content.ResolveString([]string{"seoDescription", "description", "excerpt"}, fm, "")
}

func ogImageURL(fm content.Frontmatter, cfg config.Config) string {
	return content.ResolveString([]string{"ogImage", "image"}, fm, cfg.DefaultOgImage)
}

// indexedKey renders the n-th (0-based) occurrence of a repeated meta key:
// the first is bare, later ones get a 1-based suffix starting at 2.
func indexedKey(key string, n int) string {
	if n == 0 {
		return key
	}
	return key + strconv.Itoa(n+1)
}

// PostMetadata builds the metadata of a single post page.
func PostMetadata(post content.Post, cfg config.Config) Metadata {
	fm := post.Frontmatter
	meta := post.Meta()
	site := siteName(cfg)

	title := postTitle(meta)
	description := postDescription(fm)
	ogTitle := content.ResolveString([]string{"ogTitle"}, fm, title)
	ogDescription := content.ResolveString([]string{"ogDescription"}, fm, description)
	twTitle := content.ResolveString([]string{"twitterTitle"}, fm, ogTitle)
	twDescription := content.ResolveString([]string{"twitterDescription"}, fm, ogDescription)

	refs := authors.ForPost(post.Authors, cfg.DefaultAuthor, cfg.Authors)
	names := authors.Names(refs)

	published := content.ResolveString([]string{"publishedDate", "date"}, fm, "")
	modified := content.ResolveString([]string{"modifiedDate"}, fm, "")
	category := content.ResolveString([]string{"category"}, fm, "")
	lang := content.ResolveString([]string{"lang"}, fm, defaultLang(cfg))
	tags, _ := fm.Strings("tags")
	canonical := postURL(meta, cfg)

	other := map[string]string{"lang": lang}
	if published != "" {
		other["article:published_time"] = published
	}
	if modified != "" {
		other["article:modified_time"] = modified
	}
	if category != "" {
		other["article:section"] = category
	}
	for i, tag := range tags {
		other[indexedKey("article:tag", i)] = tag
	}
	for i, name := range names {
		other[indexedKey("article:author", i)] = name
	}

	metaAuthors := make([]MetaAuthor, 0, len(refs))
	for i, ref := range refs {
		a, ok := ref.Detail()
		if !ok {
			metaAuthors = append(metaAuthors, MetaAuthor{Name: ref.Name()})
			continue
		}
		if a.Email != "" {
			other[indexedKey("author:email", i)] = a.Email
		}
		if a.URL != "" {
			other[indexedKey("author:url", i)] = a.URL
		}
		metaAuthors = append(metaAuthors, MetaAuthor{Name: a.Name, Email: a.Email, URL: a.URL})
	}

	md := Metadata{
		Title:       fmt.Sprintf("%s | %s", title, site),
		Description: description,
		OpenGraph: OpenGraph{
			Title:         ogTitle,
			Description:   ogDescription,
			Type:          "article",
			URL:           canonical,
			SiteName:      site,
			PublishedTime: published,
			ModifiedTime:  modified,
			Authors:       names,
			Tags:          tags,
			Locale:        lang,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       twTitle,
			Description: twDescription,
			Creator:     authors.TwitterCreator(refs, cfg.TwitterHandle),
		},
		Robots:     RobotsMeta(fm),
		Alternates: &Alternates{Canonical: canonical},
		Other:      other,
		Keywords:   mergeKeywords(tags, NormalizeKeywords(fm["keywords"])),
	}
	if len(cfg.AlternateLanguages) > 0 {
		md.Alternates.Languages = cfg.AlternateLanguages
	}
	if len(metaAuthors) > 0 {
		md.Authors = metaAuthors
	}

	if img := ogImageURL(fm, cfg); img != "" {
		alt := content.ResolveString([]string{"imageAlt"}, fm, title)
		md.OpenGraph.Images = []OGImage{{URL: img, Width: ogImageWidth, Height: ogImageHeight, Alt: alt}}
		md.Twitter.Images = []string{img}
	}
	return md
}

// ListMetadata builds the metadata of the post listing page.
func ListMetadata(posts []content.PostMetadata, cfg config.Config) Metadata {
	site := siteName(cfg)
	description := fmt.Sprintf("Browse all %d blog posts", len(posts))
	return Metadata{
		Title:       fmt.Sprintf("%s | %s", listTitle, site),
		Description: description,
		OpenGraph: OpenGraph{
			Title:       listTitle,
			Description: description,
			Type:        "website",
			URL:         listURL(cfg),
			SiteName:    site,
		},
		Twitter: Twitter{
			Card:        "summary",
			Title:       listTitle,
			Description: description,
		},
	}
}

// NormalizeKeywords accepts a comma separated string or a list of strings.
// Anything else yields no keywords.
func NormalizeKeywords(v any) []string {
	switch x := v.(type) {
	case string:
		return content.SplitList(x)
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func mergeKeywords(lists ...[]string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, list := range lists {
		for _, k := range list {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	return out
}
