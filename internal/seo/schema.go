package seo

import (
	"encoding/json"
	"fmt"
	"strings"

	"mdblog/internal/authors"
	"mdblog/internal/domain/config"
	"mdblog/internal/domain/content"
	"mdblog/internal/ingest"
)

const schemaContext = "https://schema.org"

type Breadcrumb struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PostSchema builds the schema.org Article JSON-LD for a post. A schema
// mapping in the frontmatter is merged over the computed fields.
func PostSchema(post content.Post, cfg config.Config) map[string]any {
	fm := post.Frontmatter
	meta := post.Meta()
	url := postURL(meta, cfg)

	schema := map[string]any{
		"@context":    schemaContext,
		"@type":       content.ResolveString([]string{"type"}, fm, "BlogPosting"),
		"headline":    postTitle(meta),
		"description": postDescription(fm),
		"url":         url,
		"mainEntityOfPage": map[string]any{
			"@type": "WebPage",
			"@id":   url,
		},
	}

	published := content.ResolveString([]string{"publishedDate", "date"}, fm, "")
	if published != "" {
		schema["datePublished"] = published
	}
	if modified := content.ResolveString([]string{"modifiedDate"}, fm, published); modified != "" {
		schema["dateModified"] = modified
	}

	refs := authors.ForPost(post.Authors, cfg.DefaultAuthor, cfg.Authors)
	switch len(refs) {
	case 0:
	case 1:
		schema["author"] = personSchema(refs[0])
	default:
		people := make([]map[string]any, len(refs))
		for i, r := range refs {
			people[i] = personSchema(r)
		}
		schema["author"] = people
	}

	publisher := map[string]any{
		"@type": "Organization",
		"name":  siteName(cfg),
	}
	if cfg.SiteURL != "" {
		publisher["url"] = cfg.SiteURL
	}
	schema["publisher"] = publisher

	if img := ogImageURL(fm, cfg); img != "" {
		image := map[string]any{"@type": "ImageObject", "url": img}
		if caption, ok := fm.String("imageAlt"); ok {
			image["caption"] = caption
		}
		schema["image"] = image
	}
	if section, ok := fm.String("category"); ok {
		schema["articleSection"] = section
	}
	if tags, ok := fm.Strings("tags"); ok && len(tags) > 0 {
		schema["keywords"] = strings.Join(tags, ", ")
	}
	if lang, ok := fm.String("lang"); ok {
		schema["inLanguage"] = lang
	}
	if words := ingest.WordCount(post.Content); words > 0 {
		schema["wordCount"] = words
	}
	if minutes := readingTime(post); minutes > 0 {
		schema["timeRequired"] = fmt.Sprintf("PT%dM", minutes)
	}

	if override, ok := fm.Object("schema"); ok {
		for k, v := range override {
			schema[k] = v
		}
	}
	return schema
}

func readingTime(post content.Post) int {
	if post.ReadingTime > 0 {
		return post.ReadingTime
	}
	return ingest.ReadingTime(post.Content)
}

func personSchema(ref content.AuthorRef) map[string]any {
	person := map[string]any{"@type": "Person", "name": ref.Name()}
	a, ok := ref.Detail()
	if !ok {
		return person
	}
	if a.Email != "" {
		person["email"] = a.Email
	}
	if a.URL != "" {
		person["url"] = a.URL
	}
	if a.Avatar != "" {
		person["image"] = a.Avatar
	}
	return person
}

// BreadcrumbsSchema builds a BreadcrumbList. A non-nil crumbs replaces the
// default Home, Blog, post trail.
func BreadcrumbsSchema(post content.Post, cfg config.Config, crumbs []Breadcrumb) map[string]any {
	if crumbs == nil {
		meta := post.Meta()
		home := cfg.SiteURL
		if home == "" {
			home = "/"
		}
		crumbs = []Breadcrumb{
			{Name: "Home", URL: home},
			{Name: "Blog", URL: listURL(cfg)},
			{Name: postTitle(meta), URL: postURL(meta, cfg)},
		}
	}

	items := make([]map[string]any, len(crumbs))
	for i, c := range crumbs {
		items[i] = map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     c.URL,
		}
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// JSONLD serializes v for a <script type="application/ld+json"> block.
// encoding/json escapes <, > and & so the output cannot close the tag.
func JSONLD(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json-ld: %w", err)
	}
	return string(b), nil
}
