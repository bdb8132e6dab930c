package render

import (
	"context"
	"html/template"
	"strings"
	"testing"

	"mdblog/internal/domain/content"
	"mdblog/internal/seo"
)

func TestMarkdownRenderCollectsHeadings(t *testing.T) {
	doc, err := NewMarkdownRenderer().Render("# Title\n\n## First *part*\n\ntext\n\n### Deeper\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(doc.TOC) != 2 {
		t.Fatalf("TOC = %+v", doc.TOC)
	}
	if doc.TOC[0].Text != "First part" || doc.TOC[0].ID == "" || doc.TOC[1].Level != 3 {
		t.Fatalf("TOC = %+v", doc.TOC)
	}
	if !strings.Contains(string(doc.HTML), "<table>") {
		t.Fatalf("GFM tables not enabled: %s", doc.HTML)
	}
}

func TestRenderPostPage(t *testing.T) {
	r, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer: %v", err)
	}
	page := PostPage{
		Head: Head{
			Meta: seo.Metadata{
				Title:       "Hello | Blog",
				Description: `Say "hi"`,
				Robots:      "noindex",
				Alternates:  &seo.Alternates{Canonical: "https://e.com/blog/hello"},
				Other:       map[string]string{"lang": "fr", "article:tag": "go", "author:email": "j@x.com"},
				OpenGraph:   seo.OpenGraph{Title: "Hello", Type: "article"},
				Twitter:     seo.Twitter{Card: "summary_large_image", Creator: "@johnd"},
			},
			JSONLD:     []template.JS{`{"@type":"BlogPosting"}`},
			LiveReload: true,
		},
		Post:  content.Post{Slug: "hello", ReadingTime: 3},
		Title: "Hello",
		HTML:  template.HTML("<p>body</p>"),
		TOC:   []Heading{{Level: 2, ID: "intro", Text: "Intro"}},
	}
	out, err := r.RenderPost(context.Background(), page)
	if err != nil {
		t.Fatalf("RenderPost: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		`<html lang="fr">`,
		"<title>Hello | Blog</title>",
		`content="Say &#34;hi&#34;"`,
		`<meta name="robots" content="noindex">`,
		`<link rel="canonical" href="https://e.com/blog/hello">`,
		`<meta property="article:tag" content="go">`,
		`<meta name="author:email" content="j@x.com">`,
		`<meta name="twitter:creator" content="@johnd">`,
		`<script type="application/ld+json">{"@type":"BlogPosting"}</script>`,
		`<a href="#intro">Intro</a>`,
		"<p>body</p>",
		"3 min read",
		"/dev/events",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("post page missing %q", want)
		}
	}
	if strings.Contains(html, `name="lang"`) {
		t.Error("lang should only appear on <html>")
	}
}

func TestRenderListAndNotFound(t *testing.T) {
	r, err := NewTemplateRenderer()
	if err != nil {
		t.Fatal(err)
	}
	out, err := r.RenderList(context.Background(), ListPage{
		Head:     Head{Meta: seo.Metadata{Title: "Blog Posts | Blog"}},
		SiteName: "Blog",
		Posts:    []PostSummary{{Slug: "a", Title: "A & B", URL: "/blog/a", Date: "2024-01-01"}},
	})
	if err != nil {
		t.Fatalf("RenderList: %v", err)
	}
	if !strings.Contains(string(out), `<a href="/blog/a">A &amp; B</a>`) {
		t.Fatalf("list page = %s", out)
	}
	if strings.Contains(string(out), "/dev/events") {
		t.Fatal("live reload must be off by default")
	}

	out, err = r.RenderNotFound(context.Background(), NotFoundPage{Path: "/nope"})
	if err != nil {
		t.Fatalf("RenderNotFound: %v", err)
	}
	if !strings.Contains(string(out), "<code>/nope</code>") {
		t.Fatalf("404 page = %s", out)
	}
}
