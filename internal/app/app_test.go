package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mdblog/internal/domain/config"
	domainerr "mdblog/internal/domain/errors"
	"mdblog/internal/domain/site"
	"mdblog/internal/store"
)

func writePost(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestPages(t *testing.T) *Pages {
	t.Helper()
	dir := t.TempDir()
	writePost(t, dir, "first.md", "---\ntitle: First\ndate: \"2024-01-01\"\nauthor: Jane\n---\n## Intro\n\nHello world.\n")
	writePost(t, dir, "second.md", "---\ntitle: Second & more\ndate: \"2024-02-01\"\n---\nBody.\n")

	cfg := config.Default()
	cfg.SiteURL = "https://e.com"
	p, err := NewPages(store.New(), store.Options{PostsDir: dir}, cfg)
	if err != nil {
		t.Fatalf("NewPages: %v", err)
	}
	p.Now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return p
}

func TestBuildRoutes(t *testing.T) {
	p := newTestPages(t)
	rb := RouteBuilder{Store: p.Store, Opts: p.Opts}
	routes, err := rb.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var got []string
	for _, r := range routes {
		got = append(got, r.OutPath)
	}
	want := []string{
		"blogs/index.html",
		"blog/first/index.html",
		"blog/second/index.html",
		"sitemap.xml",
		"feed.xml",
		"robots.txt",
		"404.html",
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("routes = %v, want %v", got, want)
	}
}

func TestRenderPostPage(t *testing.T) {
	p := newTestPages(t)
	out, err := p.Render(context.Background(), site.PostRoute("first"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	for _, want := range []string{
		"<title>First | My Blog</title>",
		`href="https://e.com/blog/first"`,
		`"@type":"BlogPosting"`,
		`"@type":"BreadcrumbList"`,
		`id="intro"`,
		"Jane",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("post page missing %q", want)
		}
	}
}

func TestRenderMissingPost(t *testing.T) {
	p := newTestPages(t)
	_, err := p.Render(context.Background(), site.PostRoute("nope"))
	if !errors.Is(err, domainerr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRenderListPage(t *testing.T) {
	p := newTestPages(t)
	out, err := p.Render(context.Background(), site.ListRoute())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "Blog Posts | My Blog") {
		t.Errorf("list title missing: %s", html)
	}
	second := strings.Index(html, `href="/blog/second"`)
	first := strings.Index(html, `href="/blog/first"`)
	if second < 0 || first < 0 || second > first {
		t.Errorf("posts not newest first: first=%d second=%d", first, second)
	}
}

func TestRenderFeeds(t *testing.T) {
	p := newTestPages(t)
	ctx := context.Background()

	rss, err := p.Render(ctx, site.RSSRoute())
	if err != nil {
		t.Fatalf("rss: %v", err)
	}
	if !strings.Contains(string(rss), "<title>Second &amp; more</title>") {
		t.Errorf("rss = %s", rss)
	}

	sm, err := p.Render(ctx, site.SitemapRoute())
	if err != nil {
		t.Fatalf("sitemap: %v", err)
	}
	if strings.Count(string(sm), "<url>") != 2 {
		t.Errorf("sitemap = %s", sm)
	}

	robots, err := p.Render(ctx, site.RobotsRoute())
	if err != nil {
		t.Fatalf("robots: %v", err)
	}
	if !strings.Contains(string(robots), "Sitemap: https://e.com/sitemap.xml") {
		t.Errorf("robots = %s", robots)
	}
}

func TestSchema(t *testing.T) {
	p := newTestPages(t)
	blocks, err := p.Schema(context.Background(), "first")
	if err != nil {
		t.Fatalf("Schema: %v", err)
	}
	if len(blocks) != 2 || !strings.Contains(blocks[0], `"headline":"First"`) {
		t.Fatalf("blocks = %v", blocks)
	}
}
