package seo

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"mdblog/internal/domain/config"
	"mdblog/internal/domain/content"
)

const (
	RSSPostLimit = 20

	sitemapChangeFreq = "monthly"
	sitemapPriority   = "0.8"
	rssLanguage       = "en"

	// rssTimeFormat is RFC 1123 pinned to GMT, as RSS readers expect.
	rssTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// Sitemap renders a sitemap.org urlset with one entry per post.
func Sitemap(posts []content.PostMetadata, cfg config.Config, now time.Time) string {
	today := now.UTC().Format(time.DateOnly)
	base := siteBase(cfg.SiteURL)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, p := range posts {
		lastmod := content.ResolveString([]string{"modifiedDate", "date"}, p.Frontmatter, today)
		b.WriteString("  <url>\n")
		fmt.Fprintf(&b, "    <loc>%s</loc>\n", EscapeXML(base+"/blog/"+p.Slug))
		fmt.Fprintf(&b, "    <lastmod>%s</lastmod>\n", EscapeXML(lastmod))
		fmt.Fprintf(&b, "    <changefreq>%s</changefreq>\n", sitemapChangeFreq)
		fmt.Fprintf(&b, "    <priority>%s</priority>\n", sitemapPriority)
		b.WriteString("  </url>\n")
	}
	b.WriteString("</urlset>")
	return b.String()
}

func GenerateSitemap(posts []content.PostMetadata, cfg config.Config) string {
	return Sitemap(posts, cfg, time.Now())
}

// RSSFeed renders an RSS 2.0 channel of at most RSSPostLimit items, taken
// from the front of posts as given.
func RSSFeed(posts []content.Post, cfg config.Config, now time.Time) string {
	site := siteName(cfg)
	base := siteBase(cfg.SiteURL)
	if len(posts) > RSSPostLimit {
		posts = posts[:RSSPostLimit]
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n")
	b.WriteString("  <channel>\n")
	fmt.Fprintf(&b, "    <title>%s</title>\n", EscapeXML(site))
	fmt.Fprintf(&b, "    <link>%s</link>\n", EscapeXML(cfg.SiteURL))
	fmt.Fprintf(&b, "    <description>Latest blog posts from %s</description>\n", EscapeXML(site))
	fmt.Fprintf(&b, "    <language>%s</language>\n", rssLanguage)
	fmt.Fprintf(&b, "    <lastBuildDate>%s</lastBuildDate>\n", now.UTC().Format(rssTimeFormat))
	fmt.Fprintf(&b, "    <atom:link href=\"%s/feed.xml\" rel=\"self\" type=\"application/rss+xml\"/>\n", EscapeXML(base))

	for _, p := range posts {
		fm := p.Frontmatter
		title := content.ResolveString([]string{"title"}, fm, p.Slug)
		description := content.ResolveString([]string{"description", "excerpt"}, fm, "")
		url := postURL(p.Meta(), cfg)

		author := cfg.DefaultAuthor
		if len(p.Authors) > 0 {
			author = p.Authors[0].Name()
		}

		b.WriteString("    <item>\n")
		fmt.Fprintf(&b, "      <title>%s</title>\n", EscapeXML(title))
		fmt.Fprintf(&b, "      <link>%s</link>\n", EscapeXML(url))
		fmt.Fprintf(&b, "      <guid isPermaLink=\"true\">%s</guid>\n", EscapeXML(url))
		fmt.Fprintf(&b, "      <description>%s</description>\n", EscapeXML(description))
		fmt.Fprintf(&b, "      <author>%s</author>\n", EscapeXML(author))
		fmt.Fprintf(&b, "      <pubDate>%s</pubDate>\n", pubDate(fm, now))
		b.WriteString("    </item>\n")
	}

	b.WriteString("  </channel>\n")
	b.WriteString("</rss>")
	return b.String()
}

func GenerateRSSFeed(posts []content.Post, cfg config.Config) string {
	return RSSFeed(posts, cfg, time.Now())
}

// pubDate parses the publication date leniently. Dates without a zone are
// read as UTC; anything unparseable falls back to now.
func pubDate(fm content.Frontmatter, now time.Time) string {
	raw := content.ResolveString([]string{"publishedDate", "date"}, fm, "")
	t := now
	if raw != "" {
		if parsed, err := dateparse.ParseIn(raw, time.UTC); err == nil {
			t = parsed
		}
	}
	return t.UTC().Format(rssTimeFormat)
}
