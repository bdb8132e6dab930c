package seo

import (
	"strings"

	"mdblog/internal/domain/config"
	"mdblog/internal/domain/content"
)

// ResolveCanonicalURL makes url absolute against siteURL. Absolute http(s)
// URLs pass through untouched.
func ResolveCanonicalURL(url, siteURL string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	base := strings.TrimSuffix(siteURL, "/")
	if strings.HasPrefix(url, "/") {
		return base + url
	}
	return base + "/" + url
}

// ResolvePostURL prefers the frontmatter canonical URL over the generated
// {siteURL}/blog/{slug}. With no siteURL the result stays site-relative.
func ResolvePostURL(canonical, slug, siteURL string) string {
	raw := canonical
	if raw == "" {
		raw = siteBase(siteURL) + "/blog/" + slug
	}
	if siteURL == "" {
		return raw
	}
	return ResolveCanonicalURL(raw, siteURL)
}

func postURL(p content.PostMetadata, cfg config.Config) string {
	return ResolvePostURL(content.ResolveString([]string{"canonicalUrl"}, p.Frontmatter, ""), p.Slug, cfg.SiteURL)
}

func listURL(cfg config.Config) string {
	return siteBase(cfg.SiteURL) + "/blogs"
}

func siteBase(siteURL string) string {
	return strings.TrimSuffix(siteURL, "/")
}

func siteName(cfg config.Config) string {
	if cfg.SiteName == "" {
		return config.DefaultSiteName
	}
	return cfg.SiteName
}

func defaultLang(cfg config.Config) string {
	if cfg.DefaultLang == "" {
		return config.DefaultLang
	}
	return cfg.DefaultLang
}
