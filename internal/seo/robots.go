package seo

import (
	"strings"

	"mdblog/internal/domain/config"
	"mdblog/internal/domain/content"
)

// RobotsMeta builds the robots directive for a post. A true noindex or
// nofollow flag replaces the robots string outright.
func RobotsMeta(fm content.Frontmatter) string {
	noindex, nofollow := fm.Bool("noindex"), fm.Bool("nofollow")
	if !noindex && !nofollow {
		s, _ := fm.String("robots")
		return s
	}
	var directives []string
	if noindex {
		directives = append(directives, "noindex")
	}
	if nofollow {
		directives = append(directives, "nofollow")
	}
	return strings.Join(directives, ", ")
}

// RobotsTxt allows every crawler and points them at the sitemap.
func RobotsTxt(cfg config.Config) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("\nSitemap: " + siteBase(cfg.SiteURL) + "/sitemap.xml\n")
	return b.String()
}
