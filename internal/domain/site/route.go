package site

import (
	"path"
	"strings"
)

type RouteKind string

const (
	RouteList     RouteKind = "list"
	RoutePost     RouteKind = "post"
	RouteRSS      RouteKind = "rss"
	RouteSitemap  RouteKind = "sitemap"
	RouteRobots   RouteKind = "robots"
	RouteNotFound RouteKind = "404"
)

// Route is one page of the site. OutPath is where the static export writes
// it, relative to the output directory.
type Route struct {
	Kind    RouteKind
	Slug    string
	OutPath string
}

func ListRoute() Route     { return Route{Kind: RouteList, OutPath: "blogs/index.html"} }
func RSSRoute() Route      { return Route{Kind: RouteRSS, OutPath: "feed.xml"} }
func SitemapRoute() Route  { return Route{Kind: RouteSitemap, OutPath: "sitemap.xml"} }
func RobotsRoute() Route   { return Route{Kind: RouteRobots, OutPath: "robots.txt"} }
func NotFoundRoute() Route { return Route{Kind: RouteNotFound, OutPath: "404.html"} }

func PostRoute(slug string) Route {
	return Route{Kind: RoutePost, Slug: slug, OutPath: path.Join("blog", slug, "index.html")}
}

// URLPath is the path the dev server answers the route on.
func (r Route) URLPath() string {
	switch r.Kind {
	case RouteList:
		return "/blogs"
	case RoutePost:
		return "/blog/" + r.Slug
	case RouteNotFound:
		return ""
	default:
		return "/" + r.OutPath
	}
}

// ContentType is the media type the route renders to.
func (r Route) ContentType() string {
	switch r.Kind {
	case RouteRSS:
		return "application/rss+xml; charset=utf-8"
	case RouteSitemap:
		return "application/xml; charset=utf-8"
	case RouteRobots:
		return "text/plain; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}

func (r Route) String() string {
	parts := []string{string(r.Kind)}
	if r.Slug != "" {
		parts = append(parts, "slug="+r.Slug)
	}
	if r.OutPath != "" {
		parts = append(parts, "out="+r.OutPath)
	}
	return strings.Join(parts, " ")
}
