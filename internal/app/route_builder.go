package app

import (
	"context"

	"mdblog/internal/domain/site"
	"mdblog/internal/store"
)

// RouteBuilder enumerates every page of the site from the posts directory.
type RouteBuilder struct {
	Store *store.Store
	Opts  store.Options
}

func (rb *RouteBuilder) BuildPostRoutes(ctx context.Context) ([]site.Route, error) {
	slugs, err := rb.Store.ListSlugs(ctx, rb.Opts)
	if err != nil {
		return nil, err
	}
	routes := make([]site.Route, 0, len(slugs))
	for _, slug := range slugs {
		routes = append(routes, site.PostRoute(slug))
	}
	return routes, nil
}

// Build returns the listing, one route per post, the feeds and the 404 page.
func (rb *RouteBuilder) Build(ctx context.Context) ([]site.Route, error) {
	posts, err := rb.BuildPostRoutes(ctx)
	if err != nil {
		return nil, err
	}
	routes := make([]site.Route, 0, len(posts)+5)
	routes = append(routes, site.ListRoute())
	routes = append(routes, posts...)
	routes = append(routes,
		site.SitemapRoute(),
		site.RSSRoute(),
		site.RobotsRoute(),
		site.NotFoundRoute(),
	)
	return routes, nil
}
