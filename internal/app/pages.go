package app

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"mdblog/internal/authors"
	"mdblog/internal/domain/config"
	"mdblog/internal/domain/content"
	"mdblog/internal/domain/site"
	"mdblog/internal/render"
	"mdblog/internal/seo"
	"mdblog/internal/store"
)

// Pages renders routes into response bodies. It is shared by the static
// export and the dev server so both produce identical output.
type Pages struct {
	Store  *store.Store
	Opts   store.Options
	Config config.Config
	MD     *render.MarkdownRenderer
	Tpl    render.Renderer

	// Now stamps feeds; nil means time.Now.
	Now        func() time.Time
	LiveReload bool
}

func NewPages(st *store.Store, opts store.Options, cfg config.Config) (*Pages, error) {
	tpl, err := render.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	if opts.Config == nil {
		opts.Config = &cfg
	}
	return &Pages{
		Store:  st,
		Opts:   opts,
		Config: cfg,
		MD:     render.NewMarkdownRenderer(),
		Tpl:    tpl,
	}, nil
}

func (p *Pages) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Render produces the body for r. A post route whose file is gone yields an
// error matching errors.ErrNotFound.
func (p *Pages) Render(ctx context.Context, r site.Route) ([]byte, error) {
	switch r.Kind {
	case site.RouteList:
		return p.renderList(ctx)
	case site.RoutePost:
		return p.renderPost(ctx, r.Slug)
	case site.RouteSitemap:
		metas, err := p.Store.ListPosts(ctx, p.Opts)
		if err != nil {
			return nil, err
		}
		return []byte(seo.Sitemap(metas, p.Config, p.now())), nil
	case site.RouteRSS:
		posts, err := p.Store.LoadPosts(ctx, p.Opts)
		if err != nil {
			return nil, err
		}
		return []byte(seo.RSSFeed(posts, p.Config, p.now())), nil
	case site.RouteRobots:
		return []byte(seo.RobotsTxt(p.Config)), nil
	case site.RouteNotFound:
		return p.RenderNotFound(ctx, "")
	default:
		return nil, fmt.Errorf("unknown route kind %q", r.Kind)
	}
}

func (p *Pages) renderPost(ctx context.Context, slug string) ([]byte, error) {
	post, err := p.Store.FindPost(ctx, slug, p.Opts)
	if err != nil {
		return nil, err
	}

	doc, err := p.MD.Render(post.Content)
	if err != nil {
		return nil, fmt.Errorf("render post(%s): %w", slug, err)
	}
	scripts, err := p.postJSONLD(*post)
	if err != nil {
		return nil, err
	}

	date, _ := post.Frontmatter.String("date")
	page := render.PostPage{
		Head: render.Head{
			Meta:       seo.PostMetadata(*post, p.Config),
			JSONLD:     scripts,
			LiveReload: p.LiveReload,
		},
		SiteName: p.siteName(),
		Post:     *post,
		Title:    content.ResolveString([]string{"title"}, post.Frontmatter, post.Slug),
		Authors:  authors.Names(authors.ForPost(post.Authors, p.Config.DefaultAuthor, p.Config.Authors)),
		Date:     date,
		HTML:     template.HTML(doc.HTML),
		TOC:      doc.TOC,
	}
	return p.Tpl.RenderPost(ctx, page)
}

func (p *Pages) postJSONLD(post content.Post) ([]template.JS, error) {
	blocks := []map[string]any{
		seo.PostSchema(post, p.Config),
		seo.BreadcrumbsSchema(post, p.Config, nil),
	}
	out := make([]template.JS, 0, len(blocks))
	for _, b := range blocks {
		s, err := seo.JSONLD(b)
		if err != nil {
			return nil, err
		}
		out = append(out, template.JS(s))
	}
	return out, nil
}

func (p *Pages) renderList(ctx context.Context) ([]byte, error) {
	metas, err := p.Store.ListPosts(ctx, p.Opts)
	if err != nil {
		return nil, err
	}

	summaries := make([]render.PostSummary, 0, len(metas))
	for _, m := range metas {
		desc, _ := m.Frontmatter.String("description")
		date, _ := m.Frontmatter.String("date")
		summaries = append(summaries, render.PostSummary{
			Slug:        m.Slug,
			Title:       content.ResolveString([]string{"title"}, m.Frontmatter, m.Slug),
			Description: desc,
			Date:        date,
			URL:         site.PostRoute(m.Slug).URLPath(),
			Authors:     authors.Names(authors.ForPost(m.Authors, p.Config.DefaultAuthor, p.Config.Authors)),
		})
	}

	page := render.ListPage{
		Head: render.Head{
			Meta:       seo.ListMetadata(metas, p.Config),
			LiveReload: p.LiveReload,
		},
		SiteName: p.siteName(),
		Posts:    summaries,
	}
	return p.Tpl.RenderList(ctx, page)
}

func (p *Pages) RenderNotFound(ctx context.Context, path string) ([]byte, error) {
	page := render.NotFoundPage{
		Head: render.Head{
			Meta: seo.Metadata{
				Title:  "Not Found | " + p.siteName(),
				Robots: "noindex, nofollow",
			},
			LiveReload: p.LiveReload,
		},
		SiteName: p.siteName(),
		Path:     path,
	}
	return p.Tpl.RenderNotFound(ctx, page)
}

// Schema returns the JSON-LD blocks of one post, article first.
func (p *Pages) Schema(ctx context.Context, slug string) ([]string, error) {
	post, err := p.Store.FindPost(ctx, slug, p.Opts)
	if err != nil {
		return nil, err
	}
	scripts, err := p.postJSONLD(*post)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(scripts))
	for i, s := range scripts {
		out[i] = string(s)
	}
	return out, nil
}

func (p *Pages) siteName() string {
	if s := strings.TrimSpace(p.Config.SiteName); s != "" {
		return s
	}
	return config.DefaultSiteName
}
