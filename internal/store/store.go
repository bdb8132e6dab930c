// Package store reads posts straight from the posts directory. Nothing is
// cached: every call lists and parses the files again.
package store

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"mdblog/internal/authors"
	"mdblog/internal/domain/config"
	"mdblog/internal/domain/content"
	domainerr "mdblog/internal/domain/errors"
	"mdblog/internal/ingest"
	"mdblog/internal/logging"
)

type Options struct {
	// PostsDir defaults to config.DefaultPostsDir.
	PostsDir string
	// Locale, when set, selects the {PostsDir}/{Locale} sub-directory.
	Locale string
	// Config supplies the author roster. nil means config.FromEnv().
	Config *config.Config
}

// Dir is the directory posts are read from, after locale validation.
func (o Options) Dir() (string, error) {
	if err := ingest.ValidateLocale(o.Locale); err != nil {
		return "", err
	}
	dir := o.PostsDir
	if dir == "" {
		dir = config.DefaultPostsDir
	}
	if o.Locale != "" {
		dir = filepath.Join(dir, o.Locale)
	}
	return dir, nil
}

func (o Options) roster() []content.Author {
	if o.Config != nil {
		return o.Config.Authors
	}
	return config.FromEnv().Authors
}

// Warning reports a file skipped during a listing.
type Warning struct {
	Path string
	Slug string
	Msg  string
}

type WarningHandler func(Warning)

type Store struct {
	log     logging.Logger
	onWarn  WarningHandler
	workers int
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = logging.OrNoOp(l) }
}

// WithWarningHandler subscribes h to skipped-file warnings. Calls happen on
// the listing goroutine, in directory order.
func WithWarningHandler(h WarningHandler) Option {
	return func(s *Store) { s.onWarn = h }
}

func WithWorkers(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.workers = n
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		log:     logging.NoOp(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetPost returns the post stored under slug, or nil with no error when no
// file exists for it.
func (s *Store) GetPost(ctx context.Context, slug string, opts Options) (*content.Post, error) {
	p, err := s.FindPost(ctx, slug, opts)
	if errors.Is(err, domainerr.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// FindPost is GetPost with a missing post reported as a KindNotFound error.
func (s *Store) FindPost(ctx context.Context, slug string, opts Options) (*content.Post, error) {
	if err := ingest.ValidateSlug(slug); err != nil {
		return nil, err
	}
	dir, err := opts.Dir()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, ok, err := ingest.ResolveFile(dir, slug)
	if err != nil {
		return nil, domainerr.Read(path, "stat", slug, err)
	}
	if !ok {
		s.log.Debug("post not found", "slug", slug, "dir", dir)
		return nil, domainerr.NotFound(slug)
	}
	return readPost(path, slug, opts.roster())
}

func readPost(path, slug string, roster []content.Author) (*content.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, domainerr.Read(path, "read", slug, err)
	}
	fm, body, err := ingest.ParseFrontMatter(raw)
	if err != nil {
		return nil, domainerr.Read(path, "parse", slug, err)
	}

	readingTime := ingest.ReadingTime(body)
	if n, ok := content.ResolveNumber([]string{"readingTime"}, fm); ok && n > 0 {
		readingTime = int(math.Ceil(n))
	}

	return &content.Post{
		Slug:        slug,
		Content:     body,
		Frontmatter: fm,
		ReadingTime: readingTime,
		WordCount:   ingest.WordCount(body),
		Authors:     authors.FromFrontmatter(fm, roster),
	}, nil
}

func readMeta(path, slug string, roster []content.Author) (content.PostMetadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return content.PostMetadata{}, domainerr.Read(path, "read", slug, err)
	}
	fm, _, err := ingest.ParseFrontMatter(raw)
	if err != nil {
		return content.PostMetadata{}, domainerr.Read(path, "parse", slug, err)
	}
	return content.PostMetadata{
		Slug:        slug,
		Frontmatter: fm,
		Authors:     authors.FromFrontmatter(fm, roster),
	}, nil
}

// ListPosts returns the metadata of every readable post, newest first by the
// date frontmatter string. A missing or unreadable directory lists as empty.
func (s *Store) ListPosts(ctx context.Context, opts Options) ([]content.PostMetadata, error) {
	dir, err := opts.Dir()
	if err != nil {
		return nil, err
	}

	files, err := ingest.DiscoverSource(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			derr := domainerr.Directory(dir, "list", err)
			s.log.Warn("posts directory unreadable, listing as empty", "dir", dir, "error", derr.Error())
			s.warn(Warning{Path: dir, Msg: derr.Error()})
		}
		return []content.PostMetadata{}, nil
	}

	roster := opts.roster()
	metas := make([]content.PostMetadata, len(files))
	errs := make([]error, len(files))
	if err := s.fanOut(ctx, len(files), func(i int) {
		metas[i], errs[i] = readMeta(files[i].Path, files[i].Slug, roster)
	}); err != nil {
		return nil, err
	}

	out := make([]content.PostMetadata, 0, len(files))
	for i, f := range files {
		if errs[i] != nil {
			s.skip(f, errs[i])
			continue
		}
		out = append(out, metas[i])
	}
	sortByDateDesc(out)
	return out, nil
}

func (s *Store) ListSlugs(ctx context.Context, opts Options) ([]string, error) {
	metas, err := s.ListPosts(ctx, opts)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, len(metas))
	for i, m := range metas {
		slugs[i] = m.Slug
	}
	return slugs, nil
}

// LoadPosts returns full posts in ListPosts order. Posts that vanish or fail
// to read between the listing and the load are skipped with a warning.
func (s *Store) LoadPosts(ctx context.Context, opts Options) ([]content.Post, error) {
	metas, err := s.ListPosts(ctx, opts)
	if err != nil {
		return nil, err
	}

	posts := make([]*content.Post, len(metas))
	errs := make([]error, len(metas))
	if err := s.fanOut(ctx, len(metas), func(i int) {
		posts[i], errs[i] = s.FindPost(ctx, metas[i].Slug, opts)
	}); err != nil {
		return nil, err
	}

	out := make([]content.Post, 0, len(metas))
	for i, p := range posts {
		if errs[i] != nil {
			var de *domainerr.Error
			path := ""
			if errors.As(errs[i], &de) {
				path = de.Path
			}
			s.skip(ingest.SourceFile{Path: path, Slug: metas[i].Slug}, errs[i])
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *Store) skip(f ingest.SourceFile, err error) {
	s.log.WithFields(map[string]any{"path": f.Path, "slug": f.Slug}).Warn("skipping post", "error", err.Error())
	s.warn(Warning{Path: f.Path, Slug: f.Slug, Msg: err.Error()})
}

func (s *Store) warn(w Warning) {
	if s.onWarn != nil {
		s.onWarn(w)
	}
}

// sortByDateDesc orders by the raw date string, newest first. Missing dates
// compare as "" and sink to the end; ties keep directory order.
func sortByDateDesc(posts []content.PostMetadata) {
	sort.SliceStable(posts, func(i, j int) bool {
		return dateKey(posts[i]) > dateKey(posts[j])
	})
}

func dateKey(p content.PostMetadata) string {
	s, _ := p.Frontmatter["date"].(string)
	return s
}
