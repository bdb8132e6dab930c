package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"mdblog/internal/domain/content"
	domainerr "mdblog/internal/domain/errors"
)

const (
	DefaultSiteName = "My Blog"
	DefaultLang     = "en"
	DefaultSiteURL  = "http://localhost:3000"
	DefaultAuthor   = "Blog Author"
	DefaultPostsDir = "posts"

	// EnvSiteURL is the only environment variable the defaults read.
	EnvSiteURL = "MDBLOG_SITE_URL"
)

// Config is the site-wide value handed to every generator. Nothing in the
// engine mutates it.
type Config struct {
	SiteName           string            `yaml:"site_name"`
	SiteURL            string            `yaml:"site_url"`
	DefaultAuthor      string            `yaml:"default_author"`
	Authors            []content.Author  `yaml:"authors"`
	TwitterHandle      string            `yaml:"twitter_handle"`
	DefaultOgImage     string            `yaml:"default_og_image"`
	DefaultLang        string            `yaml:"default_lang"`
	AlternateLanguages map[string]string `yaml:"alternate_languages"`

	Content ContentConfig `yaml:"content"`
}

type ContentConfig struct {
	PostsDir string `yaml:"posts_dir"`
	Locale   string `yaml:"locale"`
}

func Default() Config {
	return Config{
		SiteName:      DefaultSiteName,
		SiteURL:       DefaultSiteURL,
		DefaultAuthor: DefaultAuthor,
		DefaultLang:   DefaultLang,
		Content: ContentConfig{
			PostsDir: DefaultPostsDir,
		},
	}
}

// FromEnv returns Default with the site URL taken from MDBLOG_SITE_URL when set.
func FromEnv() Config {
	cfg := Default()
	if v := strings.TrimSpace(os.Getenv(EnvSiteURL)); v != "" {
		cfg.SiteURL = v
	}
	return cfg
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.SiteName) == "" {
		ve.Add("site_name", "must not be empty")
	}

	// an empty site URL is allowed: generators degrade to site-relative paths
	if u := strings.TrimSpace(c.SiteURL); u != "" && !isValidAbsURL(u) {
		ve.Add("site_url", "must be a valid absolute URL")
	}

	seen := make(map[string]struct{}, len(c.Authors))
	for i, a := range c.Authors {
		name := strings.ToLower(strings.TrimSpace(a.Name))
		if name == "" {
			ve.Add("authors", "entry "+strconv.Itoa(i)+" has no name")
			continue
		}
		if _, ok := seen[name]; ok {
			ve.Add("authors", "duplicate author "+a.Name)
		}
		seen[name] = struct{}{}
	}

	for locale, link := range c.AlternateLanguages {
		if strings.TrimSpace(locale) == "" {
			ve.Add("alternate_languages", "locale must not be empty")
		}
		if strings.TrimSpace(link) == "" {
			ve.Add("alternate_languages."+locale, "url must not be empty")
		}
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func isValidAbsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func Load(path string) (Config, error) {
	cfg := FromEnv()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but treats a missing file as an empty one.
func LoadOrDefault(path string) (Config, error) {
	cfg := FromEnv()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Content.PostsDir) == "" {
		c.Content.PostsDir = DefaultPostsDir
	}
	if strings.TrimSpace(c.DefaultLang) == "" {
		c.DefaultLang = DefaultLang
	}
}
