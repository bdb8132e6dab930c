package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mdblog/internal/app"
	"mdblog/internal/domain/config"
	"mdblog/internal/logging"
	"mdblog/internal/store"
)

var (
	cfgFile   string
	postsDir  string
	locale    string
	logLevel  string
	logFormat string

	appConfig config.Config
	logs      *logging.Provider
)

var rootCmd = &cobra.Command{
	Use:           "mdblog",
	Short:         "Markdown blog engine",
	Long:          `mdblog reads Markdown posts with YAML frontmatter and renders pages, SEO metadata, JSON-LD, a sitemap and an RSS feed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "mdblog.yaml", "site config file; a missing file means defaults")
	flags.StringVar(&postsDir, "posts", "", "posts directory (overrides content.posts_dir)")
	flags.StringVar(&locale, "locale", "", "locale sub-directory of the posts directory")
	flags.StringVar(&logLevel, "log-level", "info", "trace, debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "console", "console, json or pretty")
}

func initialize() error {
	p, err := logging.NewProvider(logging.Config{Level: logLevel, Format: logFormat})
	if err != nil {
		return err
	}
	logs = p

	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return fmt.Errorf("load config %s: %w", cfgFile, err)
	}
	if postsDir != "" {
		cfg.Content.PostsDir = postsDir
	}
	if locale != "" {
		cfg.Content.Locale = locale
	}
	appConfig = cfg
	return nil
}

func storeOptions() store.Options {
	cfg := appConfig
	return store.Options{
		PostsDir: cfg.Content.PostsDir,
		Locale:   cfg.Content.Locale,
		Config:   &cfg,
	}
}

func newStore() *store.Store {
	return store.New(store.WithLogger(logs.GetLogger("store")))
}

func newPages() (*app.Pages, error) {
	return app.NewPages(newStore(), storeOptions(), appConfig)
}
