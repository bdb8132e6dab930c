package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mdblog/internal/domain/site"
)

func routeCmd(use, short string, route site.Route) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := newPages()
			if err != nil {
				return err
			}
			body, err := pages.Render(cmd.Context(), route)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return err
		},
	}
}

var schemaCmd = &cobra.Command{
	Use:   "schema <slug>",
	Short: "Print the JSON-LD blocks of a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := newPages()
		if err != nil {
			return err
		}
		blocks, err := pages.Schema(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, b := range blocks {
			fmt.Fprintln(cmd.OutOrStdout(), b)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		routeCmd("sitemap", "Print sitemap.xml", site.SitemapRoute()),
		routeCmd("rss", "Print the RSS feed", site.RSSRoute()),
		schemaCmd,
	)
}
