package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mdblog/internal/authors"
	"mdblog/internal/domain/content"
	"mdblog/internal/seo"
)

var (
	listJSON bool
	showMeta bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		posts, err := newStore().ListPosts(cmd.Context(), storeOptions())
		if err != nil {
			return err
		}
		if listJSON {
			return writeJSON(cmd.OutOrStdout(), posts)
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SLUG\tDATE\tTITLE\tAUTHORS")
		for _, p := range posts {
			date, _ := p.Frontmatter.String("date")
			title := content.ResolveString([]string{"title"}, p.Frontmatter, p.Slug)
			names := authors.Names(authors.ForPost(p.Authors, appConfig.DefaultAuthor, appConfig.Authors))
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Slug, date, title, strings.Join(names, ", "))
		}
		return tw.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Print a post as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		post, err := newStore().FindPost(cmd.Context(), args[0], storeOptions())
		if err != nil {
			return err
		}
		if showMeta {
			return writeJSON(cmd.OutOrStdout(), seo.PostMetadata(*post, appConfig))
		}
		return writeJSON(cmd.OutOrStdout(), post)
	},
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print metadata as JSON")
	showCmd.Flags().BoolVar(&showMeta, "metadata", false, "print the page metadata instead of the post")
	rootCmd.AddCommand(listCmd, showCmd)
}
