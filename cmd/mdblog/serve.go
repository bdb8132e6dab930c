package main

import (
	"github.com/spf13/cobra"

	"mdblog/internal/serve"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the blog locally and reload browsers on changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := newPages()
		if err != nil {
			return err
		}
		s := serve.New(pages, logs.GetLogger("serve"))
		defer s.Close()
		return s.ListenAndServe(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", ":3000", "listen address")
	rootCmd.AddCommand(serveCmd)
}
