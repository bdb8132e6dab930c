package main

import (
	"github.com/spf13/cobra"

	"mdblog/internal/build"
)

var outDir string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := newPages()
		if err != nil {
			return err
		}
		log := logs.GetLogger("build")
		b := &build.Builder{Pages: pages, OutDir: outDir, Log: log}
		res, err := b.Run(cmd.Context())
		if err != nil {
			return err
		}
		log.Info("build complete", "pages", res.Pages, "warnings", len(res.Warnings), "out", outDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", "public", "output directory")
	rootCmd.AddCommand(buildCmd)
}
