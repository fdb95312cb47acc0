package main

import (
	"github.com/spf13/cobra"

	"github.com/harlowe/bloglist"
	"github.com/harlowe/bloglist/views"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load content and start the blog server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.AdminPassword = bloglist.MustEnv("ADMIN_PASSWORD")
		cfg.SessionSecret = bloglist.MustEnv("ADMIN_SESSION_SECRET")

		app := bloglist.New(cfg, views.Default())
		defer app.Close()
		return app.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
