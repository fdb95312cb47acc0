package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "bloglist",
	Short: "bloglist is a blog listing engine built with Go, Echo, and templ",
	Long: `bloglist serves a blog site from externally supplied post metadata:
listing pages with post cards and pagination, tag pages, a post page,
RSS and sitemap, and a small admin dashboard.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "site.yaml", "path to the YAML site config")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
