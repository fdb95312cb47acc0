package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlowe/bloglist"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Seed the post store from the content directory and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.SetDefaults()
		store, err := bloglist.NewStore(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := bloglist.SeedStore(store, cfg.ContentDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "loaded %d posts from %s into %s\n", n, cfg.ContentDir, cfg.DatabasePath)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bloglist version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bloglist %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(versionCmd)
}
