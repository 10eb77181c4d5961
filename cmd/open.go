package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/linkman/internal/browser"
	"github.com/user/linkman/internal/config"
	"github.com/user/linkman/internal/db"
)

var openPanel string

var openCmd = &cobra.Command{
	Use:   "open [query]",
	Short: "Open stored links in the browser",
	Long:  "Open every stored link matching the optional query in the system browser. With no query, all of the panel's links are opened.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		panel, err := panelName(openPanel)
		if err != nil {
			return err
		}

		store, err := db.NewStore(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer store.Close()

		urls, err := store.Search(panel, query)
		if err != nil {
			return fmt.Errorf("failed to list links: %w", err)
		}
		if len(urls) == 0 {
			fmt.Println("No matching links.")
			return nil
		}

		opened := browser.OpenAll(urls)
		fmt.Printf("Opened %d of %d links\n", opened, len(urls))
		return nil
	},
}

func init() {
	openCmd.Flags().StringVar(&openPanel, "panel", db.PanelLeft, "Panel to open links from (left/right)")
	rootCmd.AddCommand(openCmd)
}
