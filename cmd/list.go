package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/user/linkman/internal/config"
	"github.com/user/linkman/internal/db"
)

var (
	listPanel  string
	listFilter string
	listJSON   bool
	listPlain  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored links",
	Long:  "Print the links last imported into a panel, optionally filtered by a case-insensitive substring.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		panel, err := panelName(listPanel)
		if err != nil {
			return err
		}

		store, err := db.NewStore(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer store.Close()

		if listJSON {
			// Full records, including source folder and import time.
			records, err := store.Links(panel)
			if err != nil {
				return fmt.Errorf("failed to list links: %w", err)
			}
			filtered := make([]db.Link, 0, len(records))
			q := strings.ToLower(listFilter)
			for _, r := range records {
				if q == "" || strings.Contains(strings.ToLower(r.URL), q) {
					filtered = append(filtered, r)
				}
			}
			data, err := json.MarshalIndent(filtered, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		urls, err := store.Search(panel, listFilter)
		if err != nil {
			return fmt.Errorf("failed to list links: %w", err)
		}
		if listPlain {
			return outputPlaintext(urls)
		}
		if len(urls) == 0 {
			fmt.Println("No links stored. Run 'linkman import <folder> --save' first.")
			return nil
		}
		for i, u := range urls {
			fmt.Printf("%d. %s\n", i+1, u)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listPanel, "panel", db.PanelLeft, "Panel to list (left/right)")
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Substring filter (case-insensitive)")
	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, "Output as JSON")
	listCmd.Flags().BoolVarP(&listPlain, "plaintext", "p", false, "Output as plaintext")
	rootCmd.AddCommand(listCmd)
}
