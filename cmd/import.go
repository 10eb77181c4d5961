package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/linkman/internal/config"
	"github.com/user/linkman/internal/db"
	"github.com/user/linkman/internal/importer"
)

var (
	importPanel string
	importSave  bool
	jsonOutput  bool
	plainOutput bool
)

var importCmd = &cobra.Command{
	Use:   "import <folder>",
	Short: "Import links from a folder of .url files",
	Long:  "Scan a folder for shortcut files, extract their URLs, and print the deduplicated sorted list. With --save the result also replaces the panel's stored links.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder := args[0]

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		collected, err := importer.Import(folder, cfg.Import.Pattern)
		if err != nil {
			return err
		}

		if importSave {
			panel, err := panelName(importPanel)
			if err != nil {
				return err
			}
			store, err := db.NewStore(cfg.DBPath())
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer store.Close()

			if err := store.Replace(panel, folder, collected); err != nil {
				return fmt.Errorf("failed to save links: %w", err)
			}
			switch panel {
			case db.PanelLeft:
				cfg.Panels.Left.Folder = folder
			case db.PanelRight:
				cfg.Panels.Right.Folder = folder
			}
			if err := config.Save(cfg); err != nil {
				fmt.Printf("Warning: could not save config: %v\n", err)
			}
		}

		if jsonOutput {
			return outputJSON(collected)
		}
		if plainOutput {
			return outputPlaintext(collected)
		}
		fmt.Printf("Imported %d unique links from %s\n", len(collected), folder)
		for _, u := range collected {
			fmt.Printf("  %s\n", u)
		}
		return nil
	},
}

func panelName(s string) (string, error) {
	switch s {
	case db.PanelLeft, "1":
		return db.PanelLeft, nil
	case db.PanelRight, "2":
		return db.PanelRight, nil
	}
	return "", fmt.Errorf("unknown panel %q (use left/right)", s)
}

func outputJSON(urls []string) error {
	data, err := json.MarshalIndent(urls, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func outputPlaintext(urls []string) error {
	for _, u := range urls {
		fmt.Println(u)
	}
	return nil
}

func init() {
	importCmd.Flags().StringVar(&importPanel, "panel", db.PanelLeft, "Panel to save into (left/right)")
	importCmd.Flags().BoolVar(&importSave, "save", false, "Replace the panel's stored links with the result")
	importCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	importCmd.Flags().BoolVarP(&plainOutput, "plaintext", "p", false, "Output as plaintext")
	rootCmd.AddCommand(importCmd)
}
