package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user/linkman/internal/config"
	"github.com/user/linkman/internal/tui"
)

var watchFlag bool

var rootCmd = &cobra.Command{
	Use:   "linkman",
	Short: "Dual-panel link manager TUI",
	Long:  "Linkman imports URLs from .url shortcut files in a folder, deduplicates and sorts them, and shows them in a searchable dual-panel TUI from which links open in the browser.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("watch") {
			cfg.Import.Watch = watchFlag
		}
		return tui.Run(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&watchFlag, "watch", false, "Re-import automatically when shortcut files change")
}
