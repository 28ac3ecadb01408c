package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/USAID-OHA-SI/visiblespectrum/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "visiblespectrum",
	Short: "Pull sub-national HIV estimates from Naomi",
	Long:  "Resolves country, indicator, age, sex and period filters, queries the Naomi viewer API once per combination and assembles the results into one table.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
