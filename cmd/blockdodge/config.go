package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockdodge/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the config search
order and the --difficulty preset are applied.

Search order:
  --config <path>
  ~/.blockdodge/configs/dodge.yaml
  ./configs/dodge.yaml
  built-in defaults

Examples:
  blockdodge config
  blockdodge config --difficulty hard > ~/.blockdodge/configs/dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
