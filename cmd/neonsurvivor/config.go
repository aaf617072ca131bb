package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anillaksu/neonsurvivor/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved game configuration",
	Long: `Print the configuration a run would use, as YAML.

Lookup order: --config, ~/.neonsurvivor/config.yaml,
./configs/survivor.yaml, ./config.json, then the built-in defaults.
Missing fields keep their default values.

Examples:
  neonsurvivor config
  neonsurvivor config --config ./config.json
  neonsurvivor config --defaults > ~/.neonsurvivor/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		newLogger(os.Stderr).Warn("config could not be loaded, showing defaults", "err", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
