package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/infrastructure/config"
)

var schemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := activeConfigFile()
		if err != nil {
			return err
		}
		_, statErr := os.Stat(path)
		renderer := styles.NewConfigRenderer(GetApp().Theme)
		_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPath(path, statErr == nil))
		return err
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for the configuration file",
	Long: `Print the JSON schema describing config.toml.

With --write the schema is saved next to the config file instead, where
editors with TOML schema support (taplo, Even Better TOML) can pick it up.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if schemaWrite {
			path, err := config.GetSchemaFile()
			if err != nil {
				return err
			}
			if err := config.GenerateSchemaFile(path); err != nil {
				return err
			}
			renderer := styles.NewConfigRenderer(GetApp().Theme)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCreated("schema", path))
			return err
		}

		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, the config file and TESSERA_* environment overrides are merged.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := config.EncodeOrdered(GetApp().Config)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file and its schema",
	Long:  `Write the default configuration to the config path. An existing file is left untouched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := activeConfigFile()
		if err != nil {
			return err
		}
		renderer := styles.NewConfigRenderer(GetApp().Theme)
		out := cmd.OutOrStdout()

		if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("config file already exists: %s", path)
			}
			return err
		}
		fmt.Fprintln(out, renderer.RenderCreated("config", path))

		schemaPath, err := config.GetSchemaFile()
		if err != nil {
			return err
		}
		if err := config.GenerateSchemaFile(schemaPath); err != nil {
			return err
		}
		fmt.Fprintln(out, renderer.RenderCreated("schema", schemaPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configShowCmd, configInitCmd)
	configSchemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write the schema file next to the config file")
}

// activeConfigFile returns the --config path when given, the file viper
// loaded otherwise, and the XDG default when no file exists yet.
func activeConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	if a := GetApp(); a != nil {
		if used := a.Manager.GetConfigFile(); used != "" {
			return used, nil
		}
	}
	return config.GetConfigFile()
}
