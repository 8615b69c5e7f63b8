/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/jj05y/MTT/core/config"
	"github.com/jj05y/MTT/core/converter"
	"github.com/jj05y/MTT/core/logger"
	"github.com/spf13/cobra"
)

var (
	workingDir       string
	convertDir       string
	autoGeneratedTag bool
	enumValues       string
	pathStyle        string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Run the conversion pipeline once",
	Long: `Scans the working directories, parses every model file and writes the
TypeScript declarations into the convert directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		logger.Debug("convert called")

		cfg, err := loadConfigWithFlags(cmd)
		if err != nil {
			return err
		}

		conv := converter.NewConverter(cfg, logger.GetLogFromLevel(logger.INFO))
		if err := conv.Execute(); err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
		return nil
	},
}

// loadConfigWithFlags reads mtt.yaml and lets explicitly set flags win.
func loadConfigWithFlags(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("working-dir") {
		cfg.WorkingDirectory = workingDir
	}
	if cmd.Flags().Changed("convert-dir") {
		cfg.ConvertDirectory = convertDir
	}
	if cmd.Flags().Changed("auto-generated-tag") {
		cfg.AutoGeneratedTag = autoGeneratedTag
	}
	if cmd.Flags().Changed("enum-values") {
		cfg.EnumValues = enumValues
	}
	if cmd.Flags().Changed("path-style") {
		cfg.PathStyle = pathStyle
	}

	return cfg, nil
}

func registerConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&workingDir, "working-dir", "", "Input root(s); separate multiple roots with semicolons")
	cmd.Flags().StringVar(&convertDir, "convert-dir", "", "Output directory (cleared and recreated each run)")
	cmd.Flags().BoolVar(&autoGeneratedTag, "auto-generated-tag", true, "Prepend the auto-generated header line")
	cmd.Flags().StringVar(&enumValues, "enum-values", config.EnumValuesNumeric, "Enum value emission mode: numeric or string")
	cmd.Flags().StringVar(&pathStyle, "path-style", config.PathStyleDefault, "Output path/name style: default or kebab")
}

func init() {
	registerConvertFlags(convertCmd)
	rootCmd.AddCommand(convertCmd)
}
