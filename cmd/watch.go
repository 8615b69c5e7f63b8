/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/jj05y/MTT/core/converter"
	"github.com/jj05y/MTT/core/logger"
	"github.com/jj05y/MTT/core/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Convert, then re-convert whenever a model file changes",
	Long: `Runs the conversion once, then keeps watching the working directories
and re-runs the pipeline on every model file change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		logger.Debug("watch called")

		cfg, err := loadConfigWithFlags(cmd)
		if err != nil {
			return err
		}

		conv := converter.NewConverter(cfg, logger.GetLogFromLevel(logger.INFO))
		if err := conv.Execute(); err != nil {
			return fmt.Errorf("initial conversion failed: %w", err)
		}

		roots, err := cfg.WorkingDirectories()
		if err != nil {
			return err
		}

		fw, err := watcher.NewFileWatcher(roots, []string{cfg.ConvertDirectory}, conv.Execute)
		if err != nil {
			return err
		}
		defer fw.Close()

		logger.Info("Watching %v for changes...", roots)
		return fw.Watch()
	},
}

func init() {
	registerConvertFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}
