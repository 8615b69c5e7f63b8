/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/jj05y/MTT/core/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of MTT",
	Long:  `Displays the version of MTT.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("MTT %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
