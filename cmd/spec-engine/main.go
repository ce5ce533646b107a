// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the spec-engine CLI.
// Implements: prd001-extraction, prd003-validation, prd004-analysis,
//             prd005-reporting, prd006-component-store (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the spec-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "spec-engine",
	Short: "Extract and validate component specifications from datasheets",
	Long: `spec-engine turns ingested datasheet text into typed component
specifications, assembles them into projects, validates them for fit and
power compatibility, and produces bills of materials and reports.

Each pipeline stage is a subcommand: analyze, validate, report, and
store. Stages communicate through files under the data and output
directories, so they compose in scripts and Makefiles.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./spec-engine.yaml or ~/.config/spec-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("spec-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "spec-engine"))
		}
	}

	viper.SetEnvPrefix("SPEC_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
