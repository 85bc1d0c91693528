// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/BoostyLabs/ordtransfer/config"
)

// settingsEnv defines environment variable overriding default settings file path.
const settingsEnv = "ORDTRANSFER_SETTINGS"

var settingsPath string

var rootCmd = &cobra.Command{
	Use:           "ordtransfer",
	Short:         "ordtransfer builds unsigned PSBTs moving ordinals inscriptions.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	_ = godotenv.Load()

	defaultPath := config.DefaultPath
	if path := os.Getenv(settingsEnv); path != "" {
		defaultPath = path
	}

	rootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", defaultPath, "settings file path")

	rootCmd.AddCommand(blankCmd)
	rootCmd.AddCommand(makeTxCmd)
	rootCmd.AddCommand(estimateFeeCmd)
	rootCmd.AddCommand(txIDCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
