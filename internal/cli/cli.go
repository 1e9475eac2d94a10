//-------------------------------------------------------------------------
//
// RC Logistics Warehouse Generator
//
// Copyright (c) 2022 - 2026, RC Cargo & Logistics
// Released under the MIT License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for rc-dwgen.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/rclogistics/rc-dwgen/internal/config"
	"github.com/rclogistics/rc-dwgen/internal/logging"
	"github.com/rclogistics/rc-dwgen/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	connection string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "rc-dwgen",
		Short: "Logistics data warehouse generator for RC Cargo & Logistics",
		Long: `rc-dwgen generates a synthetic logistics dataset (customers, bookings,
shipments and payments), transforms it into a dimensional star schema and
loads the result into an embedded SQLite warehouse, CSV files, and
optionally a PostgreSQL database.

The generated warehouse is analytics-ready: surrogate keys, conformed
dimensions and pre-computed measures such as transit days and revenue
per kilogram.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./rc-dwgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&connection, "connection", "",
		"PostgreSQL connection string (optional load target)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(historyCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if connection != "" {
		cfg.Connection = connection
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Reinitialize logger with config
	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}
