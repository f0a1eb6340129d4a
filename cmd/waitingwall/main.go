// Copyright (C) 2026 WaitingWall
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// The waitingwall binary is a headless driver for the WaitingWall state
// store. It stands in for the web client: the demo command walks a
// scripted session against the store, and the session commands inspect
// the durable session record.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/melakufr/waiting-wall/internal/config"
	"github.com/melakufr/waiting-wall/pkg/logging"
)

// --- Global Command Variables ---
var (
	configPath string
	dataDir    string
	verbose    bool
	jsonLogs   bool
	quiet      bool

	cfg    config.Config
	logger *logging.Logger

	rootCmd = &cobra.Command{
		Use:   "waitingwall",
		Short: "A headless driver for the WaitingWall social feed state store",
		Long: `waitingwall exercises the WaitingWall client state store without
a browser: seed data, login, post, like, comment, follow, and inspect
the durable session record.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}
			var err error
			cfg, err = config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}
			if jsonLogs {
				cfg.Logging.JSON = true
			}
			if quiet {
				cfg.Logging.Quiet = true
			}
			logger = logging.New(logging.Config{
				Level:   logging.ParseLevel(cfg.Logging.Level),
				LogDir:  cfg.Logging.Dir,
				Service: "waitingwall",
				JSON:    cfg.Logging.JSON,
				Quiet:   cfg.Logging.Quiet,
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Close()
			}
		},
	}

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Seed the store and walk through a scripted session",
		RunE:  runDemo, // Defined in cmd_demo.go
	}

	// --- Sessions ---
	sessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Inspect the durable session record",
	}
	sessionShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the stored session record, if any",
		RunE:  runSessionShow, // Defined in cmd_session.go
	}
	sessionClearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored session record",
		RunE:  runSessionClear, // Defined in cmd_session.go
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.waitingwall/waitingwall.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "force JSON logs on stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "disable stderr logging")

	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(sessionCmd)
}
