// Connectify Live TUI - a terminal client for the Connectify team chat.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/connectify/connectify-tui/internal/auth"
	"github.com/connectify/connectify-tui/internal/config"
	"github.com/connectify/connectify-tui/internal/logging"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:          "connectify",
	Short:        "Terminal client for the Connectify Live team chat",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("connectify %s (%s, %s)\n", Version, GitCommit, BuildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write a debug log")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runTUI wires the application together and runs the Bubble Tea program.
func runTUI() error {
	// A TUI needs a terminal on both ends.
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("connectify needs an interactive terminal")
	}

	var cfg *config.Config
	var err error
	if flagConfig != "" {
		cfg, err = config.LoadFrom(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagDebug {
		cfg.Log.Debug = true
	}

	appDir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolve app directory: %w", err)
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = logging.DefaultPath(appDir)
	}
	log, err := logging.New(cfg.Log.Debug, logPath)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer func() { _ = log.Sync() }()

	accountsPath := cfg.Auth.AccountsPath
	if accountsPath == "" {
		accountsPath = filepath.Join(appDir, "accounts.toml")
	}
	provider, err := auth.NewLocalProvider(accountsPath)
	if err != nil {
		return fmt.Errorf("open accounts store: %w", err)
	}

	app := NewApp(cfg, provider, log)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
