// trvlora TUI - A terminal client for conversational travel search.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/trvlora-tui/internal/config"
	"github.com/jeranaias/trvlora-tui/internal/conversation"
	"github.com/jeranaias/trvlora-tui/internal/logx"
	"github.com/jeranaias/trvlora-tui/internal/suggest"
	"github.com/jeranaias/trvlora-tui/internal/trvlora"
	"github.com/jeranaias/trvlora-tui/internal/ui/chat"
	"github.com/jeranaias/trvlora-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to config file (default ~/.trvlora/config.toml)")
		ask         = flag.String("ask", "", "send this message on startup without echoing it")
		debug       = flag.Bool("debug", false, "log at debug level regardless of config")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("trvlora %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: trvlora needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	level := cfg.Log.Level
	if *debug {
		level = "debug"
	}
	closeLog, err := logx.Init(cfg.Log.File, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logx.Info().
		Str("version", Version).
		Str("base_url", cfg.API.BaseURL).
		Msg("starting trvlora")

	if err := runTUI(cfg, *configPath, *ask); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config from an explicit path, or from the default
// location when none is given. A missing default file means defaults; a
// missing explicit file is an error.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// =============================================================================
// TUI
// =============================================================================

func runTUI(cfg *config.Config, configPath string, initialPrompt string) error {
	theme := styles.NewTheme()

	client := trvlora.NewClientWithConfig(&trvlora.ClientConfig{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           time.Duration(cfg.API.TimeoutSecs) * time.Second,
		RequestsPerMinute: cfg.API.RequestsPerMinute,
	})

	engine := suggest.NewEngineWith(cfg.Prompts.Keywords, cfg.Prompts.FollowUps, cfg.Prompts.Initial)
	controller := conversation.NewController(client, engine)
	controller.SetRequestTimeout(time.Duration(cfg.API.TimeoutSecs) * time.Second)

	m := chat.New(controller, cfg, theme)
	if initialPrompt != "" {
		m = m.WithInitialPrompt(initialPrompt)
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	// Hot-reload the prompt catalog when the config file changes on disk.
	if cfg.Prompts.WatchCatalog {
		watchPath := configPath
		if watchPath == "" {
			var err error
			watchPath, err = config.ConfigPath()
			if err != nil {
				return err
			}
		}

		watcher, err := config.NewWatcher(watchPath, func(next *config.Config) {
			config.SetGlobal(next)
			p.Send(chat.ConfigReloadedMsg{Config: next})
		})
		if err != nil {
			logx.Warn().Err(err).Msg("config watcher unavailable")
		} else if err := watcher.Watch(); err != nil {
			logx.Warn().Err(err).Msg("config watcher failed to start")
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running trvlora: %w", err)
	}
	return nil
}
