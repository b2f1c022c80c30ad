package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gemchat/pkg/chat"
	"gemchat/pkg/config"
	"gemchat/pkg/gemini"
	"gemchat/pkg/logging"
	"gemchat/pkg/ui"

	tea "charm.land/bubbletea/v2"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env is optional; real config lives in ~/.gemchat.
	_ = godotenv.Load()

	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if _, err := logging.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	slog.Info("gemchat_start",
		"model", cfg.Gemini.Model,
		"has_api_key", cfg.Gemini.APIKey != "",
	)

	client := gemini.NewClient(cfg.Gemini.APIKey)
	client.BaseURL = cfg.Gemini.BaseURL
	client.Model = cfg.Gemini.Model
	client.SetTimeout(time.Duration(cfg.Gemini.APITimeoutSeconds) * time.Second)

	session := chat.NewSession(ui.Greeting)
	model := ui.NewModel(session, gemini.NewResolver(client))

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		slog.Error("gemchat_exit", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	slog.Info("gemchat_exit")
}
