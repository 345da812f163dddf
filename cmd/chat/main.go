package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"travel-assistant/config"
	"travel-assistant/internal/app"
	"travel-assistant/internal/memory"
	"travel-assistant/pkg/log"
)

func main() {
	sessionID := flag.String("session", "cli", "session id, also the history file name")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Keep the terminal for the conversation.
	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	assistant, err := app.Build(ctx, cfg, logger)
	if err != nil {
		fmt.Println("Failed to build assistant: ", err)
		return
	}
	defer assistant.Close()

	historyPath := ""
	if cfg.Session.HistoryDir != "" {
		historyPath = filepath.Join(cfg.Session.HistoryDir, *sessionID+".json")
		if err := restoreSession(ctx, assistant.Store, *sessionID, historyPath); err != nil {
			logger.Warnf(ctx, "Failed to restore session from %s: %v", historyPath, err)
		}
	}

	r := &repl{uc: assistant.Orchestrator, sessionID: *sessionID, in: os.Stdin, out: os.Stdout}
	r.run(ctx)

	if historyPath != "" {
		if err := persistSession(context.Background(), assistant.Store, *sessionID, historyPath); err != nil {
			logger.Warnf(ctx, "Failed to save session to %s: %v", historyPath, err)
		}
	}
}

// restoreSession loads the history file into the store. A missing file
// starts a fresh session.
func restoreSession(ctx context.Context, store memory.Store, id, path string) error {
	s := memory.NewSession()
	if err := s.LoadFile(path); err != nil {
		return err
	}
	if s.Len() == 0 {
		return nil
	}
	return store.Save(ctx, id, s)
}

func persistSession(ctx context.Context, store memory.Store, id, path string) error {
	s, err := store.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.SaveFile(path)
}
