package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keshet-app/keshet/internal/config"
	"github.com/keshet-app/keshet/internal/consent"
	"github.com/keshet-app/keshet/internal/database"
	"github.com/keshet-app/keshet/internal/identity"
	"github.com/keshet-app/keshet/internal/logging"
	"github.com/keshet-app/keshet/internal/pages"
	"github.com/keshet-app/keshet/internal/secrets"
	"github.com/keshet-app/keshet/internal/tui"
)

func main() {
	ctx := context.Background()

	if len(os.Args) > 1 {
		if err := runCommand(os.Args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.MigrationsPath); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	store := consent.NewSQLiteStore(db)
	client := identity.NewHTTPClient(cfg.Server.BaseURL, cfg.ResolveToken())
	loader := identity.NewLoader(client, store, logger)

	shell := tui.New(ctx, cfg, pages.Builtin(), loader, store, logger)

	p := tea.NewProgram(shell, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// runCommand handles the non-interactive subcommands for token management.
func runCommand(args []string) error {
	switch args[0] {
	case "set-token":
		if len(args) < 2 {
			return fmt.Errorf("usage: keshet set-token <token>")
		}
		if err := secrets.Store(secrets.TokenName, args[1]); err != nil {
			return fmt.Errorf("store token: %w", err)
		}
		fmt.Println("token stored")
		return nil
	case "clear-token":
		if err := secrets.Delete(secrets.TokenName); err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
		fmt.Println("token cleared")
		return nil
	default:
		return fmt.Errorf("unknown command %q (expected set-token or clear-token)", args[0])
	}
}
