package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/kanba/internal/board"
	"github.com/jask/kanba/internal/config"
	"github.com/jask/kanba/internal/database"
	"github.com/jask/kanba/internal/database/repository"
	"github.com/jask/kanba/internal/service"
	"github.com/jask/kanba/internal/tui"
)

const saveTimeout = 5 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db, cfg.Board.SeedLanes); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	repo := repository.NewBoardRepo(db)
	initial, err := repo.Load(ctx)
	if err != nil {
		log.Fatalf("load board: %v", err)
	}

	svc, err := service.NewBoard(initial, log.Printf)
	if err != nil {
		log.Fatalf("wire board: %v", err)
	}

	// Persist every settled mutation. Writes are full snapshot rewrites,
	// cheap at board scale, so there is no dirty tracking.
	svc.OnChange(func(snap board.Snapshot) {
		sctx, cancel := context.WithTimeout(ctx, saveTimeout)
		defer cancel()
		if err := repo.Save(sctx, snap); err != nil {
			log.Printf("save board: %v", err)
		}
	})

	p := tea.NewProgram(tui.New(svc, cfg.Board.LaneWidth), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
