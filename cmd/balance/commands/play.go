package commands

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/fruit-balance/audio"
	"github.com/lixenwraith/fruit-balance/core"
	"github.com/lixenwraith/fruit-balance/input"
	"github.com/lixenwraith/fruit-balance/storage"
	"github.com/lixenwraith/fruit-balance/ui"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	overrides, err := input.LoadKeyConfigFile(cfg.KeymapPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore()
	if err != nil {
		// The game stays playable; the preference lasts for this session only
		log.Printf("storage: %v, using in-memory preferences", err)
		store = storage.NewMemoryStore()
	}
	defer store.Close()

	sounds := audio.NewSoundManager(ctx, cfg.Audio(), audio.OpenOutput(cfg.Audio(), cfg.Mute), store)
	defer func() {
		if err := sounds.Close(); err != nil {
			log.Printf("audio: close: %v", err)
		}
		played, failed := sounds.Stats()
		log.Printf("audio: played=%d failed=%d", played, failed)
	}()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashFinisher(screen.Fini)
	defer screen.Fini()

	// Restore the terminal before reporting a crash on this goroutine
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	app := ui.NewApp(screen, items, sounds, printer)
	app.SetFrameInterval(cfg.FrameInterval)
	app.SetKeyTable(input.MergeKeyTable(input.DefaultKeyTable(), overrides))
	if err := app.Run(ctx); err != nil {
		return err
	}
	log.Printf("game: final score %d", app.Game().Score())
	return nil
}
