// Package commands implements the balance command line.
package commands

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/fruit-balance/catalog"
	"github.com/lixenwraith/fruit-balance/config"
	"github.com/lixenwraith/fruit-balance/locale"
	"github.com/lixenwraith/fruit-balance/storage"
	"github.com/lixenwraith/fruit-balance/storage/sqlite"
)

// Flag values; non-empty or changed flags override BALANCE_* variables
var (
	dataDir     string
	soundDir    string
	catalogPath string
	keymapPath  string
	localeFlag  string
	debug       bool
	mute        bool
)

// Per-invocation state prepared by PersistentPreRunE
var (
	cfg     *config.Config
	items   *catalog.Catalog
	printer *locale.Printer
	logFile *os.File
)

// Execute runs the root command
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "balance",
		Short:        "Compare fruit weights on a balance",
		Long:         "Drag fruit onto the two pans and pick <, = or > to say which side is heavier.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runPlay,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			applyFlags(cmd, c)
			cfg = c

			logFile = setupLogging(cfg.Debug)

			items, err = catalog.Load(cfg.CatalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			bundle, err := locale.LoadEmbedded()
			if err != nil {
				return fmt.Errorf("load locales: %w", err)
			}
			printer = bundle.Printer(bundle.Match(cfg.Locale))
			log.Printf("config: locale=%s data=%s items=%d", printer.Locale(), cfg.DataDir, items.Len())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
				logFile = nil
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&dataDir, "data-dir", "", "preference directory (env BALANCE_DATA_DIR)")
	pf.StringVar(&soundDir, "sound-dir", "", "directory containing sounds/ (env BALANCE_SOUND_DIR)")
	pf.StringVar(&catalogPath, "catalog", "", "fruit catalog YAML, built-in when empty (env BALANCE_CATALOG)")
	pf.StringVar(&keymapPath, "keymap", "", "YAML key binding overrides (env BALANCE_KEYMAP)")
	pf.StringVar(&localeFlag, "locale", "", "display language, e.g. en-US or zh-CN (env BALANCE_LOCALE)")
	pf.BoolVar(&debug, "debug", false, "write logs/balance.log (env BALANCE_DEBUG)")
	pf.BoolVar(&mute, "mute", false, "never open the audio device (env BALANCE_MUTE)")

	root.AddCommand(soundCmd(), catalogCmd())
	return root
}

// applyFlags overlays explicitly set flags on the environment config
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		c.DataDir = dataDir
	}
	if flags.Changed("sound-dir") {
		c.SoundDir = soundDir
	}
	if flags.Changed("catalog") {
		c.CatalogPath = catalogPath
	}
	if flags.Changed("keymap") {
		c.KeymapPath = keymapPath
	}
	if flags.Changed("locale") {
		c.Locale = localeFlag
	}
	if flags.Changed("debug") {
		c.Debug = debug
	}
	if flags.Changed("mute") {
		c.Mute = mute
	}
}

// openStore opens the SQLite preference store under the data directory
func openStore() (storage.Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s, err := sqlite.Open(cfg.PreferencePath())
	if err != nil {
		return nil, err
	}
	return s, nil
}
