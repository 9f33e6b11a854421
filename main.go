package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"etheroll-go/internal/config"
	"etheroll-go/internal/storage"
	"etheroll-go/internal/ui"
)

func main() {
	if err := run(); err != nil {
		slog.Error("etheroll", "error", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	myApp := app.NewWithID(cfg.AppID)
	myApp.Settings().SetTheme(ui.NewTheme())
	if icon, err := fyne.LoadResourceFromPath(cfg.IconPath); err != nil {
		logger.Warn("failed to load icon", "path", cfg.IconPath, "error", err)
	} else {
		myApp.SetIcon(icon)
	}

	store, closeStore, err := openStore(cfg, myApp)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Error("failed to close store", "error", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	myWindow := myApp.NewWindow("EtherollApp")

	controller, err := ui.NewController(myWindow, storage.NewNetworkPreference(store), logger, nil)
	if err != nil {
		return fmt.Errorf("failed to build screens: %w", err)
	}

	myWindow.SetContent(controller.Content())
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	logger.Info("starting", "version", ui.Version, "store", cfg.Store)
	myWindow.ShowAndRun()
	return nil
}

func openStore(cfg *config.Config, a fyne.App) (storage.Store, func() error, error) {
	if cfg.Store == config.StoreLevelDB {
		ls, err := storage.OpenLevelStore(cfg.LevelDBPath)
		if err != nil {
			return nil, nil, err
		}
		return ls, ls.Close, nil
	}
	return storage.NewPreferencesStore(a), func() error { return nil }, nil
}
