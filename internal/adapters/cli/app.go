package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/devbush/ytscribe/internal/adapters/store"
	"github.com/devbush/ytscribe/internal/application"
	"github.com/devbush/ytscribe/internal/config"
	"github.com/devbush/ytscribe/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config *config.Config
	Fs     afero.Fs
	Logger zerolog.Logger
	Store  ports.TranscriptStore

	IngestSvc  *application.IngestService
	ExportSvc  *application.ExportService
	LibrarySvc *application.LibraryService
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if quietFlag {
		level = zerolog.ErrorLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	fs := afero.NewOsFs()

	transcriptStore, err := store.NewFileStore(fs, cfg.LibraryDir())
	if err != nil {
		return nil, err
	}

	return &App{
		Config:     cfg,
		Fs:         fs,
		Logger:     logger,
		Store:      transcriptStore,
		IngestSvc:  application.NewIngestService(transcriptStore, logger),
		ExportSvc:  application.NewExportService(transcriptStore),
		LibrarySvc: application.NewLibraryService(transcriptStore),
	}, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
