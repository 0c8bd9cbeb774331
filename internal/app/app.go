package app

import (
	"context"
	"strings"

	"github.com/jotkit/jotkit/internal/catalog"
	"github.com/jotkit/jotkit/internal/config"
	"github.com/jotkit/jotkit/internal/i18n"
	"github.com/jotkit/jotkit/internal/loader"
	"github.com/jotkit/jotkit/internal/settings"
	"github.com/jotkit/jotkit/internal/source"
)

// App is the main application container holding all dependencies.
type App struct {
	Config     *config.Config
	Settings   settings.Store
	Chain      *loader.Chain
	Repository *catalog.Repository
}

// New creates a new application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := settings.Open(ctx, cfg.SettingsPath)
	if err != nil {
		return nil, err
	}

	fetcher := source.NewFetcher(source.FetcherConfig{
		Timeout: cfg.FetchTimeout,
		Retries: cfg.FetchRetries,
	})

	chain := loader.New(loader.Config{
		Fetcher:  fetcher,
		Attempts: loader.DefaultAttempts(cfg.CleanURL, cfg.NestedURL, cfg.LegacyURL),
	})

	repo := catalog.NewRepository(catalog.Config{Loader: chain})

	return &App{
		Config:     cfg,
		Settings:   store,
		Chain:      chain,
		Repository: repo,
	}, nil
}

// Language returns the active language: the stored preference when set,
// otherwise the configured default.
func (a *App) Language(ctx context.Context) string {
	if lang, err := a.Settings.Get(ctx, settings.KeyLanguage); err == nil && lang != "" {
		return strings.ToLower(lang)
	}
	return a.Config.Language
}

// Translator builds the label translator for the active language.
func (a *App) Translator(ctx context.Context) (i18n.Translator, error) {
	return i18n.NewTranslator(a.Language(ctx))
}

// LastShown returns the last displayed prompt, if it is still present in
// the current catalog. Used to avoid showing the same prompt twice in a
// row across invocations.
func (a *App) LastShown(ctx context.Context) *catalog.Prompt {
	id, err := a.Settings.Get(ctx, settings.KeyLastPromptID)
	if err != nil || id == "" {
		return nil
	}
	if p, ok := a.Repository.FindByID(id); ok {
		return &p
	}
	return nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Settings != nil {
		return a.Settings.Close()
	}
	return nil
}
