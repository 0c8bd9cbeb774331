package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jotkit/jotkit/internal/config"
	"github.com/jotkit/jotkit/internal/settings"
	"github.com/spf13/cobra"
)

var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or set the prompt language",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLang,
}

func init() {
	rootCmd.AddCommand(langCmd)
}

func runLang(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	store, err := settings.Open(ctx, cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		lang, err := store.Get(ctx, settings.KeyLanguage)
		if err != nil {
			return err
		}
		if lang == "" {
			lang = cfg.Language
		}
		fmt.Println(lang)
		return nil
	}

	lang := strings.ToLower(args[0])
	if len(lang) != 2 {
		return fmt.Errorf("language must be a two-letter code, got %q", args[0])
	}
	if err := store.Set(ctx, settings.KeyLanguage, lang); err != nil {
		return err
	}

	fmt.Println(lang)
	return nil
}
