package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jotkit/jotkit/internal/app"
	"github.com/jotkit/jotkit/internal/catalog"
	"github.com/jotkit/jotkit/internal/config"
	"github.com/jotkit/jotkit/internal/settings"
	"github.com/spf13/cobra"
)

var (
	showCategory string
	showLang     string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a random journaling prompt",
	Long: `Show a random prompt from the catalog, never repeating the prompt
shown by the previous invocation. With --category the pick stays within
that category.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showCategory, "category", "", "pick within this category")
	showCmd.Flags().StringVar(&showLang, "lang", "", "override the stored language for this run")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	tr, err := a.Translator(ctx)
	if err != nil {
		return err
	}

	lang := a.Language(ctx)
	if showLang != "" {
		lang = strings.ToLower(showLang)
	}

	if err := a.Repository.Reload(ctx, lang); err != nil {
		fmt.Println(tr.Resolve("content_unavailable"))
		return err
	}

	exclude := a.LastShown(ctx)

	var prompt catalog.Prompt
	if showCategory != "" {
		prompts, err := a.Repository.PromptsIn(showCategory)
		if err != nil {
			fmt.Println(tr.Resolve("category_not_found"))
			return err
		}
		prompt = a.Repository.RandomFrom(prompts, exclude)
	} else {
		prompt = a.Repository.RandomAny(exclude)
	}

	printPrompt(tr, prompt, a.Config.BaseURL)

	return a.Settings.Set(ctx, settings.KeyLastPromptID, prompt.ID)
}

func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForLoad(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return app.New(ctx, cfg)
}
