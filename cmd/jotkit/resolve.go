package main

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jotkit/jotkit/internal/deeplink"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Show what a shared prompt link opens",
	Long: `Resolve a shared address against the current catalog and show what
a client would display: a specific prompt, a random prompt pinned to a
category, or the whole-catalog fallback.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	u, err := url.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse link: %w", err)
	}

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	tr, err := a.Translator(ctx)
	if err != nil {
		return err
	}

	if err := a.Repository.Reload(ctx, a.Language(ctx)); err != nil {
		fmt.Println(tr.Resolve("content_unavailable"))
		return err
	}

	res := deeplink.Resolve(u.Query(), a.Repository.Catalog())

	switch {
	case res.Prompt != nil:
		fmt.Printf("%s:\n\n", tr.Resolve("resolved_prompt"))
		printPrompt(tr, *res.Prompt, a.Config.BaseURL)
	case res.Category != "":
		fmt.Printf("%s %q:\n\n", tr.Resolve("resolved_category"), res.Category)
		prompts, err := a.Repository.PromptsIn(res.Category)
		if err != nil {
			return err
		}
		printPrompt(tr, a.Repository.RandomFrom(prompts, nil), a.Config.BaseURL)
	default:
		// A NoMatch is never an error; it falls back to a random prompt.
		fmt.Printf("%s:\n\n", tr.Resolve("resolved_nothing"))
		printPrompt(tr, a.Repository.RandomAny(nil), a.Config.BaseURL)
		if res.BadParams {
			fmt.Printf("\n%s.\n", tr.Resolve("stale_params"))
		}
	}

	return nil
}
