package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show the prompt with a given id",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
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

	if err := a.Repository.Reload(ctx, a.Language(ctx)); err != nil {
		fmt.Println(tr.Resolve("content_unavailable"))
		return err
	}

	prompt, ok := a.Repository.FindByID(args[0])
	if !ok {
		fmt.Println(tr.Resolve("prompt_not_found"))
		return fmt.Errorf("no prompt with id %q", args[0])
	}

	printPrompt(tr, prompt, a.Config.BaseURL)
	return nil
}
