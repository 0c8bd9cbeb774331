package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List prompt categories",
	Long:  `List the catalog's categories in source order.`,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Repository.Reload(ctx, a.Language(ctx)); err != nil {
		return err
	}

	for _, name := range a.Repository.ListCategories() {
		fmt.Println(name)
	}
	return nil
}
