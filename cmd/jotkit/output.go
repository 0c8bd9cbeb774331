package main

import (
	"fmt"

	"github.com/jotkit/jotkit/internal/catalog"
	"github.com/jotkit/jotkit/internal/deeplink"
	"github.com/jotkit/jotkit/internal/i18n"
)

func printPrompt(tr i18n.Translator, p catalog.Prompt, baseURL string) {
	fmt.Printf("%s: %s [%s]\n\n", tr.Resolve("category"), p.Category, p.ID)
	fmt.Println(p.Text)
	if p.Purpose != "" {
		fmt.Printf("\n%s: %s\n", tr.Resolve("purpose"), p.Purpose)
	}
	fmt.Printf("\n%s: %s\n", tr.Resolve("share_link"), deeplink.ShareLink(baseURL, p))
}
