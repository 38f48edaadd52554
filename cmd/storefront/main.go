package main

import (
	"log/slog"
	"os"

	"storefront-docs/internal/app/docs"
	"storefront-docs/internal/core/domain/types"
	"storefront-docs/pkg/flags"
)

func main() {
	flags.ParseFlag()

	switch *flags.Mode {
	case types.ModeDocsService:
		app := docs.NewDocsApp()
		app.Start()

	default:
		slog.Error("unknown mode", "mode", *flags.Mode)
		os.Exit(1)
	}
}
