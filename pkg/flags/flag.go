// pkg/flags/flag.go
package flags

import (
	"flag"
	"log/slog"
	"os"
	"storefront-docs/pkg/config"
)

var (
	defaultsPath = "./config.yaml"
	Port         = flag.Int("port", 3000, "port to listen on")
	Mode         = flag.String("mode", "", "mode to run")
	WebsiteID    = flag.String("website-id", "", "website identifier for the branding lookup (overrides config)")
)

func ParseFlag() {
	filePath := flag.String("config", "./config.yaml", "Path to the config file")
	flag.Parse()

	if *Port < 0 || *Port > 65535 {
		slog.Error("invalid port", "port", *Port)
		os.Exit(1)
	}

	if *filePath != "" {
		defaultsPath = *filePath
	}

	config.FilePath(defaultsPath)
}
