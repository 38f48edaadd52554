package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	FilePath(p)
}

const databaseSection = `
database:
  host: "localhost"
  port: 5432
  user: "postgres"
  password: "secret"
  database: "storefront"
  sslmode: "disable"
`

func TestParseYAMLDefaultsWebsiteID(t *testing.T) {
	writeConfig(t, databaseSection+`
storefront:
  base_url: "http://localhost:8080"
`)

	cfg, err := ParseYAML()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Storefront.BaseURL)
	assert.Equal(t, "1", cfg.Storefront.WebsiteID)
	assert.False(t, cfg.HasRabbitMQ())
}

func TestParseYAMLExplicitWebsiteID(t *testing.T) {
	writeConfig(t, databaseSection+`
storefront:
  base_url: "http://localhost:8080"
  website_id: "3"
`)

	cfg, err := ParseYAML()
	require.NoError(t, err)
	assert.Equal(t, "3", cfg.Storefront.WebsiteID)
}

func TestParseYAMLRequiresBaseURL(t *testing.T) {
	writeConfig(t, databaseSection)

	_, err := ParseYAML()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storefront.base_url")
}

func TestParseYAMLOptionalRabbitMQ(t *testing.T) {
	writeConfig(t, databaseSection+`
rabbitmq:
  host: "localhost"
  port: 5672
  user: "guest"
  password: "guest"

storefront:
  base_url: "http://localhost:8080"
`)

	cfg, err := ParseYAML()
	require.NoError(t, err)
	assert.True(t, cfg.HasRabbitMQ())
	assert.Equal(t, 5672, cfg.RabbitMQ.Port)
}

func TestParseYAMLIncompleteRabbitMQ(t *testing.T) {
	writeConfig(t, databaseSection+`
rabbitmq:
  host: "localhost"

storefront:
  base_url: "http://localhost:8080"
`)

	_, err := ParseYAML()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rabbitmq.port")
}

func TestParseYAMLUnknownSection(t *testing.T) {
	writeConfig(t, databaseSection+`
telemetry:
  enabled: "true"
`)

	_, err := ParseYAML()
	assert.Error(t, err)
}
