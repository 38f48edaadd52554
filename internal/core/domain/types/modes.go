package types

const (
	ModeDocsService = "docs-service"
)
