package rules

import (
	"context"
	"embed"

	"github.com/dmitrymomot/forma/pkg/i18n"
)

//go:embed messages/*.yaml
var messagesFS embed.FS

// DefaultCatalog loads the embedded en-US and pt-BR message templates.
func DefaultCatalog(opts ...i18n.Option) (*i18n.Catalog, error) {
	return i18n.NewCatalog(context.Background(), i18n.NewFSAdapter(messagesFS, "messages"), opts...)
}
