package vessels

import (
	"context"
	"log/slog"
)

// Source yields the raw vessel names a registry is built from.
type Source interface {
	Names(ctx context.Context) ([]string, error)
}

// Load builds the registry from the source. A failing source degrades to an
// empty registry so the service keeps serving with vessel checks failing
// closed instead of refusing to start.
func Load(ctx context.Context, source Source, logger *slog.Logger) *Registry {
	names, err := source.Names(ctx)
	if err != nil {
		logger.WarnContext(ctx, "vessel registry unavailable, continuing with empty registry",
			"error", err.Error(),
		)
		return New(nil)
	}
	registry := New(names)
	logger.InfoContext(ctx, "vessel registry loaded", "vessels", registry.Size())
	return registry
}
