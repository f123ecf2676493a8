package usecase

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/arkforge/arkpid/internal/domain"
)

var tracer = otel.Tracer("usecase")

// AuthorityRepository defines lookup for naming authorities.
type AuthorityRepository interface {
	Get(ctx context.Context, naan int) (domain.Authority, error)
}

// ShoulderRepository defines lookup for shoulders scoped to an authority.
type ShoulderRepository interface {
	Get(ctx context.Context, shoulder string, naan int) (domain.Shoulder, error)
}

// MappingRepository defines storage operations for identifier mappings.
// Insert returns domain.ErrDuplicate when the identifier already exists;
// the store enforces the uniqueness constraint.
type MappingRepository interface {
	Get(ctx context.Context, identifier string) (domain.Mapping, error)
	Insert(ctx context.Context, mapping domain.Mapping) error
	List(ctx context.Context, shoulder string, limit int) ([]domain.Mapping, error)
}

// TargetCache caches resolved redirect targets. Implementations absorb
// their own backend failures; a nil cache disables caching entirely.
type TargetCache interface {
	Get(ctx context.Context, identifier string) (string, bool)
	Set(ctx context.Context, identifier, target string)
	Invalidate(ctx context.Context, identifier string)
}
