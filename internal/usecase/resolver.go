package usecase

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"github.com/arkforge/arkpid"
	"github.com/arkforge/arkpid/internal/domain"
)

// Resolver turns raw identifiers into redirect targets via the fallback
// chain: exact mapping, shoulder prefix, global resolver.
type Resolver struct {
	shoulders      ShoulderRepository
	mappings       MappingRepository
	cache          TargetCache
	globalResolver string
}

// NewResolver constructs a Resolver. globalResolver is the base URL of the
// well-known external resolver (e.g. "https://n2t.net"); an empty value
// disables the global fallback. cache may be nil.
func NewResolver(
	shoulders ShoulderRepository,
	mappings MappingRepository,
	cache TargetCache,
	globalResolver string,
) *Resolver {
	return &Resolver{
		shoulders:      shoulders,
		mappings:       mappings,
		cache:          cache,
		globalResolver: globalResolver,
	}
}

// Resolve returns the redirect target for a raw identifier such as
// "18474/b2r20t674/some/suffix". It performs no writes.
func (r *Resolver) Resolve(ctx context.Context, raw string) (string, error) {
	ctx, span := tracer.Start(ctx, "Resolver.Resolve")
	defer span.End()

	naan, assignedName, suffix, err := arkpid.ParseARK(raw)
	if err != nil {
		return "", err
	}

	identifier := arkpid.ComposeARK(naan, assignedName)

	// Only suffix-free lookups are cached so a mint can invalidate the
	// single key for the identifier it just created.
	cacheable := r.cache != nil && suffix == ""
	if cacheable {
		if target, ok := r.cache.Get(ctx, identifier); ok {
			return target, nil
		}
	}

	mapping, err := r.mappings.Get(ctx, identifier)
	if err == nil && mapping.URL != "" {
		target := mapping.URL + suffix
		if cacheable {
			r.cache.Set(ctx, identifier, target)
		}
		return target, nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", errors.Wrap(err, "Resolver.Resolve: mapping lookup failed")
	}

	naanInt, err := strconv.Atoi(naan)
	if err != nil {
		return "", arkpid.InvalidAuthorityError{NAAN: naan}
	}

	// Longest prefix wins: a 3-character shoulder shadows a 2-character one.
	for _, width := range []int{3, 2} {
		if len(assignedName) < width {
			continue
		}

		shoulder, err := r.shoulders.Get(ctx, assignedName[:width], naanInt)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return "", errors.Wrap(err, "Resolver.Resolve: shoulder lookup failed")
		}

		if shoulder.RedirectPrefix != "" {
			target := shoulder.RedirectPrefix + assignedName[width:]
			if cacheable {
				r.cache.Set(ctx, identifier, target)
			}
			return target, nil
		}
		break
	}

	if r.globalResolver == "" {
		return "", domain.NotFoundError{Resource: "identifier"}
	}

	// The global resolver only receives identifiers this service does not
	// own, so the suffix is dropped here.
	target := r.globalResolver + "/ark:/" + identifier
	if cacheable {
		r.cache.Set(ctx, identifier, target)
	}
	return target, nil
}
