package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/arkforge/arkpid"
	"github.com/arkforge/arkpid/internal/domain"
)

func newResolveFixture() (*mockShoulderRepo, *mockMappingRepo) {
	shoulders := &mockShoulderRepo{shoulders: map[string]domain.Shoulder{}}
	mappings := &mockMappingRepo{mappings: map[string]domain.Mapping{}}
	return shoulders, mappings
}

func TestResolveExactMatch(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	mappings.mappings["18474/b2r20t674"] = domain.Mapping{
		Identifier: "18474/b2r20t674",
		URL:        "https://example.org/item",
	}

	resolver := NewResolver(shoulders, mappings, nil, "https://n2t.net")

	target, err := resolver.Resolve(context.Background(), "18474/b2r20t674")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if target != "https://example.org/item" {
		t.Fatalf("unexpected target %q", target)
	}
}

func TestResolveExactMatchWithSuffix(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	mappings.mappings["18474/b2r20t674"] = domain.Mapping{
		Identifier: "18474/b2r20t674",
		URL:        "https://example.org/item/",
	}

	resolver := NewResolver(shoulders, mappings, nil, "https://n2t.net")

	target, err := resolver.Resolve(context.Background(), "18474/b2r20t674/extra/path")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if target != "https://example.org/item/extra/path" {
		t.Fatalf("unexpected target %q", target)
	}
}

func TestResolveShoulderPrefixThreeChars(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	shoulders.shoulders[shoulderKey("b2r", 18474)] = domain.Shoulder{
		Shoulder: "b2r", NAAN: 18474, RedirectPrefix: "https://long.example.org/",
	}
	shoulders.shoulders[shoulderKey("b2", 18474)] = domain.Shoulder{
		Shoulder: "b2", NAAN: 18474, RedirectPrefix: "https://short.example.org/",
	}

	resolver := NewResolver(shoulders, mappings, nil, "https://n2t.net")

	target, err := resolver.Resolve(context.Background(), "18474/b2r20t674")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if target != "https://long.example.org/20t674" {
		t.Fatalf("expected 3-character shoulder to win, got %q", target)
	}
}

func TestResolveShoulderPrefixTwoChars(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	shoulders.shoulders[shoulderKey("b2", 18474)] = domain.Shoulder{
		Shoulder: "b2", NAAN: 18474, RedirectPrefix: "https://short.example.org/",
	}

	resolver := NewResolver(shoulders, mappings, nil, "https://n2t.net")

	target, err := resolver.Resolve(context.Background(), "18474/b2r20t674")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if target != "https://short.example.org/r20t674" {
		t.Fatalf("unexpected target %q", target)
	}
}

func TestResolveEmptyMappingURLFallsThrough(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	mappings.mappings["18474/b2r20t674"] = domain.Mapping{Identifier: "18474/b2r20t674"}
	shoulders.shoulders[shoulderKey("b2", 18474)] = domain.Shoulder{
		Shoulder: "b2", NAAN: 18474, RedirectPrefix: "https://short.example.org/",
	}

	resolver := NewResolver(shoulders, mappings, nil, "https://n2t.net")

	target, err := resolver.Resolve(context.Background(), "18474/b2r20t674")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if target != "https://short.example.org/r20t674" {
		t.Fatalf("unexpected target %q", target)
	}
}

func TestResolveGlobalFallback(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	resolver := NewResolver(shoulders, mappings, nil, "https://n2t.net")

	target, err := resolver.Resolve(context.Background(), "18474/b2r20t674/suffix")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	// The suffix is dropped when handing off to the global resolver.
	if target != "https://n2t.net/ark:/18474/b2r20t674" {
		t.Fatalf("unexpected target %q", target)
	}
}

func TestResolveGlobalFallbackDisabled(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	resolver := NewResolver(shoulders, mappings, nil, "")

	_, err := resolver.Resolve(context.Background(), "18474/b2r20t674")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResolveMalformed(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	resolver := NewResolver(shoulders, mappings, nil, "https://n2t.net")

	if _, err := resolver.Resolve(context.Background(), "18474"); !errors.Is(err, arkpid.ErrMalformedIdentifier) {
		t.Fatalf("expected malformed identifier, got %v", err)
	}
	if _, err := resolver.Resolve(context.Background(), "abc/xyz"); !errors.Is(err, arkpid.ErrInvalidAuthority) {
		t.Fatalf("expected invalid authority, got %v", err)
	}
}

func TestResolveCachesSuffixFreeTargets(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	mappings.mappings["18474/b2r20t674"] = domain.Mapping{
		Identifier: "18474/b2r20t674",
		URL:        "https://example.org/item",
	}
	cache := &mockCache{}

	resolver := NewResolver(shoulders, mappings, cache, "https://n2t.net")

	if _, err := resolver.Resolve(context.Background(), "18474/b2r20t674"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if cache.entries["18474/b2r20t674"] != "https://example.org/item" {
		t.Fatalf("expected target to be cached, got %v", cache.entries)
	}

	// Second call is served from the cache.
	before := mappings.getCalls
	target, err := resolver.Resolve(context.Background(), "18474/b2r20t674")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if target != "https://example.org/item" {
		t.Fatalf("unexpected target %q", target)
	}
	if mappings.getCalls != before {
		t.Fatalf("expected cached resolution to skip the store")
	}
}

func TestResolveSuffixedLookupsNotCached(t *testing.T) {
	shoulders, mappings := newResolveFixture()
	mappings.mappings["18474/b2r20t674"] = domain.Mapping{
		Identifier: "18474/b2r20t674",
		URL:        "https://example.org/item/",
	}
	cache := &mockCache{}

	resolver := NewResolver(shoulders, mappings, cache, "https://n2t.net")

	if _, err := resolver.Resolve(context.Background(), "18474/b2r20t674/extra"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if len(cache.entries) != 0 {
		t.Fatalf("expected no cache entries for suffixed lookups, got %v", cache.entries)
	}
}
