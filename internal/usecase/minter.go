package usecase

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"github.com/arkforge/arkpid"
	"github.com/arkforge/arkpid/internal/domain"
	"github.com/arkforge/arkpid/noid"
)

const (
	// DefaultTemplate applies when neither the request nor the shoulder
	// carries a template: six extended-class characters, no check digit.
	DefaultTemplate = ".reedede"

	// mintAttempts bounds the generate-check-insert loop. Hitting the bound
	// means the shoulder keyspace is saturated, not a transient fault.
	mintAttempts = 10
)

// MintInput carries the fields of a mint request after transport-level
// validation and authorization.
type MintInput struct {
	NAAN     int
	Shoulder string
	URL      string
	Who      string
	What     string
	When     string
	Template string
}

// Minter generates new identifiers under a registered shoulder.
type Minter struct {
	authorities     AuthorityRepository
	shoulders       ShoulderRepository
	mappings        MappingRepository
	cache           TargetCache
	defaultTemplate string
}

func NewMinter(
	authorities AuthorityRepository,
	shoulders ShoulderRepository,
	mappings MappingRepository,
	cache TargetCache,
	defaultTemplate string,
) *Minter {
	if defaultTemplate == "" {
		defaultTemplate = DefaultTemplate
	}
	return &Minter{
		authorities:     authorities,
		shoulders:       shoulders,
		mappings:        mappings,
		cache:           cache,
		defaultTemplate: defaultTemplate,
	}
}

// Mint renders candidate names from the effective template until one is
// free, persists the mapping and returns it. A duplicate-key response from
// the store counts as a collision and consumes one attempt, which turns the
// check-then-insert race into an optimistic retry.
func (m *Minter) Mint(ctx context.Context, input MintInput) (domain.Mapping, error) {
	ctx, span := tracer.Start(ctx, "Minter.Mint")
	defer span.End()

	if _, err := m.authorities.Get(ctx, input.NAAN); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Mapping{}, domain.NotFoundError{Resource: "authority"}
		}
		return domain.Mapping{}, errors.Wrap(err, "Minter.Mint: authority lookup failed")
	}

	shoulder, err := m.shoulders.Get(ctx, input.Shoulder, input.NAAN)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Mapping{}, domain.NotFoundError{Resource: "shoulder"}
		}
		return domain.Mapping{}, errors.Wrap(err, "Minter.Mint: shoulder lookup failed")
	}

	template := input.Template
	if template == "" {
		template = shoulder.Template
	}
	if template == "" {
		template = m.defaultTemplate
	}

	tmpl, err := noid.Parse(template)
	if err != nil {
		return domain.Mapping{}, err
	}

	naan := strconv.Itoa(input.NAAN)

	for attempt := 0; attempt < mintAttempts; attempt++ {
		discriminator, err := tmpl.Render(naan, shoulder.Shoulder)
		if err != nil {
			return domain.Mapping{}, err
		}

		assignedName := shoulder.Shoulder + discriminator
		identifier := arkpid.ComposeARK(naan, assignedName)

		_, err = m.mappings.Get(ctx, identifier)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.Mapping{}, errors.Wrap(err, "Minter.Mint: mapping lookup failed")
		}

		mapping := domain.Mapping{
			Identifier:   identifier,
			NAAN:         input.NAAN,
			AssignedName: assignedName,
			Shoulder:     shoulder.Shoulder,
			URL:          input.URL,
			Who:          input.Who,
			What:         input.What,
			When:         input.When,
		}

		err = m.mappings.Insert(ctx, mapping)
		if errors.Is(err, domain.ErrDuplicate) {
			// Lost the race to a concurrent minter.
			continue
		}
		if err != nil {
			return domain.Mapping{}, errors.Wrap(err, "Minter.Mint: insert failed")
		}

		if m.cache != nil {
			// A miss before this mint may have cached the global fallback.
			m.cache.Invalidate(ctx, identifier)
		}

		return mapping, nil
	}

	err = domain.ExhaustedError{Shoulder: input.Shoulder, Attempts: mintAttempts}
	span.RecordError(err)
	return domain.Mapping{}, err
}
