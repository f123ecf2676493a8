package usecase

import (
	"context"
	"fmt"

	"github.com/arkforge/arkpid/internal/domain"
)

type mockAuthorityRepo struct {
	authorities map[int]domain.Authority
}

func (m *mockAuthorityRepo) Get(ctx context.Context, naan int) (domain.Authority, error) {
	if a, ok := m.authorities[naan]; ok {
		return a, nil
	}
	return domain.Authority{}, domain.NotFoundError{Resource: "authority"}
}

type mockShoulderRepo struct {
	shoulders map[string]domain.Shoulder
}

func shoulderKey(shoulder string, naan int) string {
	return fmt.Sprintf("%s@%d", shoulder, naan)
}

func (m *mockShoulderRepo) Get(ctx context.Context, shoulder string, naan int) (domain.Shoulder, error) {
	if s, ok := m.shoulders[shoulderKey(shoulder, naan)]; ok {
		return s, nil
	}
	return domain.Shoulder{}, domain.NotFoundError{Resource: "shoulder"}
}

type mockMappingRepo struct {
	mappings   map[string]domain.Mapping
	listed     []domain.Mapping
	getCalls   int
	dupInserts int
}

func (m *mockMappingRepo) Get(ctx context.Context, identifier string) (domain.Mapping, error) {
	m.getCalls++
	if rec, ok := m.mappings[identifier]; ok {
		return rec, nil
	}
	return domain.Mapping{}, domain.NotFoundError{Resource: "mapping"}
}

func (m *mockMappingRepo) Insert(ctx context.Context, mapping domain.Mapping) error {
	if m.dupInserts > 0 {
		m.dupInserts--
		return domain.DuplicateError{Identifier: mapping.Identifier}
	}
	if _, ok := m.mappings[mapping.Identifier]; ok {
		return domain.DuplicateError{Identifier: mapping.Identifier}
	}
	if m.mappings == nil {
		m.mappings = map[string]domain.Mapping{}
	}
	m.mappings[mapping.Identifier] = mapping
	return nil
}

func (m *mockMappingRepo) List(ctx context.Context, shoulder string, limit int) ([]domain.Mapping, error) {
	out := []domain.Mapping{}
	for _, rec := range m.listed {
		if shoulder != "" && rec.Shoulder != shoulder {
			continue
		}
		out = append(out, rec)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

type mockCache struct {
	entries     map[string]string
	invalidated []string
}

func (m *mockCache) Get(ctx context.Context, identifier string) (string, bool) {
	target, ok := m.entries[identifier]
	return target, ok
}

func (m *mockCache) Set(ctx context.Context, identifier, target string) {
	if m.entries == nil {
		m.entries = map[string]string{}
	}
	m.entries[identifier] = target
}

func (m *mockCache) Invalidate(ctx context.Context, identifier string) {
	m.invalidated = append(m.invalidated, identifier)
	delete(m.entries, identifier)
}
