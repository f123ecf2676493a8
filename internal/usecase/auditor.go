package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/arkforge/arkpid"
	"github.com/arkforge/arkpid/internal/domain"
	"github.com/arkforge/arkpid/noid"
)

// invalidListBound caps the invalid-entry list in non-verbose reports.
const invalidListBound = 10

// AuditFilter narrows a batch check-digit audit.
type AuditFilter struct {
	// Shoulder restricts the audit to one shoulder when non-empty.
	Shoulder string
	// Limit caps the number of mappings walked; 0 means all.
	Limit int
	// Verbose lifts the bound on the reported invalid list.
	Verbose bool
}

// Auditor re-applies the check-digit codec across stored mappings to
// detect corruption or generation bugs. It never mutates records.
type Auditor struct {
	shoulders       ShoulderRepository
	mappings        MappingRepository
	defaultTemplate string
}

func NewAuditor(
	shoulders ShoulderRepository,
	mappings MappingRepository,
	defaultTemplate string,
) *Auditor {
	if defaultTemplate == "" {
		defaultTemplate = DefaultTemplate
	}
	return &Auditor{
		shoulders:       shoulders,
		mappings:        mappings,
		defaultTemplate: defaultTemplate,
	}
}

// Check walks stored mappings and reports valid/invalid/no-check counts
// plus the invalid identifiers with expected-vs-actual check digits.
func (a *Auditor) Check(ctx context.Context, filter AuditFilter) (arkpid.AuditReport, error) {
	ctx, span := tracer.Start(ctx, "Auditor.Check")
	defer span.End()

	mappings, err := a.mappings.List(ctx, filter.Shoulder, filter.Limit)
	if err != nil {
		return arkpid.AuditReport{}, errors.Wrap(err, "Auditor.Check: mapping list failed")
	}

	report := arkpid.AuditReport{}
	for _, mapping := range mappings {
		report.Total++

		template := a.defaultTemplate
		shoulder, err := a.shoulders.Get(ctx, mapping.Shoulder, mapping.NAAN)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return arkpid.AuditReport{}, errors.Wrap(err, "Auditor.Check: shoulder lookup failed")
		}
		if err == nil && shoulder.Template != "" {
			template = shoulder.Template
		}

		naan := strconv.Itoa(mapping.NAAN)
		discriminator := strings.TrimPrefix(mapping.AssignedName, mapping.Shoulder)
		result := noid.Validate(discriminator, template, naan, mapping.Shoulder)

		switch {
		case result.Expected == "" && result.Valid:
			report.NoCheckDigit++
		case result.Valid:
			report.Valid++
		default:
			report.Invalid++
			report.InvalidARKs = append(report.InvalidARKs, arkpid.AuditEntry{
				Identifier: mapping.Identifier,
				Expected:   result.Expected,
				Actual:     result.Actual,
			})
		}
	}

	if !filter.Verbose && len(report.InvalidARKs) > invalidListBound {
		report.InvalidARKs = report.InvalidARKs[:invalidListBound]
	}

	return report, nil
}

// CheckOne audits a single identifier: the shoulder is located by trying
// the 3-character prefix of the assigned name before the 2-character one.
func (a *Auditor) CheckOne(ctx context.Context, ark string) (arkpid.AuditDetail, error) {
	ctx, span := tracer.Start(ctx, "Auditor.CheckOne")
	defer span.End()

	naan, assignedName, _, err := arkpid.ParseARK(ark)
	if err != nil {
		return arkpid.AuditDetail{}, err
	}

	naanInt, err := strconv.Atoi(naan)
	if err != nil {
		return arkpid.AuditDetail{}, arkpid.InvalidAuthorityError{NAAN: naan}
	}

	var shoulder domain.Shoulder
	found := false
	for _, width := range []int{3, 2} {
		if len(assignedName) < width {
			continue
		}
		shoulder, err = a.shoulders.Get(ctx, assignedName[:width], naanInt)
		if err == nil {
			found = true
			break
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return arkpid.AuditDetail{}, errors.Wrap(err, "Auditor.CheckOne: shoulder lookup failed")
		}
	}
	if !found {
		return arkpid.AuditDetail{}, domain.NotFoundError{Resource: "shoulder"}
	}

	template := shoulder.Template
	if template == "" {
		template = a.defaultTemplate
	}

	discriminator := assignedName[len(shoulder.Shoulder):]
	result := noid.Validate(discriminator, template, naan, shoulder.Shoulder)

	return arkpid.AuditDetail{
		ARK:      "ark:/" + arkpid.ComposeARK(naan, assignedName),
		Shoulder: shoulder.Shoulder,
		Template: template,
		FullID:   arkpid.ComposeARK(naan, assignedName),
		Expected: result.Expected,
		Actual:   result.Actual,
		Valid:    result.Valid,
	}, nil
}
