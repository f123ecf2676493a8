package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/arkforge/arkpid/internal/domain"
	"github.com/arkforge/arkpid/internal/infra/database/models"
)

type MappingRepository struct {
	db *gorm.DB
}

func NewMappingRepository(db *gorm.DB) *MappingRepository {
	return &MappingRepository{db: db}
}

func (r *MappingRepository) Get(ctx context.Context, identifier string) (domain.Mapping, error) {
	var rec models.Ark
	err := r.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Mapping{}, domain.NotFoundError{Resource: "mapping"}
	}
	if err != nil {
		return domain.Mapping{}, errors.Wrap(err, "MappingRepository.Get failed")
	}

	return toDomainMapping(rec), nil
}

// Insert persists a new mapping. The primary key on identifier makes the
// store the arbiter of uniqueness; a duplicate-key error surfaces as
// domain.ErrDuplicate so the minter can treat it as a collision.
func (r *MappingRepository) Insert(ctx context.Context, mapping domain.Mapping) error {
	rec := models.Ark{
		Identifier:   mapping.Identifier,
		NAAN:         mapping.NAAN,
		AssignedName: mapping.AssignedName,
		Shoulder:     mapping.Shoulder,
		URL:          mapping.URL,
		Who:          mapping.Who,
		What:         mapping.What,
		When:         mapping.When,
	}

	err := r.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.DuplicateError{Identifier: mapping.Identifier}
	}
	if err != nil {
		return errors.Wrap(err, "MappingRepository.Insert failed")
	}
	return nil
}

func (r *MappingRepository) List(ctx context.Context, shoulder string, limit int) ([]domain.Mapping, error) {
	query := r.db.WithContext(ctx).Order("identifier ASC")
	if shoulder != "" {
		query = query.Where("shoulder = ?", shoulder)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recs []models.Ark
	if err := query.Find(&recs).Error; err != nil {
		return nil, errors.Wrap(err, "MappingRepository.List failed")
	}

	mappings := make([]domain.Mapping, 0, len(recs))
	for _, rec := range recs {
		mappings = append(mappings, toDomainMapping(rec))
	}
	return mappings, nil
}

func toDomainMapping(rec models.Ark) domain.Mapping {
	return domain.Mapping{
		Identifier:   rec.Identifier,
		NAAN:         rec.NAAN,
		AssignedName: rec.AssignedName,
		Shoulder:     rec.Shoulder,
		URL:          rec.URL,
		Who:          rec.Who,
		What:         rec.What,
		When:         rec.When,
	}
}
