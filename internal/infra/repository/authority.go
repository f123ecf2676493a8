package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/arkforge/arkpid/internal/domain"
	"github.com/arkforge/arkpid/internal/infra/database/models"
)

type AuthorityRepository struct {
	db *gorm.DB
}

func NewAuthorityRepository(db *gorm.DB) *AuthorityRepository {
	return &AuthorityRepository{db: db}
}

func (r *AuthorityRepository) Get(ctx context.Context, naan int) (domain.Authority, error) {
	var rec models.Naan
	err := r.db.WithContext(ctx).
		Where("naan = ?", naan).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Authority{}, domain.NotFoundError{Resource: "authority"}
	}
	if err != nil {
		return domain.Authority{}, errors.Wrap(err, "AuthorityRepository.Get failed")
	}

	return domain.Authority{
		NAAN:        rec.NAAN,
		Name:        rec.Name,
		Description: rec.Description,
		URL:         rec.URL,
	}, nil
}
