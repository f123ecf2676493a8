package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/arkforge/arkpid/internal/domain"
	"github.com/arkforge/arkpid/internal/infra/database/models"
)

// Shoulder records change rarely and are read on every prefix-fallback
// resolution, so hits are kept in an in-process cache.
type ShoulderRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewShoulderRepository(db *gorm.DB) *ShoulderRepository {
	return &ShoulderRepository{
		db:    db,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (r *ShoulderRepository) Get(ctx context.Context, shoulder string, naan int) (domain.Shoulder, error) {
	key := fmt.Sprintf("%s@%d", shoulder, naan)
	if cached, found := r.cache.Get(key); found {
		return cached.(domain.Shoulder), nil
	}

	var rec models.Shoulder
	err := r.db.WithContext(ctx).
		Where("shoulder = ? AND naan = ?", shoulder, naan).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Shoulder{}, domain.NotFoundError{Resource: "shoulder"}
	}
	if err != nil {
		return domain.Shoulder{}, errors.Wrap(err, "ShoulderRepository.Get failed")
	}

	result := domain.Shoulder{
		Shoulder:       rec.Shoulder,
		NAAN:           rec.NAAN,
		Name:           rec.Name,
		Description:    rec.Description,
		RedirectPrefix: rec.RedirectPrefix,
		Template:       rec.Template,
	}
	r.cache.Set(key, result, cache.DefaultExpiration)

	return result, nil
}
