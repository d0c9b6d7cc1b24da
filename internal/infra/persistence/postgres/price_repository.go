// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mandi/internal/domain/entity"
	"mandi/internal/domain/repository"
	"mandi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// priceRepository implements the repository.PriceRepository interface.
type priceRepository struct {
	db *gorm.DB
}

// NewPriceRepository is the constructor for priceRepository.
func NewPriceRepository(db *gorm.DB) repository.PriceRepository {
	return &priceRepository{
		db: db,
	}
}

// LatestPrice retrieves the most recent price entry for a commodity. An empty
// location matches entries from any market.
func (repo *priceRepository) LatestPrice(ctx context.Context, commodity, location string) (*entity.PriceEntry, error) {
	var priceM model.PriceEntryModel

	q := repo.db.WithContext(ctx).
		Where("commodity = ?", commodity)
	if location != "" {
		q = q.Where("location = ?", location)
	}

	if err := q.Order("recorded_at DESC").First(&priceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPriceNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest price")
	}

	return toPriceDomain(&priceM), nil
}

// --- Mapper Functions ---

func toPriceDomain(data *model.PriceEntryModel) *entity.PriceEntry {
	if data == nil {
		return nil
	}

	return &entity.PriceEntry{
		ID:         data.ID,
		Commodity:  data.Commodity,
		Location:   data.Location,
		Price:      data.Price,
		RecordedAt: data.RecordedAt,
	}
}
