// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mandi/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPriceNotFound is returned when no price has been recorded for a
// commodity/location pair. The alert evaluator treats this as "skip", not
// as a failure.
var ErrPriceNotFound = errors.New("no price recorded for commodity")

// PriceRepository defines the read interface over the market price history.
type PriceRepository interface {
	// LatestPrice retrieves the most recent price entry for a commodity,
	// optionally narrowed to a location. Empty location matches any market.
	LatestPrice(ctx context.Context, commodity, location string) (*entity.PriceEntry, error)
}
