package report

import (
	"math"
	"strings"
	"time"

	"catalogapi/internal/listing"
)

// Compute builds a market summary over the given listings. Listings with a
// non-positive price are counted but excluded from the price aggregates.
func Compute(listings []listing.Listing, now time.Time) Result {
	result := Result{
		TotalListings:   len(listings),
		CountByLocation: make(map[string]int),
		GeneratedAt:     now.UTC(),
	}

	if len(listings) == 0 {
		return result
	}

	var (
		priceSum   float64
		priceCount int
		maxPrice   = -1.0
		minPrice   = math.MaxFloat64
	)

	for _, l := range listings {
		result.CountByLocation[normalizeLocation(l.Location)]++

		if l.Price <= 0 {
			continue
		}
		priceSum += l.Price
		priceCount++

		if l.Price > maxPrice {
			maxPrice = l.Price
			result.MostExpensiveID = l.ID
		}
		if l.Price < minPrice {
			minPrice = l.Price
		}
	}

	if priceCount > 0 {
		result.AveragePrice = math.Round(priceSum/float64(priceCount)*100) / 100
		result.MinPrice = minPrice
		result.MaxPrice = maxPrice
	}

	return result
}

func normalizeLocation(location string) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return "unknown"
	}
	return strings.ToLower(trimmed)
}
