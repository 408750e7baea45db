package reference

import (
	"fmt"
	"log"
	"strings"

	"redseal-waitlist/internal/models"
	"redseal-waitlist/pkg/cache"
)

// sectorOrder is the display order used when grouping trades by sector.
var sectorOrder = []string{"Construction", "Motive Power", "Industrial", "Service"}

type Service struct {
	repo  *Repository
	cache *cache.RedisCache
}

func NewService(repo *Repository, cache *cache.RedisCache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Countries(activeOnly bool) ([]models.Country, error) {
	key := fmt.Sprintf("countries:active=%t", activeOnly)

	var cached []models.Country
	if err := s.cache.GetList(key, &cached); err == nil {
		return cached, nil
	}

	countries, err := s.repo.GetCountries(activeOnly)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetList(key, countries); err != nil {
		log.Printf("Error caching countries: %v", err)
	}
	return countries, nil
}

func (s *Service) Regions(countryCode string, activeOnly bool) ([]models.Region, error) {
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	key := fmt.Sprintf("regions:country=%s:active=%t", countryCode, activeOnly)

	var cached []models.Region
	if err := s.cache.GetList(key, &cached); err == nil {
		return cached, nil
	}

	regions, err := s.repo.GetRegions(countryCode, activeOnly)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetList(key, regions); err != nil {
		log.Printf("Error caching regions: %v", err)
	}
	return regions, nil
}

func (s *Service) Trades(activeOnly bool) ([]models.Trade, error) {
	key := fmt.Sprintf("trades:active=%t", activeOnly)

	var cached []models.Trade
	if err := s.cache.GetList(key, &cached); err == nil {
		return cached, nil
	}

	trades, err := s.repo.GetTrades(activeOnly)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetList(key, trades); err != nil {
		log.Printf("Error caching trades: %v", err)
	}
	return trades, nil
}

// GroupTradesBySector buckets trades under their sector, defaulting missing
// sectors to "Other". Empty sectors are omitted from the result. Callers
// index the map by sector name; display order is the consumer's concern.
func GroupTradesBySector(trades []models.Trade) map[string][]models.Trade {
	grouped := make(map[string][]models.Trade)
	for _, sector := range sectorOrder {
		grouped[sector] = []models.Trade{}
	}

	for _, trade := range trades {
		sector := trade.Sector
		if sector == "" {
			sector = "Other"
		}
		grouped[sector] = append(grouped[sector], trade)
	}

	for sector, list := range grouped {
		if len(list) == 0 {
			delete(grouped, sector)
		}
	}
	return grouped
}
