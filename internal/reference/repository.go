package reference

import (
	"log"

	"gorm.io/gorm"

	"redseal-waitlist/internal/models"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCountries(activeOnly bool) ([]models.Country, error) {
	query := r.db.Order("sort_order asc").Order("name_en asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var countries []models.Country
	if err := query.Find(&countries).Error; err != nil {
		log.Printf("Error getting countries: %v", err)
		return nil, err
	}
	return countries, nil
}

func (r *Repository) GetRegions(countryCode string, activeOnly bool) ([]models.Region, error) {
	query := r.db.Order("sort_order asc").Order("name_en asc")
	if countryCode != "" {
		query = query.Where("country_code = ?", countryCode)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var regions []models.Region
	if err := query.Find(&regions).Error; err != nil {
		log.Printf("Error getting regions for country %q: %v", countryCode, err)
		return nil, err
	}
	return regions, nil
}

func (r *Repository) GetTrades(activeOnly bool) ([]models.Trade, error) {
	query := r.db.Order("name_en asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var trades []models.Trade
	if err := query.Find(&trades).Error; err != nil {
		log.Printf("Error getting trades: %v", err)
		return nil, err
	}
	return trades, nil
}
