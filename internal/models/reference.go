package models

// Country row from the countries reference table.
type Country struct {
	Code         string `json:"code" gorm:"primaryKey;size:2"`
	CodeAlpha3   string `json:"code_alpha3" gorm:"column:code_alpha3;size:3"`
	NameEN       string `json:"name_en" gorm:"column:name_en;not null"`
	NameFR       string `json:"name_fr" gorm:"column:name_fr"`
	RegionLabel  string `json:"region_label"`
	PhoneCode    string `json:"phone_code"`
	CurrencyCode string `json:"currency_code"`
	SortOrder    int    `json:"sort_order"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

func (Country) TableName() string {
	return "countries"
}

// Region is a state or province belonging to a country.
type Region struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CountryCode string `json:"country_code" gorm:"index;not null"`
	Code        string `json:"code" gorm:"not null"`
	NameEN      string `json:"name_en" gorm:"column:name_en;not null"`
	NameFR      string `json:"name_fr" gorm:"column:name_fr"`
	Type        string `json:"type"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

func (Region) TableName() string {
	return "regions"
}

// Trade row from trade_specializations. The JSON shape matches what the
// frontend consumes, which differs from the column names.
type Trade struct {
	Code          string `json:"trade_code" gorm:"primaryKey"`
	NameEN        string `json:"trade_name" gorm:"column:name_en;not null"`
	Sector        string `json:"sector"`
	DescriptionEN string `json:"description" gorm:"column:description_en"`
	NOACode       string `json:"noa_code" gorm:"column:noa_code"`
	SortOrder     int    `json:"-"`
	IsActive      bool   `json:"-" gorm:"default:true"`
}

func (Trade) TableName() string {
	return "trade_specializations"
}
