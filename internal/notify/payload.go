package notify

import "redseal-waitlist/internal/models"

// entryPayload is the webhook body shape. It mirrors the fields the original
// internal routes accepted, so existing callers keep working.
type entryPayload struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Phone         string `json:"phone"`
	UserType      string `json:"user_type"`
	Trade         string `json:"trade"`
	Country       string `json:"country"`
	Province      string `json:"province"`
	City          string `json:"city"`
	CompanyName   string `json:"company_name"`
	Industry      string `json:"industry"`
	IndustryOther string `json:"industry_other"`
	HiringNeeds   string `json:"hiring_needs"`
}

func (p *entryPayload) toEntry() *models.WaitlistEntry {
	return &models.WaitlistEntry{
		Email:         p.Email,
		Name:          p.Name,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Phone:         p.Phone,
		UserType:      p.UserType,
		Trade:         p.Trade,
		Country:       p.Country,
		Province:      p.Province,
		City:          p.City,
		CompanyName:   p.CompanyName,
		Industry:      p.Industry,
		IndustryOther: p.IndustryOther,
		HiringNeeds:   p.HiringNeeds,
	}
}
