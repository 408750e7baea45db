package models

import "time"

// Valid values for WaitlistEntry.UserType.
const (
	UserTypeStudent               = "student"
	UserTypeEmployer              = "employer"
	UserTypeImmigrationConsultant = "immigration_consultant"
	UserTypeInternationalWorker   = "international_worker"
)

// WaitlistEntry is one signup row. Type-specific fields stay empty for the
// branches that don't use them.
type WaitlistEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Name      string `json:"name" gorm:"not null"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country,omitempty"`
	Province  string `json:"province,omitempty"`
	City      string `json:"city,omitempty"`
	UserType  string `json:"user_type" gorm:"not null"`
	Status    string `json:"status" gorm:"default:pending"`

	// student / international_worker
	Trade              string `json:"trade,omitempty"`
	ApprenticeshipYear string `json:"apprenticeship_year,omitempty"`
	IsApprentice       bool   `json:"is_apprentice,omitempty"`
	IsChallenging      bool   `json:"is_challenging,omitempty"`
	ChallengeDate      string `json:"challenge_date,omitempty"`

	// employer
	CompanyName   string `json:"company_name,omitempty"`
	Industry      string `json:"industry,omitempty"`
	IndustryOther string `json:"industry_other,omitempty"`
	HiringNeeds   string `json:"hiring_needs,omitempty"`

	// immigration_consultant
	RCICNumber string `json:"rcic_number,omitempty" gorm:"column:rcic_number"`

	// international_worker
	ExperienceYears string `json:"experience_years,omitempty"`

	// mentor (not part of the public form yet, tolerated on intake)
	MentorTrade        string `json:"mentor_trade,omitempty"`
	YearsExperience    string `json:"years_experience,omitempty"`
	CertificationLevel string `json:"certification_level,omitempty"`
}

func (WaitlistEntry) TableName() string {
	return "waitlist"
}
