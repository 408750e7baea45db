package waitlist

import (
	"log"
	"regexp"
	"strings"

	"redseal-waitlist/internal/models"
	"redseal-waitlist/internal/notify"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validUserTypes = map[string]bool{
	models.UserTypeStudent:               true,
	models.UserTypeEmployer:              true,
	models.UserTypeImmigrationConsultant: true,
	models.UserTypeInternationalWorker:   true,
}

// ValidationError is a 400-class failure with a user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// JoinRequest is the signup form payload. Field names follow the form the
// frontend posts, which mixes camelCase and snake_case for historical reasons.
type JoinRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Country   string `json:"country"`
	Province  string `json:"province"`
	City      string `json:"city"`
	UserType  string `json:"user_type"`

	Trade              string `json:"trade"`
	ApprenticeshipYear string `json:"apprenticeship_year"`
	IsApprentice       bool   `json:"is_apprentice"`
	IsChallenging      bool   `json:"is_challenging"`
	ChallengeDate      string `json:"challenge_date"`

	CompanyName   string `json:"company_name"`
	Industry      string `json:"industry"`
	IndustryOther string `json:"industry_other"`
	HiringNeeds   string `json:"hiring_needs"`

	RCICNumber string `json:"rcic_number"`

	ExperienceYears string `json:"experience_years"`

	MentorTrade        string `json:"mentor_trade"`
	YearsExperience    string `json:"years_experience"`
	CertificationLevel string `json:"certification_level"`
}

type Service struct {
	repo     *Repository
	notifier *notify.Service
}

func NewService(repo *Repository, notifier *notify.Service) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Join validates the form, persists the entry, and kicks off notifications in
// the background. Notification failures never fail the signup.
func (s *Service) Join(req *JoinRequest) (*models.WaitlistEntry, error) {
	entry, err := buildEntry(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}

	go s.notifier.NotifySignup(entry)

	return entry, nil
}

// Lookup reports whether an email is already on the waitlist.
func (s *Service) Lookup(email string) (*models.WaitlistEntry, error) {
	return s.repo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
}

// buildEntry validates the request and maps it onto a WaitlistEntry, copying
// only the fields that belong to the selected user type.
func buildEntry(req *JoinRequest) (*models.WaitlistEntry, error) {
	if req.Email == "" || req.Name == "" || req.UserType == "" {
		return nil, &ValidationError{Message: "Email, name, and user type are required"}
	}
	if !validUserTypes[req.UserType] {
		return nil, &ValidationError{Message: "Invalid user type"}
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, &ValidationError{Message: "Invalid email format"}
	}

	entry := &models.WaitlistEntry{
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Name:      strings.TrimSpace(req.Name),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
		Country:   strings.TrimSpace(req.Country),
		Province:  strings.TrimSpace(req.Province),
		City:      strings.TrimSpace(req.City),
		UserType:  req.UserType,
		Status:    "pending",
	}

	if req.UserType == models.UserTypeStudent || req.UserType == models.UserTypeInternationalWorker {
		entry.Trade = strings.TrimSpace(req.Trade)
		entry.ApprenticeshipYear = strings.TrimSpace(req.ApprenticeshipYear)
		entry.IsApprentice = req.IsApprentice
		entry.IsChallenging = req.IsChallenging
		entry.ChallengeDate = req.ChallengeDate
	}

	if req.UserType == models.UserTypeEmployer {
		entry.CompanyName = strings.TrimSpace(req.CompanyName)
		entry.Industry = strings.TrimSpace(req.Industry)
		entry.IndustryOther = strings.TrimSpace(req.IndustryOther)
		entry.HiringNeeds = strings.TrimSpace(req.HiringNeeds)
	}

	if req.UserType == models.UserTypeImmigrationConsultant {
		entry.RCICNumber = strings.TrimSpace(req.RCICNumber)
	}

	if req.UserType == models.UserTypeInternationalWorker {
		entry.ExperienceYears = strings.TrimSpace(req.ExperienceYears)
	}

	// Mentor fields are tolerated on any branch so an upcoming form variant
	// doesn't need a schema change.
	entry.MentorTrade = strings.TrimSpace(req.MentorTrade)
	entry.YearsExperience = strings.TrimSpace(req.YearsExperience)
	entry.CertificationLevel = strings.TrimSpace(req.CertificationLevel)

	log.Printf("Validated waitlist signup for %s (%s)", entry.Email, entry.UserType)
	return entry, nil
}
