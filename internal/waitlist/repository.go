package waitlist

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"redseal-waitlist/internal/models"
)

// ErrDuplicateEmail marks a unique-constraint violation on the email column.
var ErrDuplicateEmail = errors.New("email already on waitlist")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(entry *models.WaitlistEntry) error {
	err := r.db.Create(entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		log.Printf("Error creating waitlist entry: %v", err)
		return err
	}
	log.Printf("Created waitlist entry %d for %s", entry.ID, entry.Email)
	return nil
}

func (r *Repository) FindByEmail(email string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry
	err := r.db.Where("email = ?", email).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
