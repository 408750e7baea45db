package notify

import (
	"context"
	"log"
	"time"

	"redseal-waitlist/internal/models"
)

// Service fans a waitlist signup out to email and CRM. Every method is safe
// to call fire-and-forget; failures are logged, never returned to the signup
// path.
type Service struct {
	email      *EmailClient
	klaviyo    *KlaviyoClient
	adminEmail string
}

func NewService(email *EmailClient, klaviyo *KlaviyoClient, adminEmail string) *Service {
	return &Service{
		email:      email,
		klaviyo:    klaviyo,
		adminEmail: adminEmail,
	}
}

// NotifySignup runs all post-signup notifications concurrently. It is called
// from the waitlist service in a goroutine after the row is committed.
func (s *Service) NotifySignup(entry *models.WaitlistEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.SendWelcome(ctx, entry); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", entry.Email, err)
	}
	if err := s.SendAdminNotification(ctx, entry); err != nil {
		log.Printf("Failed to send admin notification for %s: %v", entry.Email, err)
	}
	if err := s.SyncToKlaviyo(ctx, entry); err != nil {
		log.Printf("Failed to sync %s to Klaviyo: %v", entry.Email, err)
	}
}

func (s *Service) SendWelcome(ctx context.Context, entry *models.WaitlistEntry) error {
	if !s.email.Configured() {
		log.Printf("Resend not configured; skipping welcome email for %s", entry.Email)
		return nil
	}

	html, err := WelcomeEmail(entry.Name, entry.UserType)
	if err != nil {
		return err
	}
	return s.email.Send(ctx, entry.Email, "You're on the Red Seal Hub Waitlist! 🎉", html)
}

func (s *Service) SendAdminNotification(ctx context.Context, entry *models.WaitlistEntry) error {
	if !s.email.Configured() || s.adminEmail == "" {
		log.Printf("Admin email not configured; skipping notification for %s", entry.Email)
		return nil
	}

	subject := "New waitlist signup: " + entry.Email
	return s.email.Send(ctx, s.adminEmail, subject, AdminWaitlistEmail(entry))
}

func (s *Service) SyncToKlaviyo(ctx context.Context, entry *models.WaitlistEntry) error {
	if !s.klaviyo.Configured() {
		log.Printf("Klaviyo not configured; skipping sync for %s", entry.Email)
		return nil
	}
	return s.klaviyo.SyncProfile(ctx, entry)
}
