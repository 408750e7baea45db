package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"redseal-waitlist/internal/models"
)

const (
	klaviyoAPIURL   = "https://a.klaviyo.com/api"
	klaviyoRevision = "2024-10-15"
)

// KlaviyoClient syncs waitlist signups into Klaviyo: profile upsert, list
// membership, and a "Joined Waitlist" event.
type KlaviyoClient struct {
	apiKey     string
	listID     string
	httpClient *http.Client
}

func NewKlaviyoClient(apiKey, listID string) *KlaviyoClient {
	return &KlaviyoClient{
		apiKey: apiKey,
		listID: listID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *KlaviyoClient) Configured() bool {
	return c.apiKey != ""
}

// FormatIndustry turns the stored industry slug into display text, folding in
// the free-text "other" value when present.
func FormatIndustry(industry, industryOther string) string {
	if industry == "other" && industryOther != "" {
		return fmt.Sprintf("Other (%s)", industryOther)
	}
	if industry == "" {
		return ""
	}
	return titleCaseSlug(industry)
}

// FormatHiringNeeds expands a comma-separated list of trade slugs into
// display names.
func FormatHiringNeeds(hiringNeeds string) string {
	if hiringNeeds == "" {
		return ""
	}
	var out []string
	for _, part := range strings.Split(hiringNeeds, ",") {
		if part == "" {
			continue
		}
		out = append(out, titleCaseSlug(part))
	}
	return strings.Join(out, ", ")
}

func titleCaseSlug(slug string) string {
	words := strings.Split(slug, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SyncProfile upserts the profile, adds it to the waitlist list when one is
// configured, and records the signup event. List and event failures are
// logged but don't fail the sync.
func (c *KlaviyoClient) SyncProfile(ctx context.Context, entry *models.WaitlistEntry) error {
	if !c.Configured() {
		return fmt.Errorf("klaviyo API key not configured")
	}

	profileData := map[string]interface{}{
		"data": map[string]interface{}{
			"type": "profile",
			"attributes": map[string]interface{}{
				"email":        entry.Email,
				"first_name":   entry.FirstName,
				"last_name":    entry.LastName,
				"phone_number": entry.Phone,
				"properties": map[string]interface{}{
					"user_type":            entry.UserType,
					"trade":                entry.Trade,
					"country":              entry.Country,
					"province":             entry.Province,
					"city":                 entry.City,
					"company_name":         entry.CompanyName,
					"industry":             FormatIndustry(entry.Industry, entry.IndustryOther),
					"hiring_needs":         FormatHiringNeeds(entry.HiringNeeds),
					"waitlist_signup_date": time.Now().UTC().Format(time.RFC3339),
				},
			},
		},
	}

	var profileResult struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := c.post(ctx, "/profiles/", profileData, &profileResult); err != nil {
		return fmt.Errorf("profile sync failed: %w", err)
	}

	profileID := profileResult.Data.ID
	log.Printf("Synced profile to Klaviyo: %s", entry.Email)

	if c.listID != "" && profileID != "" {
		listData := map[string]interface{}{
			"data": []map[string]string{
				{"type": "profile", "id": profileID},
			},
		}
		path := fmt.Sprintf("/lists/%s/relationships/profiles/", c.listID)
		if err := c.post(ctx, path, listData, nil); err != nil {
			log.Printf("Failed to add %s to waitlist list: %v", entry.Email, err)
		}
	}

	if profileID != "" {
		eventData := map[string]interface{}{
			"data": map[string]interface{}{
				"type": "event",
				"attributes": map[string]interface{}{
					"profile": map[string]interface{}{
						"data": map[string]string{"type": "profile", "id": profileID},
					},
					"metric": map[string]interface{}{
						"data": map[string]interface{}{
							"type": "metric",
							"attributes": map[string]string{"name": "Joined Waitlist"},
						},
					},
					"properties": map[string]string{"user_type": entry.UserType},
					"time":       time.Now().UTC().Format(time.RFC3339),
				},
			},
		}
		if err := c.post(ctx, "/events/", eventData, nil); err != nil {
			log.Printf("Failed to record waitlist event for %s: %v", entry.Email, err)
		}
	}

	return nil
}

func (c *KlaviyoClient) post(ctx context.Context, path string, payload, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, klaviyoAPIURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Klaviyo-API-Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("revision", klaviyoRevision)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errText, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("klaviyo returned %d: %s", resp.StatusCode, string(errText))
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}
