package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"redseal-waitlist/internal/models"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1a1a1a; margin: 0; padding: 24px;">
  <h1 style="color: #c8102e;">You're on the list{{if .Name}}, {{.Name}}{{end}}!</h1>
  <p>Thanks for joining the Red Seal Hub waitlist. {{.TypeLine}}</p>
  <p>We'll email you the moment your spot opens up. In the meantime, you can try
  the AI study demo on our landing page as often as you like.</p>
  <p style="margin-top: 32px; color: #666; font-size: 12px;">
    You received this because you signed up at redsealhub.com.
  </p>
</body>
</html>`))

// welcomeTypeLines personalizes the welcome email per signup branch.
var welcomeTypeLines = map[string]string{
	models.UserTypeStudent:               "Your AI study partner for the Red Seal exam is almost ready.",
	models.UserTypeEmployer:              "We'll help you find and develop certified tradespeople.",
	models.UserTypeImmigrationConsultant: "Tools for guiding your clients through trade certification are on the way.",
	models.UserTypeInternationalWorker:   "We'll help you get your international experience recognized in Canada.",
}

// WelcomeEmail renders the waitlist welcome email body.
func WelcomeEmail(name, userType string) (string, error) {
	typeLine, ok := welcomeTypeLines[userType]
	if !ok {
		typeLine = welcomeTypeLines[models.UserTypeStudent]
	}

	var buf bytes.Buffer
	err := welcomeTemplate.Execute(&buf, struct {
		Name     string
		TypeLine string
	}{Name: name, TypeLine: typeLine})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// AdminWaitlistEmail renders the plain signup summary sent to the admin inbox.
func AdminWaitlistEmail(entry *models.WaitlistEntry) string {
	var b strings.Builder
	b.WriteString("<h2>New waitlist signup</h2><table cellpadding=\"4\">")

	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<tr><td><b>%s</b></td><td>%s</td></tr>",
			template.HTMLEscapeString(label), template.HTMLEscapeString(value))
	}

	row("Email", entry.Email)
	row("Name", entry.Name)
	row("User type", entry.UserType)
	row("Phone", entry.Phone)
	row("Country", entry.Country)
	row("Province", entry.Province)
	row("City", entry.City)
	row("Trade", entry.Trade)
	row("Apprenticeship year", entry.ApprenticeshipYear)
	row("Company", entry.CompanyName)
	row("Industry", FormatIndustry(entry.Industry, entry.IndustryOther))
	row("Hiring needs", FormatHiringNeeds(entry.HiringNeeds))
	row("RCIC number", entry.RCICNumber)
	row("Experience years", entry.ExperienceYears)
	if !entry.CreatedAt.IsZero() {
		row("Signed up", entry.CreatedAt.Format("2006-01-02 15:04 MST"))
	}

	b.WriteString("</table>")
	return b.String()
}
