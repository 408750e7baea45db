package waitlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redseal-waitlist/internal/models"
)

func validRequest(userType string) *JoinRequest {
	return &JoinRequest{
		Email:    "Jordan.Smith@Example.com",
		Name:     "  Jordan Smith  ",
		UserType: userType,
		Country:  "CA",
		Province: "ON",
	}
}

func TestBuildEntryValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*JoinRequest)
		wantMsg string
	}{
		{
			name:    "missing email",
			mutate:  func(r *JoinRequest) { r.Email = "" },
			wantMsg: "Email, name, and user type are required",
		},
		{
			name:    "missing name",
			mutate:  func(r *JoinRequest) { r.Name = "" },
			wantMsg: "Email, name, and user type are required",
		},
		{
			name:    "missing user type",
			mutate:  func(r *JoinRequest) { r.UserType = "" },
			wantMsg: "Email, name, and user type are required",
		},
		{
			name:    "unknown user type",
			mutate:  func(r *JoinRequest) { r.UserType = "contractor" },
			wantMsg: "Invalid user type",
		},
		{
			name:    "bad email",
			mutate:  func(r *JoinRequest) { r.Email = "not-an-email" },
			wantMsg: "Invalid email format",
		},
		{
			name:    "email without tld",
			mutate:  func(r *JoinRequest) { r.Email = "user@localhost" },
			wantMsg: "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(models.UserTypeStudent)
			tt.mutate(req)

			_, err := buildEntry(req)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}

func TestBuildEntryNormalizes(t *testing.T) {
	entry, err := buildEntry(validRequest(models.UserTypeStudent))
	require.NoError(t, err)

	assert.Equal(t, "jordan.smith@example.com", entry.Email, "email lowercased")
	assert.Equal(t, "Jordan Smith", entry.Name, "name trimmed")
	assert.Equal(t, "pending", entry.Status)
}

func TestBuildEntryCopiesBranchFields(t *testing.T) {
	t.Run("student gets trade fields only", func(t *testing.T) {
		req := validRequest(models.UserTypeStudent)
		req.Trade = "Plumber"
		req.ApprenticeshipYear = "2"
		req.IsApprentice = true
		req.CompanyName = "Acme Ltd" // wrong branch, must be dropped
		req.RCICNumber = "R12345"

		entry, err := buildEntry(req)
		require.NoError(t, err)
		assert.Equal(t, "Plumber", entry.Trade)
		assert.Equal(t, "2", entry.ApprenticeshipYear)
		assert.True(t, entry.IsApprentice)
		assert.Empty(t, entry.CompanyName)
		assert.Empty(t, entry.RCICNumber)
	})

	t.Run("employer gets company fields only", func(t *testing.T) {
		req := validRequest(models.UserTypeEmployer)
		req.CompanyName = "Acme Ltd"
		req.Industry = "other"
		req.IndustryOther = "Marine fabrication"
		req.HiringNeeds = "welders,millwrights"
		req.Trade = "Welder" // wrong branch

		entry, err := buildEntry(req)
		require.NoError(t, err)
		assert.Equal(t, "Acme Ltd", entry.CompanyName)
		assert.Equal(t, "other", entry.Industry)
		assert.Equal(t, "Marine fabrication", entry.IndustryOther)
		assert.Equal(t, "welders,millwrights", entry.HiringNeeds)
		assert.Empty(t, entry.Trade)
	})

	t.Run("immigration consultant gets rcic number", func(t *testing.T) {
		req := validRequest(models.UserTypeImmigrationConsultant)
		req.RCICNumber = " R12345 "

		entry, err := buildEntry(req)
		require.NoError(t, err)
		assert.Equal(t, "R12345", entry.RCICNumber)
	})

	t.Run("international worker gets trade and experience", func(t *testing.T) {
		req := validRequest(models.UserTypeInternationalWorker)
		req.Trade = "Electrician"
		req.ExperienceYears = "8"

		entry, err := buildEntry(req)
		require.NoError(t, err)
		assert.Equal(t, "Electrician", entry.Trade)
		assert.Equal(t, "8", entry.ExperienceYears)
	})
}
