package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatIndustry(t *testing.T) {
	tests := []struct {
		name          string
		industry      string
		industryOther string
		want          string
	}{
		{name: "empty", industry: "", want: ""},
		{name: "single word", industry: "construction", want: "Construction"},
		{name: "slug with underscores", industry: "oil_and_gas", want: "Oil And Gas"},
		{name: "other with free text", industry: "other", industryOther: "Marine fabrication", want: "Other (Marine fabrication)"},
		{name: "other without free text", industry: "other", want: "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIndustry(tt.industry, tt.industryOther))
		})
	}
}

func TestFormatHiringNeeds(t *testing.T) {
	tests := []struct {
		name  string
		needs string
		want  string
	}{
		{name: "empty", needs: "", want: ""},
		{name: "single", needs: "welders", want: "Welders"},
		{name: "multiple", needs: "heavy_equipment_technicians,millwrights", want: "Heavy Equipment Technicians, Millwrights"},
		{name: "stray commas", needs: "welders,,electricians", want: "Welders, Electricians"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHiringNeeds(tt.needs))
		})
	}
}

func TestKlaviyoConfigured(t *testing.T) {
	assert.False(t, NewKlaviyoClient("", "list-1").Configured())
	assert.True(t, NewKlaviyoClient("pk_test", "").Configured())
}
