package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redseal-waitlist/internal/models"
)

func TestGroupTradesBySector(t *testing.T) {
	trades := []models.Trade{
		{Code: "306A", NameEN: "Plumber", Sector: "Construction"},
		{Code: "309A", NameEN: "Electrician", Sector: "Construction"},
		{Code: "310S", NameEN: "Automotive Service Technician", Sector: "Motive Power"},
		{Code: "433A", NameEN: "Industrial Mechanic (Millwright)", Sector: "Industrial"},
		{Code: "332A", NameEN: "Hairstylist", Sector: ""},
	}

	grouped := GroupTradesBySector(trades)

	require.Len(t, grouped, 4)
	assert.Len(t, grouped["Construction"], 2)
	assert.Len(t, grouped["Motive Power"], 1)
	assert.Len(t, grouped["Industrial"], 1)

	// Missing sector falls into Other; empty Service bucket is dropped.
	require.Len(t, grouped["Other"], 1)
	assert.Equal(t, "Hairstylist", grouped["Other"][0].NameEN)
	assert.NotContains(t, grouped, "Service")
}

func TestGroupTradesBySectorEmpty(t *testing.T) {
	assert.Empty(t, GroupTradesBySector(nil))
}
