package reference

import (
	"encoding/json"
	"net/http"
	"strings"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// activeParam defaults to true; only an explicit active=false disables it.
func activeParam(r *http.Request) bool {
	return r.URL.Query().Get("active") != "false"
}

func (h *Handler) GetCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.Countries(activeParam(r))
	if err != nil {
		http.Error(w, "Failed to fetch countries", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"countries": countries,
		"total":     len(countries),
	})
}

func (h *Handler) GetRegions(w http.ResponseWriter, r *http.Request) {
	countryCode := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("country_code")))

	regions, err := h.service.Regions(countryCode, activeParam(r))
	if err != nil {
		http.Error(w, "Failed to fetch regions", http.StatusInternalServerError)
		return
	}

	resp := map[string]interface{}{
		"regions": regions,
		"total":   len(regions),
	}
	if countryCode != "" {
		resp["country_code"] = countryCode
	} else {
		resp["country_code"] = nil
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) GetTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := h.service.Trades(activeParam(r))
	if err != nil {
		http.Error(w, "Failed to fetch trades", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if r.URL.Query().Get("grouped") == "true" {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"tradesBySector": GroupTradesBySector(trades),
			"count":          len(trades),
		})
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"trades": trades,
		"count":  len(trades),
	})
}
