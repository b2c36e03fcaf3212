package catalog

import "github.com/pitstopd/pitstop/internal/domain"

// seedDealerships returns the fixed dealership list (New York City area).
// Records are immutable after construction; catalog order is significant
// for search results and first-match resolution.
func seedDealerships() []domain.Dealership {
	return []domain.Dealership{
		{
			ID:       "dealer_001",
			Name:     "Downtown Auto Service",
			Location: "Manhattan",
			Services: []domain.ServiceCode{domain.ServiceOilChange, domain.ServiceTireRotation, domain.ServiceBrakeInspection, domain.ServiceGeneralReview},
			Phone:    "+1 212 555 0101",
			Address:  "125 Lafayette St, New York, NY 10013",
		},
		{
			ID:       "dealer_002",
			Name:     "Brooklyn CarCare",
			Location: "Brooklyn",
			Services: []domain.ServiceCode{domain.ServiceOilChange, domain.ServiceTireRotation, domain.ServiceStateInspection, domain.ServiceAirConditioning},
			Phone:    "+1 718 555 0102",
			Address:  "480 Atlantic Ave, Brooklyn, NY 11217",
		},
		{
			ID:       "dealer_003",
			Name:     "Queens Auto Pro",
			Location: "Queens",
			Services: []domain.ServiceCode{domain.ServiceOilChange, domain.ServiceGeneralReview, domain.ServiceBrakeInspection, domain.ServiceBatteryCheck},
			Phone:    "+1 718 555 0103",
			Address:  "37-18 Northern Blvd, Long Island City, NY 11101",
		},
		{
			ID:       "dealer_004",
			Name:     "Bronx Mechanics Plus",
			Location: "Bronx",
			Services: []domain.ServiceCode{domain.ServiceOilChange, domain.ServiceTireRotation, domain.ServiceStateInspection, domain.ServiceGeneralReview},
			Phone:    "+1 718 555 0104",
			Address:  "890 E Tremont Ave, Bronx, NY 10460",
		},
		{
			ID:       "dealer_005",
			Name:     "Midtown Motors",
			Location: "Manhattan",
			Services: []domain.ServiceCode{domain.ServiceOilChange, domain.ServiceAirConditioning, domain.ServiceBatteryCheck, domain.ServiceStateInspection},
			Phone:    "+1 212 555 0105",
			Address:  "312 W 49th St, New York, NY 10019",
		},
		{
			ID:       "dealer_006",
			Name:     "Bay Ridge Auto Center",
			Location: "Brooklyn",
			Services: []domain.ServiceCode{domain.ServiceOilChange, domain.ServiceBrakeInspection, domain.ServiceGeneralReview, domain.ServiceBatteryCheck},
			Phone:    "+1 718 555 0106",
			Address:  "7402 5th Ave, Brooklyn, NY 11209",
		},
		{
			ID:       "dealer_007",
			Name:     "Astoria Car Service",
			Location: "Queens",
			Services: []domain.ServiceCode{domain.ServiceOilChange, domain.ServiceTireRotation, domain.ServiceAirConditioning, domain.ServiceStateInspection},
			Phone:    "+1 718 555 0107",
			Address:  "30-94 Steinway St, Astoria, NY 11103",
		},
		{
			ID:       "dealer_008",
			Name:     "Harlem Auto Works",
			Location: "Manhattan",
			Services: []domain.ServiceCode{domain.ServiceOilChange, domain.ServiceTireRotation, domain.ServiceBrakeInspection, domain.ServiceBatteryCheck},
			Phone:    "+1 212 555 0108",
			Address:  "2280 Frederick Douglass Blvd, New York, NY 10027",
		},
	}
}

// keywordEntry maps natural-language phrases onto one canonical service
// code. Table order decides the winner when several entries match.
type keywordEntry struct {
	Code     domain.ServiceCode
	Keywords []string
}

var keywordTable = []keywordEntry{
	{domain.ServiceOilChange, []string{"oil change", "oil", "change oil", "oil service"}},
	{domain.ServiceTireRotation, []string{"tire", "tires", "rotation", "wheel", "wheels"}},
	{domain.ServiceBrakeInspection, []string{"brake", "brakes", "brake check", "brake inspection"}},
	{domain.ServiceGeneralReview, []string{"review", "checkup", "maintenance", "general inspection"}},
	{domain.ServiceStateInspection, []string{"state inspection", "inspection", "vehicle inspection", "safety inspection"}},
	{domain.ServiceAirConditioning, []string{"ac", "air conditioning", "a/c", "cooling"}},
	{domain.ServiceBatteryCheck, []string{"battery", "battery check", "battery test"}},
}
