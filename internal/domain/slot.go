package domain

// TimeSlot is one bookable unit of capacity. Exactly one slot exists per
// (dealership_id, date, time) triple inside the generated window.
type TimeSlot struct {
	DealershipID string `json:"dealership_id"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"` // HH:MM
	Available    bool   `json:"available"`
}
