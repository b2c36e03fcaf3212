// Package domain defines the core domain models for the assistant.
package domain

// ServiceCode identifies one canonical maintenance service.
type ServiceCode string

const (
	ServiceOilChange       ServiceCode = "oil_change"
	ServiceTireRotation    ServiceCode = "tire_rotation"
	ServiceBrakeInspection ServiceCode = "brake_inspection"
	ServiceGeneralReview   ServiceCode = "general_review"
	ServiceStateInspection ServiceCode = "state_inspection"
	ServiceAirConditioning ServiceCode = "air_conditioning"
	ServiceBatteryCheck    ServiceCode = "battery_check"
)

// Dealership is an immutable catalog record seeded at process start.
type Dealership struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Location string        `json:"location"`
	Services []ServiceCode `json:"services"`
	Phone    string        `json:"phone"`
	Address  string        `json:"address"`
}

// Offers reports whether the dealership offers the given service.
func (d *Dealership) Offers(service ServiceCode) bool {
	for _, s := range d.Services {
		if s == service {
			return true
		}
	}
	return false
}
