package domain

// Appointment is a confirmed booking. IDs are sequential in the form
// "apt_0001". Service holds a canonical service code, or the customer's
// phrasing verbatim when no keyword matched.
type Appointment struct {
	ID           string `json:"id"`
	DealershipID string `json:"dealership_id"`
	Service      string `json:"service"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	CustomerName string `json:"customer_name,omitempty"`
}
