package domain

// Airport is a vertex of the flight network. Identity is the code:
// two to four uppercase letters, unique across the network.
type Airport struct {
	ID        int64   `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
