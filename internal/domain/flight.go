package domain

// Flight is a directed edge of the flight network. Several flights may
// connect the same ordered airport pair (different flight numbers,
// prices, times), so the network is a multigraph.
//
// DepartureTime and ArrivalTime are optional times of day ("15:04");
// they are carried for display and never weigh into routing.
type Flight struct {
	ID            int64   `json:"id"`
	Airline       string  `json:"airline"`
	FlightNo      string  `json:"flight_no"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	DepartureTime string  `json:"departure_time,omitempty"`
	ArrivalTime   string  `json:"arrival_time,omitempty"`
	DurationMin   int     `json:"duration_min"`
	PriceUSD      float64 `json:"price_usd"`
}
