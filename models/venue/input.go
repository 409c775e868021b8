package venue

// Input is the body of create / update venue requests.
type Input struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Media       []Media       `json:"media"`
	Price       float64       `json:"price"`
	MaxGuests   int           `json:"maxGuests"`
	Meta        Meta          `json:"meta"`
	Location    InputLocation `json:"location"`
}

// InputLocation is the subset of Location the venue forms collect.
type InputLocation struct {
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}
