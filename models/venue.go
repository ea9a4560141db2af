package models

// Museum represents a single museum record from the static catalog.
type Museum struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	Category           string   `json:"category"`
	Rating             float64  `json:"rating"`
	Reviews            int      `json:"reviews"`
	Price              float64  `json:"price"`
	Image              string   `json:"image"`
	Description        string   `json:"description"`
	Duration           string   `json:"duration"`
	Highlights         []string `json:"highlights"`
	OpenHours          string   `json:"openHours"`
	Featured           bool     `json:"featured"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Established        int      `json:"established"`
	Website            string   `json:"website"`
	ContactNumber      string   `json:"contactNumber"`
	SpecialExhibitions []string `json:"specialExhibitions"`
	Facilities         []string `json:"facilities"`
}

// Cafe represents a single heritage cafe record from the static catalog.
type Cafe struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	Category        string   `json:"category"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	PriceRange      string   `json:"priceRange"`
	AvgPrice        float64  `json:"avgPrice"`
	Image           string   `json:"image"`
	Description     string   `json:"description"`
	Cuisine         string   `json:"cuisine"`
	SeatingCapacity int      `json:"seatingCapacity"`
	Highlights      []string `json:"highlights"`
	OpenHours       string   `json:"openHours"`
	Amenities       []string `json:"amenities"`
	Featured        bool     `json:"featured"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	Established     int      `json:"established"`
	Website         string   `json:"website"`
	ContactNumber   string   `json:"contactNumber"`
	SpecialMenu     []string `json:"specialMenu"`
	PaymentOptions  []string `json:"paymentOptions"`
}

// Show represents a single cultural show record from the static catalog.
type Show struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Venue          string   `json:"venue"`
	Location       string   `json:"location"`
	Category       string   `json:"category"`
	Rating         float64  `json:"rating"`
	Reviews        int      `json:"reviews"`
	TicketPrice    float64  `json:"ticketPrice"`
	Image          string   `json:"image"`
	Description    string   `json:"description"`
	Duration       string   `json:"duration"`
	AgeRating      string   `json:"ageRating"`
	Highlights     []string `json:"highlights"`
	Showtimes      []string `json:"showtimes"`
	AvailableDates []string `json:"availableDates"`
	Featured       bool     `json:"featured"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Language       string   `json:"language"`
	Director       string   `json:"director"`
	Cast           []string `json:"cast"`
	Genre          string   `json:"genre"`
	TicketTypes    []string `json:"ticketTypes"`
	BookingURL     string   `json:"bookingUrl"`
}

// AllVenues bundles every venue type for combined searches.
type AllVenues struct {
	Museums []Museum `json:"museums"`
	Cafes   []Cafe   `json:"cafes"`
	Shows   []Show   `json:"shows"`
}
