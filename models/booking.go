package models

// BookingSession is the result returned to the model (and the client) by the
// booking tools. Nothing is persisted server side; BookingURL is a deep link
// that the listing page parses to pre-open its reservation dialog.
type BookingSession struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	BookingURL string      `json:"bookingUrl,omitempty"`
	Venue      interface{} `json:"venue,omitempty"`
}
