package services

import (
	"fmt"
	"net/url"

	"github.com/shivaji43/mymuseum/models"
)

// BookingType selects which listing page a booking deep link points at.
type BookingType string

const (
	BookingTypeMuseum BookingType = "museum"
	BookingTypeCafe   BookingType = "cafe"
	BookingTypeShow   BookingType = "show"
)

// BookingService builds booking deep links for the chat assistant. Nothing
// is persisted: a "booking" is only the query string the listing page parses
// to pre-open its reservation dialog.
type BookingService struct {
	CatalogService *CatalogService
}

func NewBookingService(catalog *CatalogService) *BookingService {
	return &BookingService{CatalogService: catalog}
}

// BookingLink returns the bare listing-page deep link for a venue.
func BookingLink(bookingType BookingType, id int) string {
	switch bookingType {
	case BookingTypeMuseum:
		return fmt.Sprintf("/museums?bookingId=%d", id)
	case BookingTypeCafe:
		return fmt.Sprintf("/cafes?bookingId=%d", id)
	case BookingTypeShow:
		return fmt.Sprintf("/shows?bookingId=%d", id)
	default:
		return "/"
	}
}

// appendBookingParams adds the optional reservation parameters. Omitted
// values never appear in the URL, and quantity is only carried when it is
// more than one.
func appendBookingParams(bookingURL, date string, quantity int, slotKey, slotValue string) string {
	if date != "" {
		bookingURL += "&date=" + url.QueryEscape(date)
	}
	if quantity > 1 {
		bookingURL += fmt.Sprintf("&quantity=%d", quantity)
	}
	if slotValue != "" {
		bookingURL += "&" + slotKey + "=" + url.QueryEscape(slotValue)
	}
	return bookingURL
}

// BookingRedirectLink builds the generic redirect link used outside the
// listing pages, carrying the venue type explicitly.
func BookingRedirectLink(bookingType BookingType, id int, date string, quantity int, timeSlot string) string {
	bookingURL := fmt.Sprintf("/booking-redirect?type=%s&id=%d", bookingType, id)
	return appendBookingParams(bookingURL, date, quantity, "timeSlot", timeSlot)
}

// CreateMuseumBooking prepares a museum visit deep link. An unknown id is a
// structured negative result, not an error.
func (s *BookingService) CreateMuseumBooking(museumID int, date string, quantity int) models.BookingSession {
	museum, ok := s.CatalogService.GetMuseumByID(museumID)
	if !ok {
		return models.BookingSession{
			Success: false,
			Message: "Sorry, could not find the museum you're trying to book.",
		}
	}
	if quantity <= 0 {
		quantity = 1
	}
	bookingURL := appendBookingParams(BookingLink(BookingTypeMuseum, museumID), date, quantity, "", "")
	return models.BookingSession{
		Success:    true,
		Message:    fmt.Sprintf("I've prepared your booking for **%s**. [%s](%s) Use the booking button below to proceed to the payment page.", museum.Name, museum.Name, bookingURL),
		BookingURL: bookingURL,
		Venue:      museum,
	}
}

// CreateCafeBooking prepares a table reservation deep link. Quantity defaults
// to a party of two.
func (s *BookingService) CreateCafeBooking(cafeID int, date string, quantity int, timeSlot string) models.BookingSession {
	cafe, ok := s.CatalogService.GetCafeByID(cafeID)
	if !ok {
		return models.BookingSession{
			Success: false,
			Message: "Sorry, could not find the cafe you're trying to book.",
		}
	}
	if quantity <= 0 {
		quantity = 2
	}
	bookingURL := appendBookingParams(BookingLink(BookingTypeCafe, cafeID), date, quantity, "timeSlot", timeSlot)
	return models.BookingSession{
		Success:    true,
		Message:    fmt.Sprintf("I've prepared your table reservation for **%s**. [%s](%s) Use the booking button below to reserve your table and proceed to payment.", cafe.Name, cafe.Name, bookingURL),
		BookingURL: bookingURL,
		Venue:      cafe,
	}
}

// CreateShowBooking prepares a show ticket deep link.
func (s *BookingService) CreateShowBooking(showID int, date string, quantity int, showtime string) models.BookingSession {
	show, ok := s.CatalogService.GetShowByID(showID)
	if !ok {
		return models.BookingSession{
			Success: false,
			Message: "Sorry, could not find the show you're trying to book.",
		}
	}
	if quantity <= 0 {
		quantity = 1
	}
	bookingURL := appendBookingParams(BookingLink(BookingTypeShow, showID), date, quantity, "showtime", showtime)
	return models.BookingSession{
		Success:    true,
		Message:    fmt.Sprintf("I've prepared your ticket booking for **%s**. [%s](%s) Use the booking button below to purchase your tickets.", show.Name, show.Name, bookingURL),
		BookingURL: bookingURL,
		Venue:      show,
	}
}
