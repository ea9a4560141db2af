package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingLink(t *testing.T) {
	assert.Equal(t, "/museums?bookingId=5", BookingLink(BookingTypeMuseum, 5))
	assert.Equal(t, "/cafes?bookingId=12", BookingLink(BookingTypeCafe, 12))
	assert.Equal(t, "/shows?bookingId=3", BookingLink(BookingTypeShow, 3))
	assert.Equal(t, "/", BookingLink(BookingType("hotel"), 1))
}

func TestCreateMuseumBookingURL(t *testing.T) {
	booking := NewBookingService(NewCatalogService())

	session := booking.CreateMuseumBooking(5, "2024-05-01", 3)
	require.True(t, session.Success)
	assert.Equal(t, "/museums?bookingId=5&date=2024-05-01&quantity=3", session.BookingURL)
}

func TestCreateMuseumBookingOmitsAbsentParams(t *testing.T) {
	booking := NewBookingService(NewCatalogService())

	session := booking.CreateMuseumBooking(5, "", 0)
	require.True(t, session.Success)
	// Defaults must not leak into the URL as empty or implicit values.
	assert.Equal(t, "/museums?bookingId=5", session.BookingURL)
}

func TestCreateCafeBookingWithTimeSlot(t *testing.T) {
	booking := NewBookingService(NewCatalogService())

	session := booking.CreateCafeBooking(12, "2024-05-01", 4, "7:00 PM")
	require.True(t, session.Success)
	assert.True(t, strings.HasPrefix(session.BookingURL, "/cafes?bookingId=12"))
	assert.Contains(t, session.BookingURL, "&date=2024-05-01")
	assert.Contains(t, session.BookingURL, "&quantity=4")
	assert.Contains(t, session.BookingURL, "&timeSlot=")
	assert.NotContains(t, session.BookingURL, " ")
}

func TestCreateShowBookingWithShowtime(t *testing.T) {
	booking := NewBookingService(NewCatalogService())

	session := booking.CreateShowBooking(1, "2025-09-06", 2, "7:30 PM")
	require.True(t, session.Success)
	assert.True(t, strings.HasPrefix(session.BookingURL, "/shows?bookingId=1"))
	assert.Contains(t, session.BookingURL, "&showtime=")
}

func TestCreateBookingUnknownVenue(t *testing.T) {
	booking := NewBookingService(NewCatalogService())

	session := booking.CreateMuseumBooking(99999, "2024-05-01", 1)
	assert.False(t, session.Success)
	assert.Empty(t, session.BookingURL)
	assert.NotEmpty(t, session.Message)
}

func TestBookingRedirectLink(t *testing.T) {
	link := BookingRedirectLink(BookingTypeCafe, 12, "2024-05-01", 2, "")
	assert.Equal(t, "/booking-redirect?type=cafe&id=12&date=2024-05-01&quantity=2", link)

	bare := BookingRedirectLink(BookingTypeShow, 3, "", 1, "")
	assert.Equal(t, "/booking-redirect?type=show&id=3", bare)
}
