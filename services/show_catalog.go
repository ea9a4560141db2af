package services

import (
	"strings"

	"github.com/shivaji43/mymuseum/models"
)

// GetShows returns a copy of the full show collection.
func (s *CatalogService) GetShows() []models.Show {
	out := make([]models.Show, len(s.shows))
	copy(out, s.shows)
	return out
}

func (s *CatalogService) GetShowByID(id int) (models.Show, bool) {
	for _, sh := range s.shows {
		if sh.ID == id {
			return sh, true
		}
	}
	return models.Show{}, false
}

func (s *CatalogService) GetShowsByCategory(category string) []models.Show {
	if strings.EqualFold(category, "all") {
		return s.GetShows()
	}
	out := []models.Show{}
	for _, sh := range s.shows {
		if strings.EqualFold(sh.Category, category) {
			out = append(out, sh)
		}
	}
	return out
}

func (s *CatalogService) GetFeaturedShows() []models.Show {
	out := []models.Show{}
	for _, sh := range s.shows {
		if sh.Featured {
			out = append(out, sh)
		}
	}
	return out
}

// SearchShows matches the query case-insensitively against name, venue,
// location, description, city, state, genre, category, language and cast.
// A blank query returns the full collection.
func (s *CatalogService) SearchShows(query string) []models.Show {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetShows()
	}
	out := []models.Show{}
	for _, sh := range s.shows {
		if containsFold(sh.Name, query) ||
			containsFold(sh.Venue, query) ||
			containsFold(sh.Location, query) ||
			containsFold(sh.Description, query) ||
			containsFold(sh.City, query) ||
			containsFold(sh.State, query) ||
			containsFold(sh.Genre, query) ||
			containsFold(sh.Category, query) ||
			containsFold(sh.Language, query) ||
			anyContainsFold(sh.Cast, query) {
			out = append(out, sh)
		}
	}
	return out
}

func (s *CatalogService) GetShowsByCity(city string) []models.Show {
	out := []models.Show{}
	for _, sh := range s.shows {
		if cityMatches(sh.City, city) {
			out = append(out, sh)
		}
	}
	return out
}

func (s *CatalogService) GetShowsByState(state string) []models.Show {
	out := []models.Show{}
	for _, sh := range s.shows {
		if strings.EqualFold(sh.State, state) {
			out = append(out, sh)
		}
	}
	return out
}

// GetShowsByPriceRange filters on ticket price, inclusive on both bounds.
func (s *CatalogService) GetShowsByPriceRange(minPrice, maxPrice float64) []models.Show {
	out := []models.Show{}
	for _, sh := range s.shows {
		if sh.TicketPrice >= minPrice && sh.TicketPrice <= maxPrice {
			out = append(out, sh)
		}
	}
	return out
}

func (s *CatalogService) GetShowCities() []string {
	cities := make([]string, 0, len(s.shows))
	for _, sh := range s.shows {
		cities = append(cities, sh.City)
	}
	return uniqueSorted(cities)
}

func (s *CatalogService) GetShowStates() []string {
	states := make([]string, 0, len(s.shows))
	for _, sh := range s.shows {
		states = append(states, sh.State)
	}
	return uniqueSorted(states)
}
