package services

import (
	"strings"

	"github.com/shivaji43/mymuseum/models"
)

// GetMuseums returns a copy of the full museum collection.
func (s *CatalogService) GetMuseums() []models.Museum {
	out := make([]models.Museum, len(s.museums))
	copy(out, s.museums)
	return out
}

// GetMuseumByID returns the museum with the given id, or false when no
// record matches.
func (s *CatalogService) GetMuseumByID(id int) (models.Museum, bool) {
	for _, m := range s.museums {
		if m.ID == id {
			return m, true
		}
	}
	return models.Museum{}, false
}

// GetMuseumsByCategory filters by exact category, case-insensitively.
// "all" returns everything.
func (s *CatalogService) GetMuseumsByCategory(category string) []models.Museum {
	if strings.EqualFold(category, "all") {
		return s.GetMuseums()
	}
	out := []models.Museum{}
	for _, m := range s.museums {
		if strings.EqualFold(m.Category, category) {
			out = append(out, m)
		}
	}
	return out
}

func (s *CatalogService) GetFeaturedMuseums() []models.Museum {
	out := []models.Museum{}
	for _, m := range s.museums {
		if m.Featured {
			out = append(out, m)
		}
	}
	return out
}

// SearchMuseums matches the query case-insensitively against name, location,
// description, city, state, category, highlights and special exhibitions.
// A blank query returns the full collection.
func (s *CatalogService) SearchMuseums(query string) []models.Museum {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetMuseums()
	}
	out := []models.Museum{}
	for _, m := range s.museums {
		if containsFold(m.Name, query) ||
			containsFold(m.Location, query) ||
			containsFold(m.Description, query) ||
			containsFold(m.City, query) ||
			containsFold(m.State, query) ||
			containsFold(m.Category, query) ||
			anyContainsFold(m.Highlights, query) ||
			anyContainsFold(m.SpecialExhibitions, query) {
			out = append(out, m)
		}
	}
	return out
}

// GetMuseumsByCity uses the symmetric substring heuristic of cityMatches.
func (s *CatalogService) GetMuseumsByCity(city string) []models.Museum {
	out := []models.Museum{}
	for _, m := range s.museums {
		if cityMatches(m.City, city) {
			out = append(out, m)
		}
	}
	return out
}

func (s *CatalogService) GetMuseumsByState(state string) []models.Museum {
	out := []models.Museum{}
	for _, m := range s.museums {
		if strings.EqualFold(m.State, state) {
			out = append(out, m)
		}
	}
	return out
}

// GetMuseumsByPriceRange is inclusive on both bounds.
func (s *CatalogService) GetMuseumsByPriceRange(minPrice, maxPrice float64) []models.Museum {
	out := []models.Museum{}
	for _, m := range s.museums {
		if m.Price >= minPrice && m.Price <= maxPrice {
			out = append(out, m)
		}
	}
	return out
}

func (s *CatalogService) GetMuseumCities() []string {
	cities := make([]string, 0, len(s.museums))
	for _, m := range s.museums {
		cities = append(cities, m.City)
	}
	return uniqueSorted(cities)
}

func (s *CatalogService) GetMuseumStates() []string {
	states := make([]string, 0, len(s.museums))
	for _, m := range s.museums {
		states = append(states, m.State)
	}
	return uniqueSorted(states)
}
