package services

import (
	"strings"

	"github.com/shivaji43/mymuseum/models"
)

// GetCafes returns a copy of the full cafe collection.
func (s *CatalogService) GetCafes() []models.Cafe {
	out := make([]models.Cafe, len(s.cafes))
	copy(out, s.cafes)
	return out
}

func (s *CatalogService) GetCafeByID(id int) (models.Cafe, bool) {
	for _, c := range s.cafes {
		if c.ID == id {
			return c, true
		}
	}
	return models.Cafe{}, false
}

func (s *CatalogService) GetCafesByCategory(category string) []models.Cafe {
	if strings.EqualFold(category, "all") {
		return s.GetCafes()
	}
	out := []models.Cafe{}
	for _, c := range s.cafes {
		if strings.EqualFold(c.Category, category) {
			out = append(out, c)
		}
	}
	return out
}

func (s *CatalogService) GetFeaturedCafes() []models.Cafe {
	out := []models.Cafe{}
	for _, c := range s.cafes {
		if c.Featured {
			out = append(out, c)
		}
	}
	return out
}

// SearchCafes matches the query case-insensitively against name, location,
// description, cuisine, city, state, category, highlights and the special
// menu. A blank query returns the full collection.
func (s *CatalogService) SearchCafes(query string) []models.Cafe {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetCafes()
	}
	out := []models.Cafe{}
	for _, c := range s.cafes {
		if containsFold(c.Name, query) ||
			containsFold(c.Location, query) ||
			containsFold(c.Description, query) ||
			containsFold(c.Cuisine, query) ||
			containsFold(c.City, query) ||
			containsFold(c.State, query) ||
			containsFold(c.Category, query) ||
			anyContainsFold(c.Highlights, query) ||
			anyContainsFold(c.SpecialMenu, query) {
			out = append(out, c)
		}
	}
	return out
}

func (s *CatalogService) GetCafesByCity(city string) []models.Cafe {
	out := []models.Cafe{}
	for _, c := range s.cafes {
		if cityMatches(c.City, city) {
			out = append(out, c)
		}
	}
	return out
}

func (s *CatalogService) GetCafesByState(state string) []models.Cafe {
	out := []models.Cafe{}
	for _, c := range s.cafes {
		if strings.EqualFold(c.State, state) {
			out = append(out, c)
		}
	}
	return out
}

// GetCafesByPriceRange filters on average price, inclusive on both bounds.
func (s *CatalogService) GetCafesByPriceRange(minPrice, maxPrice float64) []models.Cafe {
	out := []models.Cafe{}
	for _, c := range s.cafes {
		if c.AvgPrice >= minPrice && c.AvgPrice <= maxPrice {
			out = append(out, c)
		}
	}
	return out
}

func (s *CatalogService) GetCafeCities() []string {
	cities := make([]string, 0, len(s.cafes))
	for _, c := range s.cafes {
		cities = append(cities, c.City)
	}
	return uniqueSorted(cities)
}

func (s *CatalogService) GetCafeStates() []string {
	states := make([]string, 0, len(s.cafes))
	for _, c := range s.cafes {
		states = append(states, c.State)
	}
	return uniqueSorted(states)
}
