package services

import (
	"embed"
	"encoding/json"
	"log"
	"math/rand"
	"sort"
	"strings"

	"github.com/shivaji43/mymuseum/models"
)

//go:embed data/museums.json data/cafes.json data/shows.json
var catalogFS embed.FS

// CatalogService holds the static venue collections decoded once at
// construction. All accessors are read-only and return fresh slices, never
// the backing arrays.
type CatalogService struct {
	museums []models.Museum
	cafes   []models.Cafe
	shows   []models.Show
}

// NewCatalogService decodes the embedded JSON catalog. A collection that
// fails to decode degrades to empty with a logged message; it is never a
// hard error for callers.
func NewCatalogService() *CatalogService {
	s := &CatalogService{}

	var museumDoc struct {
		Museums []models.Museum `json:"museums"`
	}
	if err := decodeCatalogFile("data/museums.json", &museumDoc); err != nil {
		log.Println("Error loading museums:", err)
	}
	s.museums = museumDoc.Museums

	var cafeDoc struct {
		Cafes []models.Cafe `json:"cafes"`
	}
	if err := decodeCatalogFile("data/cafes.json", &cafeDoc); err != nil {
		log.Println("Error loading cafes:", err)
	}
	s.cafes = cafeDoc.Cafes

	var showDoc struct {
		Shows []models.Show `json:"shows"`
	}
	if err := decodeCatalogFile("data/shows.json", &showDoc); err != nil {
		log.Println("Error loading shows:", err)
	}
	s.shows = showDoc.Shows

	log.Printf("Catalog loaded: %d museums, %d cafes, %d shows", len(s.museums), len(s.cafes), len(s.shows))
	return s
}

func decodeCatalogFile(name string, out interface{}) error {
	raw, err := catalogFS.ReadFile(name)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// AllVenues returns every collection at once for combined views.
func (s *CatalogService) AllVenues() models.AllVenues {
	return models.AllVenues{
		Museums: s.GetMuseums(),
		Cafes:   s.GetCafes(),
		Shows:   s.GetShows(),
	}
}

// SearchAllVenues runs the free-text search across all three venue types.
func (s *CatalogService) SearchAllVenues(query string) models.AllVenues {
	return models.AllVenues{
		Museums: s.SearchMuseums(query),
		Cafes:   s.SearchCafes(query),
		Shows:   s.SearchShows(query),
	}
}

// RandomFeaturedVenues picks up to count random featured venues of each type,
// for homepage style recommendations.
func (s *CatalogService) RandomFeaturedVenues(count int) models.AllVenues {
	museums := s.GetFeaturedMuseums()
	cafes := s.GetFeaturedCafes()
	shows := s.GetFeaturedShows()

	rand.Shuffle(len(museums), func(i, j int) { museums[i], museums[j] = museums[j], museums[i] })
	rand.Shuffle(len(cafes), func(i, j int) { cafes[i], cafes[j] = cafes[j], cafes[i] })
	rand.Shuffle(len(shows), func(i, j int) { shows[i], shows[j] = shows[j], shows[i] })

	return models.AllVenues{
		Museums: museums[:min(count, len(museums))],
		Cafes:   cafes[:min(count, len(cafes))],
		Shows:   shows[:min(count, len(shows))],
	}
}

// containsFold reports whether s contains substr, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func anyContainsFold(items []string, substr string) bool {
	for _, item := range items {
		if containsFold(item, substr) {
			return true
		}
	}
	return false
}

// cityMatches applies the symmetric substring heuristic so that "Delhi"
// matches "New Delhi" and vice versa.
func cityMatches(venueCity, query string) bool {
	venueCity = strings.ToLower(venueCity)
	query = strings.ToLower(query)
	return venueCity == query ||
		strings.Contains(venueCity, query) ||
		strings.Contains(query, venueCity)
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
