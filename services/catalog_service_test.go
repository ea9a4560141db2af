package services

import (
	"sort"
	"strings"
	"testing"

	"github.com/shivaji43/mymuseum/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCityFixtureCatalog() *CatalogService {
	return &CatalogService{
		museums: []models.Museum{
			{ID: 1, Name: "Old Fort Museum", City: "Delhi", State: "Delhi", Price: 50},
			{ID: 2, Name: "Capital Gallery", City: "New Delhi", State: "Delhi", Price: 100},
			{ID: 3, Name: "Harbour Museum", City: "Mumbai", State: "Maharashtra", Price: 150},
		},
		cafes: []models.Cafe{
			{ID: 1, Name: "Corner Cafe", City: "Delhi", AvgPrice: 100},
			{ID: 2, Name: "Ring Road Cafe", City: "New Delhi", AvgPrice: 200},
			{ID: 3, Name: "Sea View Cafe", City: "Mumbai", AvgPrice: 300},
		},
		shows: []models.Show{
			{ID: 1, Name: "Evening Qawwali", City: "Delhi", TicketPrice: 250},
			{ID: 2, Name: "Harbour Jazz", City: "Mumbai", TicketPrice: 800},
		},
	}
}

func TestCatalogLoadsEmbeddedData(t *testing.T) {
	catalog := NewCatalogService()

	assert.NotEmpty(t, catalog.GetMuseums())
	assert.NotEmpty(t, catalog.GetCafes())
	assert.NotEmpty(t, catalog.GetShows())
}

func TestSearchMuseumsMatchesEnumeratedFields(t *testing.T) {
	catalog := NewCatalogService()

	results := catalog.SearchMuseums("chola")
	require.NotEmpty(t, results)

	for _, m := range results {
		matched := containsFold(m.Name, "chola") ||
			containsFold(m.Location, "chola") ||
			containsFold(m.Description, "chola") ||
			containsFold(m.City, "chola") ||
			containsFold(m.State, "chola") ||
			containsFold(m.Category, "chola") ||
			anyContainsFold(m.Highlights, "chola") ||
			anyContainsFold(m.SpecialExhibitions, "chola")
		assert.True(t, matched, "museum %q matched no searchable field", m.Name)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	catalog := NewCatalogService()

	lower := catalog.SearchCafes("parsi")
	upper := catalog.SearchCafes("PARSI")

	assert.Equal(t, cafeIDs(lower), cafeIDs(upper))
	assert.NotEmpty(t, lower)
}

func TestSearchEmptyQueryReturnsEverything(t *testing.T) {
	catalog := NewCatalogService()

	assert.ElementsMatch(t, cafeIDs(catalog.GetCafes()), cafeIDs(catalog.SearchCafes("")))
	assert.ElementsMatch(t, cafeIDs(catalog.GetCafes()), cafeIDs(catalog.SearchCafes("   ")))
}

func TestGetMuseumByID(t *testing.T) {
	catalog := NewCatalogService()

	museum, ok := catalog.GetMuseumByID(5)
	require.True(t, ok)
	assert.Equal(t, 5, museum.ID)

	_, ok = catalog.GetMuseumByID(99999)
	assert.False(t, ok)
}

func TestCityFilterIsSymmetricSubstring(t *testing.T) {
	catalog := newCityFixtureCatalog()

	// "Delhi" must pull in "New Delhi" records and vice versa.
	delhi := catalog.GetMuseumsByCity("Delhi")
	assert.ElementsMatch(t, []int{1, 2}, museumIDs(delhi))

	newDelhi := catalog.GetMuseumsByCity("New Delhi")
	assert.ElementsMatch(t, []int{1, 2}, museumIDs(newDelhi))

	mumbai := catalog.GetMuseumsByCity("mumbai")
	assert.ElementsMatch(t, []int{3}, museumIDs(mumbai))
}

func TestPriceRangeIsInclusiveOnBothBounds(t *testing.T) {
	catalog := newCityFixtureCatalog()

	cafes := catalog.GetCafesByPriceRange(100, 200)
	assert.ElementsMatch(t, []int{1, 2}, cafeIDs(cafes))

	museums := catalog.GetMuseumsByPriceRange(50, 100)
	assert.ElementsMatch(t, []int{1, 2}, museumIDs(museums))

	shows := catalog.GetShowsByPriceRange(250, 250)
	assert.ElementsMatch(t, []int{1}, showIDs(shows))
}

func TestGetCafesByCategoryAll(t *testing.T) {
	catalog := NewCatalogService()

	assert.ElementsMatch(t, cafeIDs(catalog.GetCafes()), cafeIDs(catalog.GetCafesByCategory("all")))

	traditional := catalog.GetCafesByCategory("traditional")
	require.NotEmpty(t, traditional)
	for _, c := range traditional {
		assert.True(t, strings.EqualFold(c.Category, "Traditional"))
	}
}

func TestFeaturedFilters(t *testing.T) {
	catalog := NewCatalogService()

	for _, m := range catalog.GetFeaturedMuseums() {
		assert.True(t, m.Featured)
	}
	for _, c := range catalog.GetFeaturedCafes() {
		assert.True(t, c.Featured)
	}
	for _, s := range catalog.GetFeaturedShows() {
		assert.True(t, s.Featured)
	}
}

func TestCitiesAreUniqueAndSorted(t *testing.T) {
	catalog := NewCatalogService()

	cities := catalog.GetCafeCities()
	require.NotEmpty(t, cities)
	assert.True(t, sort.StringsAreSorted(cities))

	seen := map[string]bool{}
	for _, city := range cities {
		assert.False(t, seen[city], "duplicate city %q", city)
		seen[city] = true
	}
}

func TestAccessorsReturnFreshSlices(t *testing.T) {
	catalog := newCityFixtureCatalog()

	first := catalog.GetMuseums()
	first[0].Name = "mutated"

	second := catalog.GetMuseums()
	assert.Equal(t, "Old Fort Museum", second[0].Name)
}

func TestRandomFeaturedVenuesRespectsCount(t *testing.T) {
	catalog := NewCatalogService()

	venues := catalog.RandomFeaturedVenues(2)
	assert.LessOrEqual(t, len(venues.Museums), 2)
	assert.LessOrEqual(t, len(venues.Cafes), 2)
	assert.LessOrEqual(t, len(venues.Shows), 2)

	for _, m := range venues.Museums {
		assert.True(t, m.Featured)
	}
}

func museumIDs(museums []models.Museum) []int {
	ids := make([]int, 0, len(museums))
	for _, m := range museums {
		ids = append(ids, m.ID)
	}
	return ids
}

func cafeIDs(cafes []models.Cafe) []int {
	ids := make([]int, 0, len(cafes))
	for _, c := range cafes {
		ids = append(ids, c.ID)
	}
	return ids
}

func showIDs(shows []models.Show) []int {
	ids := make([]int, 0, len(shows))
	for _, s := range shows {
		ids = append(ids, s.ID)
	}
	return ids
}
