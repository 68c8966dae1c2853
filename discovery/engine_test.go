package discovery

import (
	"testing"
	"time"

	"github.com/aleppo-guide/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func testPlace(name string, opts ...func(*models.Place)) models.Place {
	p := models.Place{
		Name:      name,
		Category:  models.CategoryArchaeological,
		Latitude:  36.20,
		Longitude: 37.16,
		CreatedAt: testNow.AddDate(0, 0, -1),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func withReviews(ratings ...int) func(*models.Place) {
	return func(p *models.Place) {
		for _, r := range ratings {
			p.Reviews = append(p.Reviews, models.Review{Rating: r})
		}
	}
}

func withCoords(lat, lng float64) func(*models.Place) {
	return func(p *models.Place) {
		p.Latitude = lat
		p.Longitude = lng
	}
}

func names(places []models.Place) []string {
	out := make([]string, len(places))
	for i, p := range places {
		out[i] = p.Name
	}
	return out
}

func TestDefaultFiltersAreNoOp(t *testing.T) {
	hours := "9:00 AM - 5:00 PM"
	places := []models.Place{
		testPlace("Citadel", withReviews(5, 5)),
		testPlace("Souk", func(p *models.Place) {
			p.Category = models.CategoryRestaurant
			p.VisitTimeRange = &hours
			p.CreatedAt = testNow.AddDate(-3, 0, 0)
		}),
	}

	filtered := Filter(places, DefaultFilters(), testNow)
	assert.Equal(t, []string{"Citadel", "Souk"}, names(filtered))
}

func TestFilterSearchTerm(t *testing.T) {
	places := []models.Place{
		testPlace("Citadel of Aleppo"),
		testPlace("Great Mosque", func(p *models.Place) { p.Description = "The citadel's neighbor" }),
		testPlace("Al-Madina Souk"),
	}

	f := DefaultFilters()
	f.SearchTerm = "CITADEL"

	// Matches name or description, case-insensitively
	filtered := Filter(places, f, testNow)
	assert.Equal(t, []string{"Citadel of Aleppo", "Great Mosque"}, names(filtered))
}

func TestFilterPhotosMin(t *testing.T) {
	places := []models.Place{
		testPlace("none"),
		testPlace("two", func(p *models.Place) {
			p.Photos = []models.Photo{{URL: "a"}, {URL: "b"}}
		}),
	}

	f := DefaultFilters()
	f.PhotosMin = 2

	filtered := Filter(places, f, testNow)
	assert.Equal(t, []string{"two"}, names(filtered))
}

func TestFilterDateRange(t *testing.T) {
	places := []models.Place{
		testPlace("yesterday"),
		testPlace("three weeks ago", func(p *models.Place) { p.CreatedAt = testNow.AddDate(0, 0, -21) }),
		testPlace("six months ago", func(p *models.Place) { p.CreatedAt = testNow.AddDate(0, -6, 0) }),
		testPlace("two years ago", func(p *models.Place) { p.CreatedAt = testNow.AddDate(-2, 0, 0) }),
	}

	tests := []struct {
		dateRange string
		expected  []string
	}{
		{"week", []string{"yesterday"}},
		{"month", []string{"yesterday", "three weeks ago"}},
		{"year", []string{"yesterday", "three weeks ago", "six months ago"}},
		{"all", []string{"yesterday", "three weeks ago", "six months ago", "two years ago"}},
	}

	for _, tt := range tests {
		t.Run(tt.dateRange, func(t *testing.T) {
			f := DefaultFilters()
			f.DateRange = tt.dateRange
			assert.Equal(t, tt.expected, names(Filter(places, f, testNow)))
		})
	}
}

func TestFilterCategory(t *testing.T) {
	places := []models.Place{
		testPlace("Citadel"),
		testPlace("Beit Sissi", func(p *models.Place) { p.Category = models.CategoryRestaurant }),
	}

	f := DefaultFilters()
	f.Category = string(models.CategoryRestaurant)

	assert.Equal(t, []string{"Beit Sissi"}, names(Filter(places, f, testNow)))
}

func TestFilterMinRating(t *testing.T) {
	places := []models.Place{
		testPlace("exactly three", withReviews(5, 1)), // average 3.0
		testPlace("unreviewed"),
		testPlace("low", withReviews(2)),
	}

	f := DefaultFilters()
	f.MinRating = 3

	// The minimum is inclusive; a place with zero reviews fails any
	// positive minimum.
	assert.Equal(t, []string{"exactly three"}, names(Filter(places, f, testNow)))

	f.MinRating = 0
	assert.Len(t, Filter(places, f, testNow), 3)
}

func TestFilterOpenNow(t *testing.T) {
	day := "9:00 AM - 5:00 PM"
	night := "10:00 PM - 6:00 AM"
	garbled := "whenever"
	places := []models.Place{
		testPlace("day", func(p *models.Place) { p.VisitTimeRange = &day }),
		testPlace("night", func(p *models.Place) { p.VisitTimeRange = &night }),
		testPlace("unscheduled"),
		testPlace("garbled", func(p *models.Place) { p.VisitTimeRange = &garbled }),
	}

	f := DefaultFilters()
	f.OpenNow = true

	// testNow is noon: the day window matches, the overnight one does not,
	// and missing or unparsable schedules count as open.
	filtered := Filter(places, f, testNow)
	assert.Equal(t, []string{"day", "unscheduled", "garbled"}, names(filtered))
}

func TestFilterHasEvents(t *testing.T) {
	places := []models.Place{
		testPlace("quiet"),
		testPlace("busy", func(p *models.Place) {
			p.Events = []models.Event{{Name: "Festival"}}
		}),
	}

	f := DefaultFilters()
	f.HasEvents = true

	assert.Equal(t, []string{"busy"}, names(Filter(places, f, testNow)))
}

func TestFilterBounds(t *testing.T) {
	places := []models.Place{
		testPlace("inside", withCoords(36.20, 37.16)),
		testPlace("outside", withCoords(33.51, 36.28)),
	}

	f := DefaultFilters()
	f.Bounds = Bounds{LatMin: 36.0, LatMax: 36.5, LngMin: 37.0, LngMax: 37.5}

	assert.Equal(t, []string{"inside"}, names(Filter(places, f, testNow)))
}

func TestFilterIsIdempotent(t *testing.T) {
	places := []models.Place{
		testPlace("Citadel", withReviews(4)),
		testPlace("Souk", withReviews(2)),
		testPlace("Museum"),
	}

	f := DefaultFilters()
	f.MinRating = 2

	once := Filter(places, f, testNow)
	twice := Filter(once, f, testNow)
	assert.Equal(t, names(once), names(twice))
}

func TestSortByDistance(t *testing.T) {
	// Scenario from the home listing: caller standing at the Citadel.
	places := []models.Place{
		testPlace("Souk", withCoords(36.19, 37.15)),
		testPlace("Citadel", withCoords(36.20, 37.16), withReviews(5, 5)),
	}
	loc := &Coordinates{Lat: 36.20, Lng: 37.16}

	Sort(places, "distance_asc", loc)
	assert.Equal(t, []string{"Citadel", "Souk"}, names(places))

	Sort(places, "distance_desc", loc)
	assert.Equal(t, []string{"Souk", "Citadel"}, names(places))
}

func TestSortByDistanceWithoutLocation(t *testing.T) {
	places := []models.Place{
		testPlace("far", withCoords(35.0, 36.0)),
		testPlace("near", withCoords(36.20, 37.16)),
	}

	// No caller coordinates: the incoming order survives
	Sort(places, "distance_asc", nil)
	assert.Equal(t, []string{"far", "near"}, names(places))
}

func TestSortByRating(t *testing.T) {
	places := []models.Place{
		testPlace("average three", withReviews(3, 3)),
		testPlace("unreviewed"),
		testPlace("four and a half", withReviews(4, 5)),
	}

	Sort(places, "rating_desc", nil)
	assert.Equal(t, []string{"four and a half", "average three", "unreviewed"}, names(places))

	Sort(places, "rating_asc", nil)
	assert.Equal(t, []string{"unreviewed", "average three", "four and a half"}, names(places))
}

func TestSortByAge(t *testing.T) {
	places := []models.Place{
		testPlace("middle", func(p *models.Place) { p.CreatedAt = testNow.AddDate(0, -1, 0) }),
		testPlace("newest", func(p *models.Place) { p.CreatedAt = testNow }),
		testPlace("oldest", func(p *models.Place) { p.CreatedAt = testNow.AddDate(-1, 0, 0) }),
	}

	Sort(places, "age_asc", nil)
	assert.Equal(t, []string{"oldest", "middle", "newest"}, names(places))

	Sort(places, "age_desc", nil)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, names(places))
}

func TestPaginate(t *testing.T) {
	places := make([]models.Place, 14)
	for i := range places {
		places[i] = testPlace(string(rune('a' + i)))
	}

	page := Paginate(places, 1, 6)
	require.Equal(t, 3, page.TotalPages) // ceil(14/6)
	assert.Equal(t, 14, page.TotalItems)
	assert.Len(t, page.Places, 6)
	assert.Equal(t, "a", page.Places[0].Name)

	page = Paginate(places, 3, 6)
	assert.Len(t, page.Places, 2)
	assert.Equal(t, 3, page.CurrentPage)
}

func TestPaginateClampsPage(t *testing.T) {
	places := []models.Place{testPlace("only")}

	page := Paginate(places, 9, 6)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Places, 1)

	page = Paginate(places, 0, 6)
	assert.Equal(t, 1, page.CurrentPage)

	page = Paginate(nil, 2, 6)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Places)
}

func TestDiscoverPipeline(t *testing.T) {
	places := []models.Place{
		testPlace("Souk", withCoords(36.19, 37.15)),
		testPlace("Citadel", withCoords(36.20, 37.16), withReviews(5, 5)),
		testPlace("Beit Sissi", withCoords(36.21, 37.14), func(p *models.Place) {
			p.Category = models.CategoryRestaurant
		}),
	}

	f := DefaultFilters()
	f.SortBy = "distance_asc"
	f.Category = string(models.CategoryArchaeological)
	loc := &Coordinates{Lat: 36.20, Lng: 37.16}

	page := Discover(places, f, loc, 1, 6, testNow)
	assert.Equal(t, []string{"Citadel", "Souk"}, names(page.Places))
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.TotalItems)
}
