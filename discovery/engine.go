// Package discovery implements the place discovery engine: search,
// multi-criterion filtering, geo-distance ranking and pagination over the
// full materialized place list. Every function is a pure computation; the
// current instant and the caller's coordinates are always parameters.
package discovery

import (
	"sort"
	"strings"
	"time"

	"github.com/aleppo-guide/api-go/models"
)

const DefaultPerPage = 6

// Bounds is a latitude/longitude bounding box.
type Bounds struct {
	LatMin float64 `json:"latMin"`
	LatMax float64 `json:"latMax"`
	LngMin float64 `json:"lngMin"`
	LngMax float64 `json:"lngMax"`
}

// Filters is the filter state for the place list. Every field at its
// default value disables the corresponding predicate. HTTP binding lives
// in types.DiscoverQuery; this struct is purely in-process.
type Filters struct {
	SearchTerm string  `json:"search"`
	SortBy     string  `json:"sortBy"` // criterion_direction, e.g. distance_asc
	PhotosMin  int     `json:"photosMin"`
	DateRange  string  `json:"dateRange"` // all, week, month, year
	Category   string  `json:"category"`  // "all" or a PlaceCategory value
	MinRating  float64 `json:"minRating"`
	HasEvents  bool    `json:"hasEvents"`
	OpenNow    bool    `json:"openNow"`
	Bounds     Bounds  `json:"bounds"`
}

// DefaultFilters returns the inactive filter state: no search term, every
// predicate a no-op, bounding box spanning the entire globe.
func DefaultFilters() Filters {
	return Filters{
		SortBy:    "distance_asc",
		DateRange: "all",
		Category:  "all",
		Bounds:    Bounds{LatMin: -90, LatMax: 90, LngMin: -180, LngMax: 180},
	}
}

// Page is one page of filtered and sorted places.
type Page struct {
	Places      []models.Place `json:"places"`
	CurrentPage int            `json:"currentPage"`
	PerPage     int            `json:"perPage"`
	TotalItems  int            `json:"totalItems"`
	TotalPages  int            `json:"totalPages"`
}

// AverageRating returns the mean review rating of a place. A place with no
// reviews has an average of 0.
func AverageRating(p models.Place) float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range p.Reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(p.Reviews))
}

// Filter applies the filter state as a strict conjunction of independent
// predicates and returns the matching places in their original order.
func Filter(places []models.Place, f Filters, now time.Time) []models.Place {
	filtered := make([]models.Place, 0, len(places))
	for _, p := range places {
		if matches(p, f, now) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func matches(p models.Place, f Filters, now time.Time) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}

	if len(p.Photos) < f.PhotosMin {
		return false
	}

	switch f.DateRange {
	case "week":
		if p.CreatedAt.Before(now.AddDate(0, 0, -7)) {
			return false
		}
	case "month":
		if p.CreatedAt.Before(now.AddDate(0, -1, 0)) {
			return false
		}
	case "year":
		if p.CreatedAt.Before(now.AddDate(-1, 0, 0)) {
			return false
		}
	}

	if f.Category != "" && f.Category != "all" && string(p.Category) != f.Category {
		return false
	}

	if f.MinRating > 0 {
		// A place with no reviews fails any positive minimum
		if len(p.Reviews) == 0 || AverageRating(p) < f.MinRating {
			return false
		}
	}

	if f.OpenNow {
		visitTimeRange := ""
		if p.VisitTimeRange != nil {
			visitTimeRange = *p.VisitTimeRange
		}
		if !OpenAt(visitTimeRange, now) {
			return false
		}
	}

	if f.HasEvents && len(p.Events) == 0 {
		return false
	}

	if p.Latitude < f.Bounds.LatMin || p.Latitude > f.Bounds.LatMax ||
		p.Longitude < f.Bounds.LngMin || p.Longitude > f.Bounds.LngMax {
		return false
	}

	return true
}

// Sort orders places in place by the given criterion. Distance sorting is a
// no-op when the caller's location is unknown. The sort is stable, so ties
// keep their incoming order.
func Sort(places []models.Place, sortBy string, loc *Coordinates) {
	criterion, direction, _ := strings.Cut(sortBy, "_")
	descending := direction == "desc"

	switch criterion {
	case "distance":
		if loc == nil {
			return
		}
		sort.SliceStable(places, func(i, j int) bool {
			di := Distance(*loc, Coordinates{Lat: places[i].Latitude, Lng: places[i].Longitude})
			dj := Distance(*loc, Coordinates{Lat: places[j].Latitude, Lng: places[j].Longitude})
			if descending {
				return di > dj
			}
			return di < dj
		})
	case "rating":
		sort.SliceStable(places, func(i, j int) bool {
			ri := AverageRating(places[i])
			rj := AverageRating(places[j])
			if descending {
				return ri > rj
			}
			return ri < rj
		})
	case "age":
		sort.SliceStable(places, func(i, j int) bool {
			if descending {
				return places[i].CreatedAt.After(places[j].CreatedAt)
			}
			return places[i].CreatedAt.Before(places[j].CreatedAt)
		})
	}
}

// Paginate slices one 1-based page out of the list. The requested page is
// clamped to [1, max(1, totalPages)] so a shrinking result set can never
// strand a caller on a page past the end.
func Paginate(places []models.Place, page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	totalItems := len(places)
	totalPages := (totalItems + perPage - 1) / perPage

	lastPage := totalPages
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Places:      places[start:end],
		CurrentPage: page,
		PerPage:     perPage,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}

// Discover runs the full pipeline: filter, sort, then paginate. loc may be
// nil, in which case distance sorting leaves the filtered order untouched.
func Discover(places []models.Place, f Filters, loc *Coordinates, page, perPage int, now time.Time) Page {
	filtered := Filter(places, f, now)
	Sort(filtered, f.SortBy, loc)
	return Paginate(filtered, page, perPage)
}
