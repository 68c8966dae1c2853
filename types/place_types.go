package types

import "github.com/aleppo-guide/api-go/discovery"

// DiscoverQuery is the query-string form of the filter state plus the
// caller's optional coordinates and the requested page. Defaults mirror
// discovery.DefaultFilters.
type DiscoverQuery struct {
	Search    string   `form:"search"`
	SortBy    string   `form:"sortBy,default=distance_asc"`
	PhotosMin int      `form:"photosMin" binding:"min=0"`
	DateRange string   `form:"dateRange,default=all" binding:"omitempty,oneof=all week month year"`
	Category  string   `form:"category,default=all"`
	MinRating float64  `form:"minRating" binding:"min=0,max=5"`
	HasEvents bool     `form:"hasEvents"`
	OpenNow   bool     `form:"openNow"`
	LatMin    float64  `form:"latMin,default=-90"`
	LatMax    float64  `form:"latMax,default=90"`
	LngMin    float64  `form:"lngMin,default=-180"`
	LngMax    float64  `form:"lngMax,default=180"`
	Lat       *float64 `form:"lat"`
	Lng       *float64 `form:"lng"`
	Page      int      `form:"page,default=1" binding:"min=0"`
	PerPage   int      `form:"perPage,default=6" binding:"min=0,max=50"`
}

// Filters converts the bound query into the engine's filter state.
func (q DiscoverQuery) Filters() discovery.Filters {
	return discovery.Filters{
		SearchTerm: q.Search,
		SortBy:     q.SortBy,
		PhotosMin:  q.PhotosMin,
		DateRange:  q.DateRange,
		Category:   q.Category,
		MinRating:  q.MinRating,
		HasEvents:  q.HasEvents,
		OpenNow:    q.OpenNow,
		Bounds: discovery.Bounds{
			LatMin: q.LatMin,
			LatMax: q.LatMax,
			LngMin: q.LngMin,
			LngMax: q.LngMax,
		},
	}
}

// Location returns the caller's coordinates, or nil when the client did not
// send them (distance sorting degrades to a no-op).
func (q DiscoverQuery) Location() *discovery.Coordinates {
	if q.Lat == nil || q.Lng == nil {
		return nil
	}
	return &discovery.Coordinates{Lat: *q.Lat, Lng: *q.Lng}
}

// EventsQuery is the query-string form of the events filter state.
type EventsQuery struct {
	Search    string `form:"search"`
	Category  string `form:"category,default=all"`
	DateRange string `form:"dateRange,default=all" binding:"omitempty,oneof=all upcoming thisWeek thisMonth"`
	SortBy    string `form:"sortBy,default=date_asc" binding:"omitempty,oneof=date_asc date_desc"`
}

func (q EventsQuery) Filters() discovery.EventFilters {
	return discovery.EventFilters{
		SearchTerm: q.Search,
		Category:   q.Category,
		DateRange:  q.DateRange,
		SortBy:     q.SortBy,
	}
}

// Marker is the minimal place shape the map view renders.
type Marker struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	CoverImage string  `json:"coverImage"`
}
