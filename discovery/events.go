package discovery

import (
	"sort"
	"strings"
	"time"

	"github.com/aleppo-guide/api-go/models"
)

// EventPlace is the owning-place context carried along with a flattened
// event so cards can render without a second lookup.
type EventPlace struct {
	ID         uint                 `json:"id"`
	Name       string               `json:"name"`
	Category   models.PlaceCategory `json:"category"`
	Latitude   float64              `json:"latitude"`
	Longitude  float64              `json:"longitude"`
	CoverImage string               `json:"coverImage"`
}

// PlaceEvent is an event enriched with its owning place.
type PlaceEvent struct {
	models.Event
	Place EventPlace `json:"place"`
}

// EventFilters is the filter state for the events listing.
type EventFilters struct {
	SearchTerm string `form:"search" json:"search"`
	Category   string `form:"category" json:"category"`   // "all" or a PlaceCategory value
	DateRange  string `form:"dateRange" json:"dateRange"` // all, upcoming, thisWeek, thisMonth
	SortBy     string `form:"sortBy" json:"sortBy"`       // date_asc, date_desc
}

// FlattenEvents collects every event from the place list, attaching its
// owning place.
func FlattenEvents(places []models.Place) []PlaceEvent {
	var events []PlaceEvent
	for _, p := range places {
		for _, e := range p.Events {
			events = append(events, PlaceEvent{
				Event: e,
				Place: EventPlace{
					ID:         p.ID,
					Name:       p.Name,
					Category:   p.Category,
					Latitude:   p.Latitude,
					Longitude:  p.Longitude,
					CoverImage: p.CoverImage,
				},
			})
		}
	}
	return events
}

// FilterEvents applies the event filter state and sorts by start date.
// The search term matches the event name, its description, or the owning
// place's name. Date ranges use overlap semantics: an event counts as long
// as it has not ended before now and starts before the range's horizon.
func FilterEvents(events []PlaceEvent, f EventFilters, now time.Time) []PlaceEvent {
	filtered := make([]PlaceEvent, 0, len(events))
	for _, e := range events {
		if matchesEvent(e, f, now) {
			filtered = append(filtered, e)
		}
	}

	criterion, direction, _ := strings.Cut(f.SortBy, "_")
	if criterion == "date" {
		descending := direction == "desc"
		sort.SliceStable(filtered, func(i, j int) bool {
			if descending {
				return filtered[i].StartDate.After(filtered[j].StartDate)
			}
			return filtered[i].StartDate.Before(filtered[j].StartDate)
		})
	}

	return filtered
}

func matchesEvent(e PlaceEvent, f EventFilters, now time.Time) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(e.Name), term) &&
			!strings.Contains(strings.ToLower(e.Description), term) &&
			!strings.Contains(strings.ToLower(e.Place.Name), term) {
			return false
		}
	}

	if f.Category != "" && f.Category != "all" && string(e.Place.Category) != f.Category {
		return false
	}

	switch f.DateRange {
	case "upcoming":
		if e.StartDate.Before(now) && e.EndDate.Before(now) {
			return false
		}
	case "thisWeek":
		horizon := now.AddDate(0, 0, 7)
		if e.StartDate.After(horizon) || e.EndDate.Before(now) {
			return false
		}
	case "thisMonth":
		horizon := now.AddDate(0, 1, 0)
		if e.StartDate.After(horizon) || e.EndDate.Before(now) {
			return false
		}
	}

	return true
}
