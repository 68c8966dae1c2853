package discovery

import (
	"testing"
	"time"

	"github.com/aleppo-guide/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventNames(events []PlaceEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Name
	}
	return out
}

func TestFlattenEvents(t *testing.T) {
	places := []models.Place{
		testPlace("Citadel", func(p *models.Place) {
			p.ID = 1
			p.Events = []models.Event{
				{Name: "Light Show", PlaceID: 1},
				{Name: "Heritage Week", PlaceID: 1},
			}
		}),
		testPlace("Souk"),
	}

	events := FlattenEvents(places)
	require.Len(t, events, 2)
	assert.Equal(t, "Light Show", events[0].Name)
	assert.Equal(t, "Citadel", events[0].Place.Name)
	assert.Equal(t, uint(1), events[0].Place.ID)
}

func TestFilterEventsSearchMatchesPlaceName(t *testing.T) {
	places := []models.Place{
		testPlace("Citadel", func(p *models.Place) {
			p.Events = []models.Event{{Name: "Light Show", StartDate: testNow, EndDate: testNow}}
		}),
		testPlace("Souk", func(p *models.Place) {
			p.Events = []models.Event{{Name: "Craft Fair", StartDate: testNow, EndDate: testNow}}
		}),
	}
	events := FlattenEvents(places)

	f := EventFilters{SearchTerm: "citadel", Category: "all", DateRange: "all"}
	assert.Equal(t, []string{"Light Show"}, eventNames(FilterEvents(events, f, testNow)))
}

func TestFilterEventsDateRange(t *testing.T) {
	mk := func(name string, startOffset, endOffset time.Duration) PlaceEvent {
		return PlaceEvent{Event: models.Event{
			Name:      name,
			StartDate: testNow.Add(startOffset),
			EndDate:   testNow.Add(endOffset),
		}}
	}

	events := []PlaceEvent{
		mk("ended last month", -40*24*time.Hour, -35*24*time.Hour),
		mk("running now", -24*time.Hour, 24*time.Hour),
		mk("in three days", 3*24*time.Hour, 4*24*time.Hour),
		mk("in three weeks", 21*24*time.Hour, 22*24*time.Hour),
		mk("in two months", 60*24*time.Hour, 61*24*time.Hour),
	}

	tests := []struct {
		dateRange string
		expected  []string
	}{
		{"all", []string{"ended last month", "running now", "in three days", "in three weeks", "in two months"}},
		{"upcoming", []string{"running now", "in three days", "in three weeks", "in two months"}},
		{"thisWeek", []string{"running now", "in three days"}},
		{"thisMonth", []string{"running now", "in three days", "in three weeks"}},
	}

	for _, tt := range tests {
		t.Run(tt.dateRange, func(t *testing.T) {
			f := EventFilters{Category: "all", DateRange: tt.dateRange}
			assert.Equal(t, tt.expected, eventNames(FilterEvents(events, f, testNow)))
		})
	}
}

func TestFilterEventsSortByDate(t *testing.T) {
	events := []PlaceEvent{
		{Event: models.Event{Name: "second", StartDate: testNow.Add(48 * time.Hour), EndDate: testNow.Add(49 * time.Hour)}},
		{Event: models.Event{Name: "first", StartDate: testNow.Add(24 * time.Hour), EndDate: testNow.Add(25 * time.Hour)}},
	}

	f := EventFilters{Category: "all", DateRange: "all", SortBy: "date_asc"}
	assert.Equal(t, []string{"first", "second"}, eventNames(FilterEvents(events, f, testNow)))

	f.SortBy = "date_desc"
	assert.Equal(t, []string{"second", "first"}, eventNames(FilterEvents(events, f, testNow)))
}

func TestFilterEventsCategoryOfOwningPlace(t *testing.T) {
	events := []PlaceEvent{
		{Event: models.Event{Name: "dig day"}, Place: EventPlace{Category: models.CategoryArchaeological}},
		{Event: models.Event{Name: "tasting"}, Place: EventPlace{Category: models.CategoryRestaurant}},
	}

	f := EventFilters{Category: string(models.CategoryRestaurant), DateRange: "all"}
	assert.Equal(t, []string{"tasting"}, eventNames(FilterEvents(events, f, testNow)))
}
