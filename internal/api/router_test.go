package api

import (
	"encoding/json"
	"itinerary-planner/internal/adapters/memory"
	"itinerary-planner/internal/domain"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coords(lat, lon float64) *domain.Coordinates {
	return domain.NewCoordinates(&lat, &lon)
}

func testRouter() http.Handler {
	delhi := domain.City{
		ID:          1,
		Name:        "Delhi",
		Restaurants: []string{"Karim's", "Bukhara"},
		Attractions: []domain.Attraction{
			{ID: 1, Name: "Red Fort", Category: "Heritage", EntryFee: 35, Coordinates: coords(28.6562, 77.2410)},
			{ID: 2, Name: "Jama Masjid", Category: "Spiritual", Coordinates: coords(28.6507, 77.2334)},
			{ID: 3, Name: "India Gate", Category: "Monument", Coordinates: coords(28.6129, 77.2295)},
			{ID: 4, Name: "Qutub Minar", Category: "Heritage", EntryFee: 35, Coordinates: coords(28.5245, 77.1855)},
		},
	}
	return NewRouter(memory.NewCitySource([]domain.City{delhi}), nil, Options{})
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-123")

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-ID"))
}

func TestHealthRejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

type itineraryBody struct {
	ID           string `json:"id"`
	CityID       int    `json:"city_id"`
	Destination  string `json:"destination"`
	DurationDays int    `json:"duration_days"`
	Pacing       string `json:"pacing"`
	Strategy     string `json:"strategy"`
	Budget       int    `json:"budget"`
	BudgetPerDay int    `json:"budget_per_day"`
	Days         []struct {
		Day        int `json:"day"`
		Activities []struct {
			Kind  string `json:"kind"`
			Time  string `json:"time"`
			Title string `json:"title"`
		} `json:"activities"`
	} `json:"days"`
}

func postItinerary(t *testing.T, body string) (*httptest.ResponseRecorder, itineraryBody) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(body))
	testRouter().ServeHTTP(rec, req)

	var out itineraryBody
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestPlanItinerary(t *testing.T) {
	rec, it := postItinerary(t, `{"city_id": 1, "duration_days": "2", "pacing": "Relaxed", "budget": 3000}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.NotEmpty(t, it.ID)
	assert.Equal(t, 1, it.CityID)
	assert.Equal(t, "Delhi", it.Destination)
	assert.Equal(t, 2, it.DurationDays)
	assert.Equal(t, "Relaxed", it.Pacing)
	assert.Equal(t, "nearest-neighbor", it.Strategy)
	assert.Equal(t, 1500, it.BudgetPerDay)
	require.Len(t, it.Days, 2)

	day1 := it.Days[0].Activities
	require.Len(t, day1, 5)
	assert.Equal(t, "arrival", day1[0].Kind)
	assert.Equal(t, "9:00 AM", day1[0].Time)
	assert.Equal(t, "Red Fort", day1[1].Title)
	assert.Equal(t, "lunch", day1[2].Kind)
	assert.Equal(t, "Lunch at Bukhara", day1[2].Title)
	assert.Equal(t, "Jama Masjid", day1[3].Title)
	assert.Equal(t, "dinner", day1[4].Kind)

	day2 := it.Days[1].Activities
	assert.Equal(t, "India Gate", day2[0].Title)
	assert.NotEqual(t, "dinner", day2[len(day2)-1].Kind)
}

func TestPlanItineraryDefaults(t *testing.T) {
	rec, it := postItinerary(t, `{"city_id": 1, "duration_days": "soon", "pacing": "whatever"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 3, it.DurationDays)
	assert.Equal(t, "Balanced", it.Pacing)
	assert.Equal(t, 2000, it.Budget)
	require.Len(t, it.Days, 3)
	assert.Equal(t, "free_time", it.Days[2].Activities[0].Kind)
}

func TestPlanItineraryHugeDurationIsClamped(t *testing.T) {
	rec, it := postItinerary(t, `{"city_id": 1, "duration_days": 2000000000}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, 30, it.DurationDays)
	assert.Len(t, it.Days, 30)
}

func TestPlanItineraryCategoryFilter(t *testing.T) {
	rec, it := postItinerary(t, `{"city_id": 1, "duration_days": 1, "category": "heritage"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var titles []string
	for _, a := range it.Days[0].Activities {
		if a.Kind == "visit" {
			titles = append(titles, a.Title)
		}
	}
	assert.Equal(t, []string{"Red Fort", "Qutub Minar"}, titles)
}

func TestPlanItineraryShuffleIsDeterministic(t *testing.T) {
	body := `{"city_id": 1, "duration_days": 1, "pacing": "Adventure-packed", "strategy": "shuffle", "seed": 99}`

	_, first := postItinerary(t, body)
	_, second := postItinerary(t, body)

	require.Len(t, first.Days, 1)
	assert.Equal(t, "shuffle", first.Strategy)
	assert.Equal(t, first.Days, second.Days)
}

func TestPlanItineraryErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"unknown city", `{"city_id": 42}`, http.StatusNotFound},
		{"missing city", `{"duration_days": 2}`, http.StatusBadRequest},
		{"bad json", `{"city_id": `, http.StatusBadRequest},
		{"unknown field", `{"city_id": 1, "hotel": "x"}`, http.StatusBadRequest},
		{"two objects", `{"city_id": 1}{"city_id": 1}`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := postItinerary(t, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestOptimizeRoute(t *testing.T) {
	body := `{"points": [
		{"name": "A", "latitude": 0, "longitude": 0},
		{"name": "B", "latitude": 0, "longitude": 1},
		{"name": "C", "latitude": 1, "longitude": 1},
		{"name": "D", "latitude": 1, "longitude": 0}
	]}`

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/routes/optimize", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Route []struct {
			Name string `json:"name"`
		} `json:"route"`
		RouteOrder      []int   `json:"route_order"`
		TotalDistanceKm float64 `json:"total_distance_km"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.Equal(t, []int{0, 1, 2, 3}, out.RouteOrder)
	require.Len(t, out.Route, 4)
	assert.Equal(t, "C", out.Route[2].Name)
	assert.InDelta(t, 333.57, out.TotalDistanceKm, 0.05)
}

func TestOptimizeRouteValidation(t *testing.T) {
	for name, body := range map[string]string{
		"no points":    `{"points": []}`,
		"missing name": `{"points": [{"latitude": 1, "longitude": 2}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/routes/optimize", strings.NewReader(body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCategories(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"categories":["Heritage","Monument","Spiritual"]}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/itineraries", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitedRouter(t *testing.T) {
	router := NewRouter(memory.NewCitySource(nil), nil, Options{RequestsPerSecond: 0.001, Burst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
