package citiesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-planner/internal/domain"
	"itinerary-planner/internal/platform/obs"
	"itinerary-planner/internal/ports"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client implements CitySource against the travel-guide REST backend.
//
// It reads GET /cities/{id} and GET /cities/attraction-categories and
// retries transient failures. The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
	logger  *zap.Logger
	retry   retryPolicy
}

var _ ports.CategoryLister = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("cities api: base url is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
		logger:  logger,
		retry:   defaultRetryPolicy(),
	}, nil
}

type cityEnvelope struct {
	Success bool         `json:"success"`
	City    *cityPayload `json:"city"`
	Error   string       `json:"error"`
}

type categoriesEnvelope struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
	Error      string   `json:"error"`
}

type cityPayload struct {
	ID          int                 `json:"id"`
	Name        string              `json:"name"`
	State       string              `json:"state"`
	Region      string              `json:"region"`
	Description string              `json:"description"`
	Latitude    *float64            `json:"latitude"`
	Longitude   *float64            `json:"longitude"`
	Attractions []attractionPayload `json:"attractions"`
	Meals       []string            `json:"meals"`
}

// Coordinates arrive as latitude/longitude from the backend, or as
// lat/lng in older exports. Either pair may be null.
type attractionPayload struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Time         string   `json:"time"`
	OpeningHours string   `json:"opening_hours"`
	EntryFee     int      `json:"entry_fee"`
	Rating       float64  `json:"rating"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
}

// Fetch a city and its attractions.
func (c *Client) GetCity(ctx context.Context, cityID int) (_ *domain.City, err error) {
	defer obs.Time(ctx, "citiesapi.GetCity")(&err)

	endpoint := fmt.Sprintf("%s/cities/%d", c.baseURL, cityID)

	var env cityEnvelope
	if err := c.getJSON(ctx, endpoint, &env); err != nil {
		var se *statusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, fmt.Errorf("get city %d: %w", cityID, ports.ErrCityNotFound)
		}
		return nil, fmt.Errorf("get city %d: %w", cityID, err)
	}

	if !env.Success || env.City == nil {
		if env.Error != "" {
			return nil, fmt.Errorf("get city %d: backend error: %s", cityID, env.Error)
		}
		return nil, fmt.Errorf("get city %d: %w", cityID, ports.ErrCityNotFound)
	}

	return c.toDomain(env.City), nil
}

// Fetch distinct attraction categories.
func (c *Client) ListCategories(ctx context.Context) (_ []string, err error) {
	defer obs.Time(ctx, "citiesapi.ListCategories")(&err)

	var env categoriesEnvelope
	if err := c.getJSON(ctx, c.baseURL+"/cities/attraction-categories", &env); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("list categories: backend error: %s", env.Error)
	}
	if env.Categories == nil {
		return []string{}, nil
	}
	return env.Categories, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	err := c.retry.run(ctx, func(ctx context.Context) error {
		resp, err := c.get(ctx, endpoint)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}, func(attempt int, wait time.Duration, err error) {
		c.logger.Debug("retrying cities api request",
			zap.String("url", endpoint),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
			zap.Error(err),
		)
	})
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	return nil
}

func (c *Client) toDomain(p *cityPayload) *domain.City {
	city := &domain.City{
		ID:          p.ID,
		Name:        p.Name,
		State:       p.State,
		Region:      p.Region,
		Description: p.Description,
		Coordinates: domain.NewCoordinates(p.Latitude, p.Longitude),
		Attractions: make([]domain.Attraction, 0, len(p.Attractions)),
		Restaurants: p.Meals,
	}

	for _, a := range p.Attractions {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			c.logger.Warn("skipping attraction without name",
				zap.Int("city_id", p.ID),
				zap.Int("attraction_id", a.ID),
			)
			continue
		}

		category := a.Category
		if category == "" {
			category = a.Type
		}

		coords := domain.NewCoordinates(a.Latitude, a.Longitude)
		if coords == nil {
			coords = domain.NewCoordinates(a.Lat, a.Lng)
		}

		city.Attractions = append(city.Attractions, domain.Attraction{
			ID:           a.ID,
			Name:         name,
			Category:     category,
			Description:  a.Description,
			Duration:     a.Time,
			OpeningHours: a.OpeningHours,
			EntryFee:     a.EntryFee,
			Rating:       a.Rating,
			Coordinates:  coords,
		})
	}

	return city
}
