package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-planner/internal/domain"
	"os"
	"strings"
)

type AttractionSeed struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Time         string   `json:"time"`
	OpeningHours string   `json:"opening_hours"`
	EntryFee     int      `json:"entry_fee"`
	Rating       float64  `json:"rating"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

type CitySeed struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	State       string           `json:"state"`
	Region      string           `json:"region"`
	Description string           `json:"description"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Meals       []string         `json:"meals"`
	Attractions []AttractionSeed `json:"attractions"`
}

// ParseSeed decodes and validates a JSON array of cities.
// IDs must be positive and unique, and names non-empty.
func ParseSeed(data []byte) ([]CitySeed, error) {
	var cities []CitySeed
	if err := json.Unmarshal(data, &cities); err != nil {
		return nil, fmt.Errorf("parse seed: decode json: %w", err)
	}

	cityIDs := make(map[int]struct{}, len(cities))
	attractionIDs := make(map[int]struct{})

	for i := range cities {
		c := &cities[i]
		if c.ID <= 0 {
			return nil, fmt.Errorf("parse seed: invalid city id at index %d: %d", i+1, c.ID)
		}
		if _, dup := cityIDs[c.ID]; dup {
			return nil, fmt.Errorf("parse seed: duplicate city id %d", c.ID)
		}
		cityIDs[c.ID] = struct{}{}

		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return nil, fmt.Errorf("parse seed: city %d: name cannot be empty", c.ID)
		}

		names := make(map[string]struct{}, len(c.Attractions))
		for j := range c.Attractions {
			a := &c.Attractions[j]
			if a.ID <= 0 {
				return nil, fmt.Errorf("parse seed: city %d: invalid attraction id at index %d: %d", c.ID, j+1, a.ID)
			}
			if _, dup := attractionIDs[a.ID]; dup {
				return nil, fmt.Errorf("parse seed: duplicate attraction id %d", a.ID)
			}
			attractionIDs[a.ID] = struct{}{}

			a.Name = strings.TrimSpace(a.Name)
			if a.Name == "" {
				return nil, fmt.Errorf("parse seed: attraction %d: name cannot be empty", a.ID)
			}
			if _, dup := names[a.Name]; dup {
				return nil, fmt.Errorf("parse seed: city %d: duplicate attraction name %q", c.ID, a.Name)
			}
			names[a.Name] = struct{}{}
		}
	}

	return cities, nil
}

// LoadSeedFile reads a seed file straight into domain cities.
func LoadSeedFile(jsonPath string) ([]domain.City, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	seeds, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	cities := make([]domain.City, 0, len(seeds))
	for _, s := range seeds {
		cities = append(cities, s.toDomain())
	}
	return cities, nil
}

func (s CitySeed) toDomain() domain.City {
	city := domain.City{
		ID:          s.ID,
		Name:        s.Name,
		State:       s.State,
		Region:      s.Region,
		Description: s.Description,
		Coordinates: domain.NewCoordinates(s.Latitude, s.Longitude),
		Attractions: make([]domain.Attraction, 0, len(s.Attractions)),
		Restaurants: append([]string(nil), s.Meals...),
	}

	for _, a := range s.Attractions {
		city.Attractions = append(city.Attractions, domain.Attraction{
			ID:           a.ID,
			Name:         a.Name,
			Category:     a.Category,
			Description:  a.Description,
			Duration:     a.Time,
			OpeningHours: a.OpeningHours,
			EntryFee:     a.EntryFee,
			Rating:       a.Rating,
			Coordinates:  domain.NewCoordinates(a.Latitude, a.Longitude),
		})
	}

	return city
}

// Populate the database with cities and attractions from a JSON file.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed cities: DB is nil")
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed cities: read %q: %w", jsonPath, err)
	}

	cities, err := ParseSeed(data)
	if err != nil {
		return fmt.Errorf("seed cities: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed cities: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cityStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO cities (id, name, state, region, description, latitude, longitude)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		state = EXCLUDED.state,
		region = EXCLUDED.region,
		description = EXCLUDED.description,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`)
	if err != nil {
		return fmt.Errorf("seed cities: prepare city insert: %w", err)
	}
	defer cityStmt.Close()

	attractionStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO attractions (
		id, city_id, name, category, description, duration,
		opening_hours, entry_fee, rating, latitude, longitude
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO UPDATE
	SET city_id = EXCLUDED.city_id,
		name = EXCLUDED.name,
		category = EXCLUDED.category,
		description = EXCLUDED.description,
		duration = EXCLUDED.duration,
		opening_hours = EXCLUDED.opening_hours,
		entry_fee = EXCLUDED.entry_fee,
		rating = EXCLUDED.rating,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude;
	`)
	if err != nil {
		return fmt.Errorf("seed cities: prepare attraction insert: %w", err)
	}
	defer attractionStmt.Close()

	for _, c := range cities {
		if _, err := cityStmt.ExecContext(ctx, c.ID, c.Name, c.State, c.Region, c.Description, c.Latitude, c.Longitude); err != nil {
			return fmt.Errorf("seed cities: insert city id=%d: %w", c.ID, err)
		}

		for _, a := range c.Attractions {
			if _, err := attractionStmt.ExecContext(ctx,
				a.ID, c.ID, a.Name, a.Category, a.Description, a.Time,
				a.OpeningHours, a.EntryFee, a.Rating, a.Latitude, a.Longitude,
			); err != nil {
				return fmt.Errorf("seed cities: insert attraction id=%d: %w", a.ID, err)
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM city_restaurants WHERE city_id = $1;`, c.ID); err != nil {
			return fmt.Errorf("seed cities: clear restaurants city id=%d: %w", c.ID, err)
		}
		for pos, name := range c.Meals {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO city_restaurants (city_id, position, name) VALUES ($1, $2, $3);`,
				c.ID, pos, name,
			); err != nil {
				return fmt.Errorf("seed cities: insert restaurant city id=%d: %w", c.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed cities: commit tx: %w", err)
	}

	return nil
}
