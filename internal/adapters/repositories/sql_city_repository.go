package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-planner/internal/domain"
	"itinerary-planner/internal/platform/obs"
	"itinerary-planner/internal/ports"
)

// Postgres-backed implementation of the CitySource port.
type SQLCityRepository struct{ DB *sql.DB }

var _ ports.CategoryLister = (*SQLCityRepository)(nil)

func NewSQLCityRepository(db *sql.DB) *SQLCityRepository {
	return &SQLCityRepository{DB: db}
}

// Return a city with its attractions in id order.
func (s *SQLCityRepository) GetCity(ctx context.Context, cityID int) (_ *domain.City, err error) {
	defer obs.Time(ctx, "repositories.GetCity")(&err)

	if s.DB == nil {
		return nil, errors.New("sql city repository: DB is nil")
	}

	var (
		city     domain.City
		lat, lon sql.NullFloat64
	)
	err = s.DB.QueryRowContext(ctx, `
	SELECT id, name, state, region, description, latitude, longitude
	FROM cities
	WHERE id = $1;
	`, cityID).Scan(&city.ID, &city.Name, &city.State, &city.Region, &city.Description, &lat, &lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get city %d: %w", cityID, ports.ErrCityNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get city %d: query cities table: %w", cityID, err)
	}
	city.Coordinates = nullCoordinates(lat, lon)

	city.Attractions, err = s.listAttractions(ctx, cityID)
	if err != nil {
		return nil, err
	}

	city.Restaurants, err = s.listRestaurants(ctx, cityID)
	if err != nil {
		return nil, err
	}

	return &city, nil
}

func (s *SQLCityRepository) listAttractions(ctx context.Context, cityID int) ([]domain.Attraction, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT id, name, category, description, duration, opening_hours,
		entry_fee, rating, latitude, longitude
	FROM attractions
	WHERE city_id = $1
	ORDER BY id;
	`, cityID)
	if err != nil {
		return nil, fmt.Errorf("list attractions: query attractions table: %w", err)
	}
	defer rows.Close()

	attractions := make([]domain.Attraction, 0, 16)
	for rows.Next() {
		var (
			a        domain.Attraction
			lat, lon sql.NullFloat64
		)
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Category, &a.Description, &a.Duration, &a.OpeningHours,
			&a.EntryFee, &a.Rating, &lat, &lon,
		); err != nil {
			return nil, fmt.Errorf("list attractions: scan row: %w", err)
		}
		a.Coordinates = nullCoordinates(lat, lon)
		attractions = append(attractions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attractions: row iteration: %w", err)
	}

	return attractions, nil
}

func (s *SQLCityRepository) listRestaurants(ctx context.Context, cityID int) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `
	SELECT name
	FROM city_restaurants
	WHERE city_id = $1
	ORDER BY position;
	`, cityID)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: query city_restaurants table: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list restaurants: scan row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list restaurants: row iteration: %w", err)
	}

	return names, nil
}

// Return distinct non-empty attraction categories.
func (s *SQLCityRepository) ListCategories(ctx context.Context) ([]string, error) {
	if s.DB == nil {
		return nil, errors.New("sql city repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT DISTINCT category
	FROM attractions
	WHERE category <> ''
	ORDER BY category;
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: query attractions table: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0, 16)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("list categories: scan row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: row iteration: %w", err)
	}

	return categories, nil
}

func nullCoordinates(lat, lon sql.NullFloat64) *domain.Coordinates {
	if !lat.Valid || !lon.Valid {
		return nil
	}
	return domain.NewCoordinates(&lat.Float64, &lon.Float64)
}
