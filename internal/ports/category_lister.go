package ports

import "context"

// Optional extension of CitySource that lists known attraction categories.
type CategoryLister interface {
	CitySource
	// Return distinct attraction categories, sorted.
	ListCategories(ctx context.Context) ([]string, error)
}
