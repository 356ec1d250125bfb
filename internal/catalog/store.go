package catalog

import (
	"context"

	"gorm.io/gorm"
)

// Store is read-only access to the curated route catalog.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindRoutes returns every route whose origin location name contains
// fromText and whose destination location name contains toText. Matching is
// LIKE-substring on both sides, so partial area names still hit.
func (s *Store) FindRoutes(ctx context.Context, fromText, toText string) ([]Route, error) {
	var routes []Route
	err := s.db.WithContext(ctx).
		Select("routes.*").
		Joins("JOIN locations origin ON origin.id = routes.from_location_id").
		Joins("JOIN locations dest ON dest.id = routes.to_location_id").
		Where("origin.name LIKE ? AND dest.name LIKE ?", "%"+fromText+"%", "%"+toText+"%").
		Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// FindSteps returns the legs of a route in riding order.
func (s *Store) FindSteps(ctx context.Context, routeID uint) ([]RouteStep, error) {
	var steps []RouteStep
	err := s.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("step_order ASC").
		Find(&steps).Error
	if err != nil {
		return nil, err
	}
	return steps, nil
}

// SearchLocationNames returns location names containing q, for the
// suggestion endpoint. The caller prepends the raw typed text itself.
func (s *Store) SearchLocationNames(ctx context.Context, q string) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&Location{}).
		Where("name LIKE ?", "%"+q+"%").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
