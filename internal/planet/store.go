package planet

import "context"

// Reader is the read side of the catalog used by the presentation service.
// Lookups that find nothing return (nil, nil).
type Reader interface {
	ListActive(ctx context.Context) ([]CelestialBody, error)
	ListActiveByType(ctx context.Context, planetType PlanetType) ([]CelestialBody, error)
	ListActiveDwarfPlanets(ctx context.Context) ([]CelestialBody, error)
	GetActiveByID(ctx context.Context, id int) (*CelestialBody, error)
	FindByName(ctx context.Context, name string) (*CelestialBody, error)
}

// Store is the full catalog storage used by population and operator tooling
type Store interface {
	Reader

	// ListAll returns every body, active or not, ordered by display order
	ListAll(ctx context.Context) ([]CelestialBody, error)
	// Create inserts body and fills in its ID and timestamps
	Create(ctx context.Context, body *CelestialBody) error
	// Update overwrites every stored field of the row with body.ID and refreshes UpdatedAt
	Update(ctx context.Context, body *CelestialBody) error
	DeleteAll(ctx context.Context) (int64, error)
	SetActive(ctx context.Context, names []string, active bool) (int64, error)
	// InTx runs fn against a Store whose writes commit together or not at all
	InTx(ctx context.Context, fn func(Store) error) error
}
