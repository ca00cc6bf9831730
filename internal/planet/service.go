package planet

import (
	"context"
	"log/slog"

	"solar-system-server/internal/shared/errors"
)

const (
	SystemAge      = "4.6 billion years"
	SystemDiameter = "~100,000 AU (including Oort Cloud)"
	HabitableZone  = "0.95 to 1.37 AU from Sun"
)

type Service struct {
	store  Reader
	logger *slog.Logger
}

func NewService(store Reader, logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service")

	return &Service{
		store:  store,
		logger: logger,
	}
}

// Detail is a serialized body with the lookup and comparison enrichments
type Detail struct {
	Serialized
	FunFacts          []string           `json:"fun_facts"`
	ComparisonToEarth map[string]float64 `json:"comparison_to_earth"`
	ExplorationStatus string             `json:"exploration_status"`
}

type TypeCounts struct {
	Terrestrial  int `json:"terrestrial"`
	GasGiants    int `json:"gas_giants"`
	IceGiants    int `json:"ice_giants"`
	DwarfPlanets int `json:"dwarf_planets"`
}

type SystemInfo struct {
	TotalPlanets   int         `json:"total_planets"`
	PlanetTypes    TypeCounts  `json:"planet_types"`
	TotalMoons     int         `json:"total_moons"`
	CentralStar    *Serialized `json:"central_star"`
	SystemAge      string      `json:"system_age"`
	SystemDiameter string      `json:"system_diameter"`
	HabitableZone  string      `json:"habitable_zone"`
}

func (s *Service) ListActive(ctx context.Context) ([]CelestialBody, error) {
	logger := s.logger.With("component", "planet_service", "operation", "list_active")

	bodies, err := s.store.ListActive(ctx)
	if err != nil {
		logger.Error("Failed to list active planets", "error", err)
		return nil, errors.WrapInternal("failed to list planets", err)
	}

	logger.Debug("Active planets listed", "count", len(bodies))
	return bodies, nil
}

func (s *Service) ListByType(ctx context.Context, rawType string) ([]CelestialBody, error) {
	logger := s.logger.With("component", "planet_service", "operation", "list_by_type", "planet_type", rawType)

	planetType, err := ParsePlanetType(rawType)
	if err != nil {
		logger.Debug("Rejected planet type filter", "error", err)
		return nil, err
	}

	bodies, err := s.store.ListActiveByType(ctx, planetType)
	if err != nil {
		logger.Error("Failed to list planets by type", "error", err)
		return nil, errors.WrapInternal("failed to list planets", err)
	}

	return bodies, nil
}

func (s *Service) ListDwarfPlanets(ctx context.Context) ([]CelestialBody, error) {
	logger := s.logger.With("component", "planet_service", "operation", "list_dwarf_planets")

	bodies, err := s.store.ListActiveDwarfPlanets(ctx)
	if err != nil {
		logger.Error("Failed to list dwarf planets", "error", err)
		return nil, errors.WrapInternal("failed to list planets", err)
	}

	return bodies, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*CelestialBody, error) {
	logger := s.logger.With("component", "planet_service", "operation", "get_by_id", "planet_id", id)

	body, err := s.store.GetActiveByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get planet", "error", err)
		return nil, errors.WrapInternal("failed to get planet", err)
	}

	if body == nil {
		logger.Info("Planet not found")
		return nil, errors.NotFound("Planet not found")
	}

	return body, nil
}

func (s *Service) GetDetail(ctx context.Context, id int) (*Detail, error) {
	logger := s.logger.With("component", "planet_service", "operation", "get_detail", "planet_id", id)

	body, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	earth, err := s.store.FindByName(ctx, EarthName)
	if err != nil {
		logger.Error("Failed to load Earth for comparison", "error", err)
		return nil, errors.WrapInternal("failed to get planet", err)
	}

	detail := &Detail{
		Serialized:        body.Serialize(),
		FunFacts:          FunFacts(body.Name),
		ComparisonToEarth: EarthComparison(*body, earth),
		ExplorationStatus: ExplorationStatus(body.Name),
	}

	logger.Info("Served detailed data for planet", "name", body.Name)
	return detail, nil
}

// SystemInfo aggregates over active bodies other than the Sun. The Sun itself
// is reported whether or not it is active.
func (s *Service) SystemInfo(ctx context.Context) (*SystemInfo, error) {
	logger := s.logger.With("component", "planet_service", "operation", "system_info")

	bodies, err := s.store.ListActive(ctx)
	if err != nil {
		logger.Error("Failed to list planets", "error", err)
		return nil, errors.WrapInternal("failed to compute system information", err)
	}

	sun, err := s.store.FindByName(ctx, SunName)
	if err != nil {
		logger.Error("Failed to load the Sun", "error", err)
		return nil, errors.WrapInternal("failed to compute system information", err)
	}

	info := &SystemInfo{
		SystemAge:      SystemAge,
		SystemDiameter: SystemDiameter,
		HabitableZone:  HabitableZone,
	}

	for _, b := range bodies {
		if b.IsSun() {
			continue
		}
		info.TotalPlanets++
		info.TotalMoons += b.MoonCount

		switch b.PlanetType {
		case PlanetTypeTerrestrial:
			info.PlanetTypes.Terrestrial++
		case PlanetTypeGasGiant:
			info.PlanetTypes.GasGiants++
		case PlanetTypeIceGiant:
			info.PlanetTypes.IceGiants++
		}
		if b.IsDwarfPlanet {
			info.PlanetTypes.DwarfPlanets++
		}
	}

	if sun != nil {
		central := sun.Serialize()
		info.CentralStar = &central
	}

	logger.Info("Served solar system information", "total_planets", info.TotalPlanets)
	return info, nil
}
