package seed

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"

	"solar-system-server/internal/planet"
	"solar-system-server/internal/shared/errors"
)

const maxNameLength = 50

var colorHexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type ValidationReport struct {
	Valid      bool
	Violations []string
}

// Err folds the violations into one validation error, or returns nil when valid
func (r ValidationReport) Err() error {
	if r.Valid {
		return nil
	}
	return errors.ValidationFailure(r.Violations)
}

// Validate checks every stored body without modifying anything
func (s *Service) Validate(ctx context.Context) (*ValidationReport, error) {
	logger := s.logger.With("component", "seed_service", "operation", "validate")
	logger.Debug("Validating planetary data")

	bodies, err := s.store.ListAll(ctx)
	if err != nil {
		logger.Error("Failed to list planets", "error", err)
		return nil, errors.WrapInternal("failed to load planets for validation", err)
	}

	violations := ValidateRecords(bodies)
	report := &ValidationReport{Valid: len(violations) == 0, Violations: violations}

	if report.Valid {
		logger.Info("All planetary data validated successfully", "count", len(bodies))
	} else {
		logger.Warn("Validation errors found", "count", len(violations))
	}
	return report, nil
}

// ValidateRecords returns one message per violated rule. The Sun is allowed a
// zero distance and orbital period.
func ValidateRecords(bodies []planet.CelestialBody) []string {
	violations := []string{}
	add := func(format string, args ...interface{}) {
		violations = append(violations, fmt.Sprintf(format, args...))
	}

	names := map[string]int{}
	orders := map[int]int{}

	for _, b := range bodies {
		names[b.Name]++
		orders[b.DisplayOrder]++

		if b.Name == "" {
			add("Planet missing name: ID %d", b.ID)
		} else if utf8.RuneCountInString(b.Name) > maxNameLength {
			add("%s: name longer than %d characters", b.Name, maxNameLength)
		}

		if !b.PlanetType.Valid() {
			add("%s: Invalid planet_type %q", b.Name, b.PlanetType)
		}

		if b.DiameterKm <= 0 {
			add("%s: Invalid diameter", b.Name)
		}
		if b.MassEarthRelative != nil && *b.MassEarthRelative <= 0 {
			add("%s: Invalid mass", b.Name)
		}
		if b.Albedo < 0 || b.Albedo > 1 {
			add("%s: Invalid albedo", b.Name)
		}

		if b.IsSun() {
			if b.DistanceFromSunAU < 0 {
				add("%s: Invalid distance_from_sun", b.Name)
			}
			if b.OrbitalPeriodDays < 0 {
				add("%s: Invalid orbital_period", b.Name)
			}
		} else {
			if b.DistanceFromSunAU < 0.1 {
				add("%s: Invalid distance_from_sun", b.Name)
			}
			if b.OrbitalPeriodDays <= 0 {
				add("%s: Invalid orbital_period", b.Name)
			}
		}

		if b.OrbitalEccentricity < 0 || b.OrbitalEccentricity > 1 {
			add("%s: Invalid orbital_eccentricity", b.Name)
		}
		if b.RotationPeriodHours == 0 {
			add("%s: Invalid rotation_period", b.Name)
		}
		if b.AxialTiltDegrees < 0 || b.AxialTiltDegrees > 180 {
			add("%s: Invalid axial_tilt", b.Name)
		}

		if b.MoonCount < 0 {
			add("%s: Invalid moon_count", b.Name)
		}
		if b.HasMoons && b.MoonCount == 0 {
			add("%s: has_moons=true but moon_count=0", b.Name)
		}
		if !b.HasMoons && b.MoonCount > 0 {
			add("%s: has_moons=false but moon_count>0", b.Name)
		}

		if !colorHexPattern.MatchString(b.ColorHex) {
			add("%s: Invalid color_hex format", b.Name)
		}
	}

	duplicates := []string{}
	for name, n := range names {
		if n > 1 && name != "" {
			duplicates = append(duplicates, name)
		}
	}
	sort.Strings(duplicates)
	for _, name := range duplicates {
		add("Duplicate name %q found", name)
	}
	for _, n := range orders {
		if n > 1 {
			add("Duplicate display_order values found")
			break
		}
	}

	return violations
}
