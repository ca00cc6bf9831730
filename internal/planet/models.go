package planet

import (
	"fmt"
	"time"

	"solar-system-server/internal/shared/errors"
)

type PlanetType string

const (
	PlanetTypeTerrestrial PlanetType = "terrestrial"
	PlanetTypeGasGiant    PlanetType = "gas_giant"
	PlanetTypeIceGiant    PlanetType = "ice_giant"
	PlanetTypeDwarf       PlanetType = "dwarf_planet"
)

// SunName identifies the central star, which is stored alongside the planets
const SunName = "Sun"

// EarthName identifies the body every comparison is made against
const EarthName = "Earth"

var planetTypeLabels = map[PlanetType]string{
	PlanetTypeTerrestrial: "Terrestrial Planet",
	PlanetTypeGasGiant:    "Gas Giant",
	PlanetTypeIceGiant:    "Ice Giant",
	PlanetTypeDwarf:       "Dwarf Planet",
}

func (t PlanetType) Valid() bool {
	_, ok := planetTypeLabels[t]
	return ok
}

func (t PlanetType) Label() string {
	if label, ok := planetTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// ParsePlanetType accepts the stored form of a planet type
func ParsePlanetType(s string) (PlanetType, error) {
	t := PlanetType(s)
	if !t.Valid() {
		return "", errors.Validationf("unknown planet type %q", s)
	}
	return t, nil
}

// CelestialBody is one row of the catalog. Its JSON form is the record
// written to snapshot exports; API responses use Serialized instead.
type CelestialBody struct {
	ID                  int        `json:"-"`
	Name                string     `json:"name"`
	DisplayOrder        int        `json:"display_order"`
	PlanetType          PlanetType `json:"planet_type"`
	DistanceFromSunAU   float64    `json:"distance_from_sun"`
	DiameterKm          float64    `json:"diameter"`
	MassEarthRelative   *float64   `json:"mass"`
	OrbitalPeriodDays   float64    `json:"orbital_period"`
	OrbitalEccentricity float64    `json:"orbital_eccentricity"`
	// Negative values mean retrograde rotation
	RotationPeriodHours float64   `json:"rotation_period"`
	AxialTiltDegrees    float64   `json:"axial_tilt"`
	Composition         string    `json:"composition"`
	Atmosphere          string    `json:"atmosphere"`
	ColorHex            string    `json:"color_hex"`
	TextureFilename     string    `json:"texture_filename"`
	Albedo              float64   `json:"albedo"`
	IsDwarfPlanet       bool      `json:"is_dwarf_planet"`
	HasRings            bool      `json:"has_rings"`
	HasMoons            bool      `json:"has_moons"`
	MoonCount           int       `json:"moon_count"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (b CelestialBody) String() string {
	return fmt.Sprintf("%s (%s)", b.Name, b.PlanetType.Label())
}

func (b CelestialBody) IsSun() bool {
	return b.Name == SunName
}

// Mass returns a pointer to a copy of m, for populating MassEarthRelative
func Mass(m float64) *float64 {
	return &m
}

func (b CelestialBody) clone() CelestialBody {
	if b.MassEarthRelative != nil {
		b.MassEarthRelative = Mass(*b.MassEarthRelative)
	}
	return b
}
