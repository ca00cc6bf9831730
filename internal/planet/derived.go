package planet

import (
	"math"
	"strconv"
)

const (
	// EarthReferenceDiameterKm is fixed and independent of the stored Earth row
	EarthReferenceDiameterKm = 12742.0
	DaysPerYear              = 365.25
	HoursPerDay              = 24.0

	DefaultSizeScale     = 1000.0
	DefaultDistanceScale = 10.0

	minScaledSize     = 0.1
	minScaledDistance = 1.0
)

// round2 rounds the exact stored value to 2 decimals, halves to even
func round2(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}

func (b CelestialBody) OrbitalPeriodYears() float64 {
	return round2(b.OrbitalPeriodDays / DaysPerYear)
}

func (b CelestialBody) RotationPeriodDays() float64 {
	return round2(b.RotationPeriodHours / HoursPerDay)
}

func (b CelestialBody) DiameterEarthRelative() float64 {
	return round2(b.DiameterKm / EarthReferenceDiameterKm)
}

// ScaledSize is the render radius, never below 0.1 so small bodies stay visible
func (b CelestialBody) ScaledSize(scaleFactor float64) float64 {
	return math.Max(b.DiameterKm/2/scaleFactor, minScaledSize)
}

// ScaledDistance is the render orbit radius, never below 1.0
func (b CelestialBody) ScaledDistance(scaleFactor float64) float64 {
	return math.Max(b.DistanceFromSunAU*scaleFactor, minScaledDistance)
}

// Serialized is the flat API shape of a body: stored fields plus derived values
type Serialized struct {
	ID                    int        `json:"id"`
	Name                  string     `json:"name"`
	DisplayOrder          int        `json:"display_order"`
	PlanetType            PlanetType `json:"planet_type"`
	DistanceFromSun       float64    `json:"distance_from_sun"`
	Diameter              float64    `json:"diameter"`
	Mass                  *float64   `json:"mass"`
	OrbitalPeriod         float64    `json:"orbital_period"`
	OrbitalEccentricity   float64    `json:"orbital_eccentricity"`
	RotationPeriod        float64    `json:"rotation_period"`
	AxialTilt             float64    `json:"axial_tilt"`
	Composition           string     `json:"composition"`
	Atmosphere            string     `json:"atmosphere"`
	ColorHex              string     `json:"color_hex"`
	TextureFilename       string     `json:"texture_filename"`
	Albedo                float64    `json:"albedo"`
	IsDwarfPlanet         bool       `json:"is_dwarf_planet"`
	HasRings              bool       `json:"has_rings"`
	HasMoons              bool       `json:"has_moons"`
	MoonCount             int        `json:"moon_count"`
	OrbitalPeriodYears    float64    `json:"orbital_period_years"`
	RotationPeriodDays    float64    `json:"rotation_period_days"`
	DiameterEarthRelative float64    `json:"diameter_earth_relative"`
	ScaledSize            float64    `json:"scaled_size"`
	ScaledDistance        float64    `json:"scaled_distance"`
}

func (b CelestialBody) Serialize() Serialized {
	return Serialized{
		ID:                    b.ID,
		Name:                  b.Name,
		DisplayOrder:          b.DisplayOrder,
		PlanetType:            b.PlanetType,
		DistanceFromSun:       b.DistanceFromSunAU,
		Diameter:              b.DiameterKm,
		Mass:                  b.MassEarthRelative,
		OrbitalPeriod:         b.OrbitalPeriodDays,
		OrbitalEccentricity:   b.OrbitalEccentricity,
		RotationPeriod:        b.RotationPeriodHours,
		AxialTilt:             b.AxialTiltDegrees,
		Composition:           b.Composition,
		Atmosphere:            b.Atmosphere,
		ColorHex:              b.ColorHex,
		TextureFilename:       b.TextureFilename,
		Albedo:                b.Albedo,
		IsDwarfPlanet:         b.IsDwarfPlanet,
		HasRings:              b.HasRings,
		HasMoons:              b.HasMoons,
		MoonCount:             b.MoonCount,
		OrbitalPeriodYears:    b.OrbitalPeriodYears(),
		RotationPeriodDays:    b.RotationPeriodDays(),
		DiameterEarthRelative: b.DiameterEarthRelative(),
		ScaledSize:            b.ScaledSize(DefaultSizeScale),
		ScaledDistance:        b.ScaledDistance(DefaultDistanceScale),
	}
}

// SerializeAll keeps the input order and never returns nil
func SerializeAll(bodies []CelestialBody) []Serialized {
	out := make([]Serialized, 0, len(bodies))
	for _, b := range bodies {
		out = append(out, b.Serialize())
	}
	return out
}
