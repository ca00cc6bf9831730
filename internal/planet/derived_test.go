package planet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledSize(t *testing.T) {
	tests := []struct {
		name     string
		diameter float64
		scale    float64
		expected float64
	}{
		{"earth at default scale", 12756, DefaultSizeScale, 6.378},
		{"tiny body is clamped", 100, DefaultSizeScale, 0.1},
		{"custom scale", 142984, 10000, 7.1492},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := CelestialBody{DiameterKm: tt.diameter}
			assert.InDelta(t, tt.expected, body.ScaledSize(tt.scale), 1e-9)
		})
	}
}

func TestScaledDistance(t *testing.T) {
	assert.Equal(t, 1.0, CelestialBody{DistanceFromSunAU: 0.0001}.ScaledDistance(DefaultDistanceScale))
	assert.Equal(t, 1.0, CelestialBody{DistanceFromSunAU: 0}.ScaledDistance(DefaultDistanceScale))
	assert.InDelta(t, 52.0, CelestialBody{DistanceFromSunAU: 5.2}.ScaledDistance(DefaultDistanceScale), 1e-9)
}

func TestRoundedDerivedValues(t *testing.T) {
	earth := earthFixture()
	assert.Equal(t, 1.0, earth.OrbitalPeriodYears())
	assert.Equal(t, 1.0, earth.RotationPeriodDays())
	assert.Equal(t, 1.0, earth.DiameterEarthRelative())

	venus := venusFixture()
	assert.Equal(t, -243.02, venus.RotationPeriodDays())
	assert.Equal(t, 0.62, venus.OrbitalPeriodYears())

	sun := sunFixture()
	assert.Equal(t, 0.0, sun.OrbitalPeriodYears())
	assert.Equal(t, 109.3, sun.DiameterEarthRelative())
}

func TestRoundTwoDecimalsUsesStoredValue(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{2.675, 2.67},
		{0.815, 0.81},
		{0.125, 0.12},
		{1.005, 1.0},
		{-243.0208, -243.02},
		{11.2092, 11.21},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, round2(tt.in), "%v", tt.in)
	}
}

func TestVenusMassRatio(t *testing.T) {
	earth := earthFixture()

	comparison := EarthComparison(venusFixture(), &earth)

	assert.Equal(t, 0.81, comparison["mass_ratio"])
}

func TestSerializeKeys(t *testing.T) {
	body := earthFixture()
	body.ID = 4

	raw, err := json.Marshal(body.Serialize())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	expected := []string{
		"id", "name", "display_order", "planet_type", "distance_from_sun", "diameter", "mass",
		"orbital_period", "orbital_eccentricity", "rotation_period", "axial_tilt", "composition",
		"atmosphere", "color_hex", "texture_filename", "albedo", "is_dwarf_planet", "has_rings",
		"has_moons", "moon_count", "orbital_period_years", "rotation_period_days",
		"diameter_earth_relative", "scaled_size", "scaled_distance",
	}
	assert.Len(t, decoded, len(expected))
	for _, key := range expected {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, float64(4), decoded["id"])
	assert.Equal(t, 6.378, decoded["scaled_size"])
}

func TestSerializeNilMass(t *testing.T) {
	body := earthFixture()
	body.MassEarthRelative = nil

	raw, err := json.Marshal(body.Serialize())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"mass":null`)
}

func TestSerializeAllEmpty(t *testing.T) {
	out := SerializeAll(nil)
	require.NotNil(t, out)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestParsePlanetType(t *testing.T) {
	parsed, err := ParsePlanetType("ice_giant")
	require.NoError(t, err)
	assert.Equal(t, PlanetTypeIceGiant, parsed)
	assert.Equal(t, "Ice Giant", parsed.Label())

	_, err = ParsePlanetType("brown_dwarf")
	assert.Error(t, err)

	assert.Equal(t, "Earth (Terrestrial Planet)", earthFixture().String())
}
